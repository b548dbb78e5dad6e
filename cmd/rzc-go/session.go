package main

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rzc-go/packages/compiler/config"
	"rzc-go/packages/compiler/discovery"
	"rzc-go/packages/compiler/errors"
	"rzc-go/packages/compiler/log"
	"rzc-go/packages/compiler/taghelpers"
	"rzc-go/packages/compiler/util"
)

// session is the state shared by the subcommands: the loaded configuration,
// a logger and the discovered descriptors.
type session struct {
	config      *config.CompilerConfig
	logger      logrus.FieldLogger
	descriptors []*taghelpers.TagHelperDescriptor
	strict      bool
}

func newSession(ctx context.Context, cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()
	level, _ := flags.GetString(flagLogLevel)
	logger, err := log.New(level, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	inventoryPath, _ := flags.GetString(flagInventory)
	configPath, _ := flags.GetString(flagConfig)
	if configPath == "" {
		if found, ok := config.FindProjectConfig(filepath.Dir(inventoryPath)); ok {
			configPath = found
		}
	}

	var opts []config.CompilerConfigOption
	if configPath != "" {
		projectConfig, err := config.ParseProjectConfig(configPath)
		if err != nil {
			return nil, withStackTrace(logger, err)
		}
		logger.WithField("path", configPath).Debug("Loaded project configuration")
		opts = append(opts, projectConfig.Options()...)
	}
	if flags.Changed(flagDesignTime) {
		designTime, _ := flags.GetBool(flagDesignTime)
		opts = append(opts, config.WithDesignTime(designTime))
	}
	cfg := config.NewCompilerConfig(opts...)

	inventory, err := discovery.LoadInventoryFile(inventoryPath)
	if err != nil {
		return nil, withStackTrace(logger, err)
	}

	provider := discovery.NewProvider(discovery.NewFactory(cfg, logger), discovery.WithLogger(logger))
	descriptors, err := provider.GetDescriptors(ctx, inventory)
	if err != nil {
		return nil, withStackTrace(logger, err)
	}

	strict, _ := flags.GetBool(flagStrict)
	return &session{
		config:      cfg,
		logger:      logger,
		descriptors: descriptors,
		strict:      strict,
	}, nil
}

// withStackTrace logs the call stack of err at debug level and returns err.
func withStackTrace(logger logrus.FieldLogger, err error) error {
	logger.Debug(errors.ErrorWithStackTrace(err))
	return err
}

// reportDiagnostics logs every diagnostic and, in strict mode, fails when any
// of them is an error.
func (s *session) reportDiagnostics() error {
	var diagnostics []*util.Diagnostic
	for _, descriptor := range s.descriptors {
		logger := s.logger.WithField(log.FieldTagHelper, descriptor.DisplayName)
		for _, d := range descriptor.GetAllDiagnostics() {
			entry := logger.WithField("id", d.ID)
			if d.Severity == util.DiagnosticSeverityError {
				entry.Warn(d.Message)
			} else {
				entry.Info(d.Message)
			}
			diagnostics = append(diagnostics, d)
		}
	}
	if s.strict {
		if err := util.DiagnosticsError(diagnostics); err != nil {
			s.logger.Error(err)
			return errDiagnostics
		}
	}
	return nil
}
