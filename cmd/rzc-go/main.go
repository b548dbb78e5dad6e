package main

import (
	"os"

	"github.com/spf13/cobra"

	"rzc-go/packages/compiler/core"
	"rzc-go/packages/compiler/errors"
)

const (
	flagInventory  = "inventory"
	flagElements   = "elements"
	flagConfig     = "config"
	flagDesignTime = "design-time"
	flagLogLevel   = "log-level"
	flagStrict     = "strict"
)

// errDiagnostics is returned in strict mode when discovery reported errors.
var errDiagnostics = errors.New("tag helper discovery reported errors")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "rzc-go",
		Short:   "Discover tag helpers and bind them to elements",
		Version: core.VERSION.Full,

		SilenceUsage: true,
	}

	root.PersistentFlags().StringP(flagInventory, "i", "", "path to the YAML type inventory")
	root.PersistentFlags().StringP(flagConfig, "c", "", "path to a project configuration file (default: rzconfig.yaml next to the inventory)")
	root.PersistentFlags().Bool(flagDesignTime, false, "create descriptors for design-time tooling")
	root.PersistentFlags().String(flagLogLevel, "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().Bool(flagStrict, false, "exit with an error when any error diagnostic is reported")
	_ = root.MarkPersistentFlagRequired(flagInventory)

	root.AddCommand(newDiscoverCommand(), newMatchCommand())
	return root
}
