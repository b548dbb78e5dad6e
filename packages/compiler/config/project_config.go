package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"rzc-go/packages/compiler/errors"
)

// DefaultProjectConfigName is the file looked up next to an inventory when no
// explicit project configuration is given.
const DefaultProjectConfigName = "rzconfig.yaml"

// ProjectConfig is the on-disk form of CompilerConfig.
type ProjectConfig struct {
	DesignTime              *bool   `yaml:"designTime"`
	TagHelperNameSuffix     *string `yaml:"tagHelperNameSuffix"`
	ReservedAttributePrefix *string `yaml:"reservedAttributePrefix"`
	TagHelperPrefix         string  `yaml:"tagHelperPrefix"`
	Parallelism             int     `yaml:"parallelism"`
}

// ParseProjectConfig reads and parses a YAML project configuration file
func ParseProjectConfig(path string) (*ProjectConfig, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "failed to resolve path")
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "failed to read project config")
	}

	var config ProjectConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "failed to parse project config %s", path)
	}

	return &config, nil
}

// Options converts the file contents to CompilerConfig options. Unset fields
// keep their defaults.
func (c *ProjectConfig) Options() []CompilerConfigOption {
	var opts []CompilerConfigOption
	if c.DesignTime != nil {
		opts = append(opts, WithDesignTime(*c.DesignTime))
	}
	if c.TagHelperNameSuffix != nil {
		opts = append(opts, WithTagHelperNameSuffix(*c.TagHelperNameSuffix))
	}
	if c.ReservedAttributePrefix != nil {
		opts = append(opts, WithReservedAttributePrefix(*c.ReservedAttributePrefix))
	}
	if c.TagHelperPrefix != "" {
		opts = append(opts, WithTagHelperPrefix(c.TagHelperPrefix))
	}
	if c.Parallelism > 0 {
		opts = append(opts, WithParallelism(c.Parallelism))
	}
	return opts
}

// FindProjectConfig returns the path of DefaultProjectConfigName in dir, if
// the file exists.
func FindProjectConfig(dir string) (string, bool) {
	path := filepath.Join(dir, DefaultProjectConfigName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}
