package config

import (
	"runtime"
)

// DefaultTagHelperNameSuffix is stripped from a type name before the default
// tag name is derived from it.
const DefaultTagHelperNameSuffix = "TagHelper"

// DefaultReservedAttributePrefix names attributes that tag helpers may not bind.
const DefaultReservedAttributePrefix = "data-"

// CompilerConfig represents the tag helper discovery and binding configuration
type CompilerConfig struct {
	DesignTime              bool
	TagHelperNameSuffix     string
	ReservedAttributePrefix string
	TagHelperPrefix         string
	Parallelism             int
}

// NewCompilerConfig creates a new CompilerConfig with optional parameters
func NewCompilerConfig(opts ...CompilerConfigOption) *CompilerConfig {
	config := &CompilerConfig{
		DesignTime:              false,
		TagHelperNameSuffix:     DefaultTagHelperNameSuffix,
		ReservedAttributePrefix: DefaultReservedAttributePrefix,
		Parallelism:             runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// CompilerConfigOption is a function that modifies CompilerConfig
type CompilerConfigOption func(*CompilerConfig)

// WithDesignTime sets whether descriptors are created for design-time tooling.
// Design-time discovery honours EditorBrowsable(Never) and carries documentation.
func WithDesignTime(designTime bool) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.DesignTime = designTime
	}
}

// WithTagHelperNameSuffix sets the suffix stripped from type names
func WithTagHelperNameSuffix(suffix string) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.TagHelperNameSuffix = suffix
	}
}

// WithReservedAttributePrefix sets the attribute prefix tag helpers may not bind
func WithReservedAttributePrefix(prefix string) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.ReservedAttributePrefix = prefix
	}
}

// WithTagHelperPrefix sets the prefix elements must carry to be considered by the binder
func WithTagHelperPrefix(prefix string) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.TagHelperPrefix = prefix
	}
}

// WithParallelism sets how many types are processed concurrently during discovery
func WithParallelism(n int) CompilerConfigOption {
	return func(c *CompilerConfig) {
		if n > 0 {
			c.Parallelism = n
		}
	}
}
