package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rzc-go/packages/compiler/config"
)

func TestNewCompilerConfig(t *testing.T) {
	t.Run("should use defaults", func(t *testing.T) {
		expected := &config.CompilerConfig{
			TagHelperNameSuffix:     "TagHelper",
			ReservedAttributePrefix: "data-",
			Parallelism:             runtime.GOMAXPROCS(0),
		}
		if diff := cmp.Diff(expected, config.NewCompilerConfig()); diff != "" {
			t.Errorf("NewCompilerConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should apply options in order", func(t *testing.T) {
		cfg := config.NewCompilerConfig(
			config.WithDesignTime(true),
			config.WithTagHelperNameSuffix("Component"),
			config.WithReservedAttributePrefix("x-"),
			config.WithTagHelperPrefix("th:"),
			config.WithParallelism(3),
			config.WithParallelism(0),
		)
		assert.True(t, cfg.DesignTime)
		assert.Equal(t, "Component", cfg.TagHelperNameSuffix)
		assert.Equal(t, "x-", cfg.ReservedAttributePrefix)
		assert.Equal(t, "th:", cfg.TagHelperPrefix)
		assert.Equal(t, 3, cfg.Parallelism)
	})
}

func TestProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultProjectConfigName)
	content := "designTime: true\ntagHelperNameSuffix: \"\"\ntagHelperPrefix: \"th:\"\nparallelism: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	found, ok := config.FindProjectConfig(dir)
	require.True(t, ok)
	assert.Equal(t, path, found)

	projectConfig, err := config.ParseProjectConfig(found)
	require.NoError(t, err)

	cfg := config.NewCompilerConfig(projectConfig.Options()...)
	assert.True(t, cfg.DesignTime)
	assert.Equal(t, "", cfg.TagHelperNameSuffix)
	assert.Equal(t, "data-", cfg.ReservedAttributePrefix)
	assert.Equal(t, "th:", cfg.TagHelperPrefix)
	assert.Equal(t, 2, cfg.Parallelism)
}

func TestProjectConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, ok := config.FindProjectConfig(dir)
	assert.False(t, ok)

	_, err := config.ParseProjectConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallelism: [1"), 0o644))
	_, err = config.ParseProjectConfig(path)
	assert.ErrorContains(t, err, "failed to parse project config")
}
