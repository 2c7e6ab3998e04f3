package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDir_Default(t *testing.T) {
	t.Setenv("HABITMD_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	assert.NotEmpty(t, dir)
	if runtime.GOOS != "windows" {
		assert.Equal(t, "habitmd", filepath.Base(dir))
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("HABITMD_CONFIG_HOME", "/custom/path")

	assert.Equal(t, "/custom/path", Dir())
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("HABITMD_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	assert.Equal(t, filepath.Join("/xdg/config", "habitmd"), Dir())
}

func TestDir_ExplicitBeatsXDG(t *testing.T) {
	t.Setenv("HABITMD_CONFIG_HOME", "/explicit")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	assert.Equal(t, "/explicit", Dir())
}
