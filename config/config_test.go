package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kovetskiy/mathtex/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_TOML(t *testing.T) {
	path := write(t, "mathtex.toml", `
log-level = "DEBUG"

[extra]
style = "Block"
author = "someone"

[extra.nested]
depth = 2
`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Block", config.Extra["style"])
	assert.Equal(t, "someone", config.Extra["author"])
	assert.Equal(t, map[string]interface{}{"depth": int64(2)}, config.Extra["nested"])
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "mathtex.yaml", "extra:\n  style: block\n  enabled: true\n")

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "block", config.Extra["style"])
	assert.Equal(t, true, config.Extra["enabled"])
}

func TestLoad_Missing(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, config.Extra)

	config, err = Load("")
	require.NoError(t, err)
	assert.Empty(t, config.Extra)
}

func TestLoad_Invalid(t *testing.T) {
	path := write(t, "broken.toml", "[extra\nstyle = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to decode config")
}

func TestWithStyle(t *testing.T) {
	original := &types.Config{Extra: map[string]interface{}{"style": "inline", "a": 1}}

	overridden := WithStyle(original, "block")

	assert.Equal(t, "block", overridden.Extra["style"])
	assert.Equal(t, 1, overridden.Extra["a"])
	assert.Equal(t, "inline", original.Extra["style"])

	assert.Equal(t, "Block", WithStyle(nil, "Block").Extra["style"])
}
