package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the rest of the test. t.Setenv registers the
// restore; the Unsetenv makes LookupEnv report the variable as absent.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvMaxFileBytes, EnvLayout, EnvSeparator, EnvMaxColumnWidth} {
		unsetEnv(t, k)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csv2pdf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, DefaultMaxFileBytes, cfg.MaxFileSizeBytes)
	assert.Equal(t, "plain", cfg.Layout)
	assert.Equal(t, "    ", cfg.Separator, "four spaces")
	assert.Equal(t, DefaultMaxColumnWidth, cfg.MaxColumnWidth)
}

func TestLoad_MaxFileBytesFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMaxFileBytes, "1048576") // 1 MiB

	assert.Equal(t, int64(1_048_576), Load().MaxFileSizeBytes)
}

func TestLoad_InvalidMaxFileBytesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMaxFileBytes, "not-a-number")

	assert.Equal(t, DefaultMaxFileBytes, Load().MaxFileSizeBytes)
}

func TestLoad_ZeroMaxFileBytesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMaxFileBytes, "0")

	assert.Equal(t, DefaultMaxFileBytes, Load().MaxFileSizeBytes)
}

func TestLoad_LayoutAndSeparatorFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLayout, "table")
	t.Setenv(EnvSeparator, "")
	t.Setenv(EnvMaxColumnWidth, "12")

	cfg := Load()

	assert.Equal(t, "table", cfg.Layout)
	assert.Equal(t, "", cfg.Separator, "explicitly set to empty")
	assert.Equal(t, 12, cfg.MaxColumnWidth)
}

func TestLoad_NegativeColumnWidthIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMaxColumnWidth, "-3")

	assert.Equal(t, DefaultMaxColumnWidth, Load().MaxColumnWidth)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "layout: table\nseparator: \" | \"\nmax_column_width: 20\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Layout)
	assert.Equal(t, " | ", cfg.Separator)
	assert.Equal(t, 20, cfg.MaxColumnWidth)
	assert.Equal(t, DefaultMaxFileBytes, cfg.MaxFileSizeBytes)
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLayout, "plain")
	path := writeConfig(t, "layout: table\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Layout, "env wins over file")
}

func TestLoadFile_Missing(t *testing.T) {
	clearEnv(t)
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_Malformed(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "layout: [unterminated\n")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestMaxFileSizeMB(t *testing.T) {
	cfg := &Config{MaxFileSizeBytes: 10 << 20} // 10 MiB
	assert.Equal(t, int64(10), cfg.MaxFileSizeMB())
}
