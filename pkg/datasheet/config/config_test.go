package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datasheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("DATASHEET_DELIM", ";")
	path := writeConfig(t, "delimiter: \"${DATASHEET_DELIM}\"\npage_size: 20\ntrim_fields: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 5, cfg.DescribeRows)
	assert.Equal(t, "warn", cfg.LogLevel)
	require.NotNil(t, cfg.TrimFields)
	assert.False(t, *cfg.TrimFields)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"long delimiter", "delimiter: \"::\"\n"},
		{"page size too large", "page_size: 51\n"},
		{"unknown log level", "log_level: loud\n"},
		{"not yaml", "delimiter: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.PageSize = 25
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("DS_A", "x")
	assert.Equal(t, "x-", substituteEnvVars("${DS_A}-${DS_UNSET_VAR}"))
	assert.Equal(t, "${open", substituteEnvVars("${open"))
}

func TestSubstituteEnvVarsKeepsNestedReferences(t *testing.T) {
	t.Setenv("DS_NESTED", "${DS_OTHER}")
	t.Setenv("DS_OTHER", "nope")
	assert.Equal(t, "a=${DS_OTHER};b=x", substituteEnvVars("a=${DS_NESTED};b=x"))
	assert.Equal(t, "${DS_OTHER}${DS_OTHER}", substituteEnvVars("${DS_NESTED}${DS_NESTED}"))
}
