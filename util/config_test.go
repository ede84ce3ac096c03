package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/chorpler/boxes/lexer"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName+".env"), []byte(content), 0o644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeEnvFile(t, "ENVIRONMENT=development\nSOURCE_ENCODING=ISO-8859-15\nMAX_DIAGNOSTICS=5\n")

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, "development", config.Environment)
	require.Equal(t, "ISO-8859-15", config.SourceEncoding)
	require.Equal(t, 5, config.MaxDiagnostics)
	require.Equal(t, lexer.DefaultBufferMargin, config.BufferMargin)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := writeEnvFile(t, "MAX_DIAGNOSTICS=5\n")
	t.Setenv("MAX_DIAGNOSTICS", "7")

	config, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, 7, config.MaxDiagnostics)
}

func TestLoadConfig_NoFile(t *testing.T) {
	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "production", config.Environment)
	require.Equal(t, lexer.DefaultEncoding, config.SourceEncoding)
	require.Equal(t, lexer.DefaultMaxDiagnostics, config.MaxDiagnostics)
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		wantField string
	}{
		{
			name:      "negative_diagnostics",
			content:   "MAX_DIAGNOSTICS=-1\n",
			wantField: "MaxDiagnostics",
		},
		{
			name:      "negative_margin",
			content:   "BUFFER_MARGIN=-4\n",
			wantField: "BufferMargin",
		},
		{
			name:      "unknown_environment",
			content:   "ENVIRONMENT=staging\n",
			wantField: "Environment",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeEnvFile(t, tc.content))
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			require.Equal(t, tc.wantField, verrs[0].Field())
		})
	}
}

func TestConfig_LexerOptions(t *testing.T) {
	config := Config{SourceEncoding: "windows-1252", MaxDiagnostics: 0, BufferMargin: 8}

	opts := config.LexerOptions()
	require.Equal(t, "windows-1252", opts.Encoding)
	require.Equal(t, 0, opts.MaxDiagnostics)
	require.Equal(t, 8, opts.BufferMargin)
	require.Nil(t, opts.Reporter)
	require.NoError(t, opts.Validate())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger("production", &buf)
	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "boxes.cfg").Msg("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"file":"boxes.cfg"`)

	buf.Reset()

	logger = NewLogger("development", &buf)
	logger.Debug().Msg("visible")
	require.Contains(t, buf.String(), "visible")
	require.NotContains(t, buf.String(), `"message"`)
}
