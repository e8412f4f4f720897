package container

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/shapes/internal/application/dto"
	apperrors "github.com/reglet-dev/shapes/internal/application/errors"
	"github.com/reglet-dev/shapes/internal/output"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Options{SystemConfigPath: filepath.Join(t.TempDir(), "none.yaml")})
	require.NoError(t, err)

	assert.Equal(t, "table", c.SystemConfig().Output.Format)
	assert.Equal(t, slog.LevelInfo, c.SystemConfig().LogLevel())
	assert.NotNil(t, c.Logger())

	f, err := c.Formatter(&bytes.Buffer{})
	require.NoError(t, err)
	assert.IsType(t, &output.TableFormatter{}, f)
}

func TestNew_ConfigFileAndOverrides(t *testing.T) {
	path := writeConfig(t, "output:\n  format: yaml\nlog:\n  level: warn\n")

	c, err := New(Options{SystemConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.SystemConfig().Output.Format)
	assert.Equal(t, slog.LevelWarn, c.SystemConfig().LogLevel())

	c, err = New(Options{SystemConfigPath: path, FormatOverride: "json", LogLevelOverride: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "json", c.SystemConfig().Output.Format)
	assert.Equal(t, slog.LevelDebug, c.SystemConfig().LogLevel())

	f, err := c.Formatter(&bytes.Buffer{})
	require.NoError(t, err)
	assert.IsType(t, &output.JSONFormatter{}, f)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "output:\n  colour: red\n"},
		{"bad format", "output:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Options{SystemConfigPath: writeConfig(t, tt.content)})
			require.Error(t, err)

			var cfgErr *apperrors.ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestContainer_MeasureService(t *testing.T) {
	c, err := New(Options{SystemConfigPath: filepath.Join(t.TempDir(), "none.yaml")})
	require.NoError(t, err)

	resp, err := c.MeasureService().Measure(context.Background(), dto.MeasureRequest{
		Kind:   "polygon",
		Params: map[string]interface{}{"sides": 5.0, "side_length": 2.0},
		Expect: []string{"sides == 5"},
	})
	require.NoError(t, err)
	assert.Equal(t, "regular pentagon with side length 2.0", resp.Description)
}
