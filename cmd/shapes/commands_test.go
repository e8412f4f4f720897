package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/shapes/internal/application/dto"
	apperrors "github.com/reglet-dev/shapes/internal/application/errors"
)

// runCLI executes the root command with a config path that does not exist,
// so only built-in defaults and flags apply.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	cmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestMeasureCommand_Table(t *testing.T) {
	out, err := runCLI(t, "measure", "circle", "--radius", "2.5")
	require.NoError(t, err)

	assert.Contains(t, out, "Report: ")
	assert.Contains(t, out, "circle with radius 2.5")
	assert.Contains(t, out, "radius: 2.5")
}

func TestMeasureCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "measure", "polygon", "--sides", "6", "--side-length", "2", "--format", "json")
	require.NoError(t, err)

	var resp dto.MeasurementResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "regular_polygon", resp.Kind)
	assert.Equal(t, "regular hexagon with side length 2.0", resp.Description)
	assert.Equal(t, 6, resp.Sides)
	assert.InDelta(t, 12.0, resp.Perimeter, 1e-9)
	assert.NotEmpty(t, resp.ID)
}

func TestMeasureCommand_Defaults(t *testing.T) {
	out, err := runCLI(t, "measure", "rectangle", "--format", "json")
	require.NoError(t, err)

	var resp dto.MeasurementResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "rectangle with length 1.0, width 1.0", resp.Description)
}

func TestMeasureCommand_Expectations(t *testing.T) {
	t.Run("passing", func(t *testing.T) {
		out, err := runCLI(t, "measure", "rectangle", "--side", "3", "--expect", "area == 9", "--expect", "sides == 4")
		require.NoError(t, err)
		assert.Contains(t, out, "✓ area == 9")
	})

	t.Run("failing still writes report", func(t *testing.T) {
		out, err := runCLI(t, "measure", "circle", "--expect", "area > 100")
		require.Error(t, err)

		var expErr *apperrors.ExpectationError
		require.True(t, errors.As(err, &expErr))
		assert.Equal(t, []string{"area > 100"}, expErr.Failed)
		assert.Contains(t, out, "✗ area > 100")
	})
}

func TestMeasureCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown kind", args: []string{"measure", "hexagon"}},
		{name: "non-positive radius", args: []string{"measure", "circle", "--radius", "-1"}},
		{name: "too few sides", args: []string{"measure", "polygon", "--sides", "2"}},
		{name: "flag for another kind", args: []string{"measure", "circle", "--width", "2"}},
		{name: "side with length", args: []string{"measure", "rectangle", "--side", "2", "--length", "3"}},
		{name: "missing kind", args: []string{"measure"}},
		{name: "bad format", args: []string{"measure", "circle", "--format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestMeasureCommand_InvalidArgumentIsValidationError(t *testing.T) {
	_, err := runCLI(t, "measure", "circle", "--radius", "0")
	require.Error(t, err)

	var valErr *apperrors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "params", valErr.Field)
}

func TestCompareCommand(t *testing.T) {
	t.Run("asymmetric square and polygon", func(t *testing.T) {
		out, err := runCLI(t, "compare",
			"--left", "rectangle:side=2",
			"--right", "polygon:sides=4,side-length=2.000001",
			"--format", "json")
		require.NoError(t, err)

		var resp dto.ComparisonResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.False(t, resp.LeftEqualsRight)
		assert.True(t, resp.RightEqualsLeft)
	})

	t.Run("table warns about asymmetry", func(t *testing.T) {
		out, err := runCLI(t, "compare",
			"--left", "rectangle:side=2",
			"--right", "polygon:sides=4,side-length=2.000001")
		require.NoError(t, err)
		assert.Contains(t, out, "not symmetric")
	})

	t.Run("circles within tolerance", func(t *testing.T) {
		out, err := runCLI(t, "compare", "--left", "circle:radius=1", "--right", "circle:radius=1.000001")
		require.NoError(t, err)
		assert.Contains(t, out, "✓ left.Equals(right)")
		assert.Contains(t, out, "✓ right.Equals(left)")
	})

	t.Run("bad spec", func(t *testing.T) {
		_, err := runCLI(t, "compare", "--left", "circle:radius", "--right", "circle")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--left")
	})

	t.Run("missing flag", func(t *testing.T) {
		_, err := runCLI(t, "compare", "--left", "circle")
		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "shapes version dev")
}
