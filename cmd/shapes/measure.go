package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reglet-dev/shapes/internal/application/dto"
	apperrors "github.com/reglet-dev/shapes/internal/application/errors"
)

type measureOptions struct {
	radius     float64
	length     float64
	width      float64
	side       float64
	sides      int
	sideLength float64
	expect     []string
}

// paramFlags maps flag names to request parameter keys.
var paramFlags = map[string]string{
	"radius":      "radius",
	"length":      "length",
	"width":       "width",
	"side":        "side",
	"sides":       "sides",
	"side-length": "side_length",
}

func newMeasureCmd(root *rootOptions) *cobra.Command {
	opts := &measureOptions{}

	cmd := &cobra.Command{
		Use:   "measure <kind>",
		Short: "Build a shape and report its area and perimeter",
		Long: `Build a circle, rectangle or regular polygon and report its description,
area and perimeter. Parameters that are not given keep the shape's defaults:
a circle of radius 1, a 1x1 rectangle, an equilateral triangle of side 1.`,
		Example: `  # Circle of radius 2.5
  shapes measure circle --radius 2.5

  # Square, checked against an expectation
  shapes measure rectangle --side 3 --expect "area == 9"

  # Regular hexagon as JSON
  shapes measure polygon --sides 6 --side-length 2 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: root.withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			return runMeasure(cc, cmd, args[0], opts)
		}),
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.radius, "radius", 0, "circle radius")
	flags.Float64Var(&opts.length, "length", 0, "rectangle length")
	flags.Float64Var(&opts.width, "width", 0, "rectangle width")
	flags.Float64Var(&opts.side, "side", 0, "square side (rectangle with equal length and width)")
	flags.IntVar(&opts.sides, "sides", 0, "number of sides of a regular polygon")
	flags.Float64Var(&opts.sideLength, "side-length", 0, "side length of a regular polygon")
	flags.StringArrayVar(&opts.expect, "expect", nil, "expression that must hold for the measurement (repeatable)")

	return cmd
}

func runMeasure(cc *CommandContext, cmd *cobra.Command, kind string, opts *measureOptions) error {
	req := dto.MeasureRequest{
		Kind:   kind,
		Params: opts.params(cmd),
		Expect: opts.expect,
	}

	resp, err := cc.Container.MeasureService().Measure(cc.Context, req)

	// A failed expectation still produces a report
	var expErr *apperrors.ExpectationError
	if err != nil && !errors.As(err, &expErr) {
		return err
	}

	formatter, ferr := cc.Formatter()
	if ferr != nil {
		return ferr
	}
	if werr := formatter.FormatMeasurement(resp); werr != nil {
		return fmt.Errorf("failed to write report: %w", werr)
	}

	return err
}

// params collects only the flags the user set, so unset ones fall back to
// the shape defaults.
func (o *measureOptions) params(cmd *cobra.Command) map[string]interface{} {
	values := map[string]float64{
		"radius":      o.radius,
		"length":      o.length,
		"width":       o.width,
		"side":        o.side,
		"sides":       float64(o.sides),
		"side-length": o.sideLength,
	}

	params := map[string]interface{}{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := paramFlags[f.Name]; ok {
			params[key] = values[f.Name]
		}
	})
	return params
}
