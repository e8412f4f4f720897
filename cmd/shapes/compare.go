package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/shapes/internal/application/dto"
)

type compareOptions struct {
	left  string
	right string
}

func newCompareCmd(root *rootOptions) *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two shapes in both directions",
		Long: `Compare two shapes with the shapes equality rules and report the result
from each side. Equality is not always symmetric: a square rectangle needs an
exact side match with a four-sided polygon, the polygon only a match within
0.00001.`,
		Example: `  shapes compare --left circle:radius=1 --right circle:radius=1.000001
  shapes compare --left rectangle:side=2 --right polygon:sides=4,side-length=2.000001`,
		Args: cobra.NoArgs,
		RunE: root.withContainer(func(cc *CommandContext, _ *cobra.Command, _ []string) error {
			return runCompare(cc, opts)
		}),
	}

	cmd.Flags().StringVar(&opts.left, "left", "", "left shape as kind[:key=value,...]")
	cmd.Flags().StringVar(&opts.right, "right", "", "right shape as kind[:key=value,...]")
	_ = cmd.MarkFlagRequired("left")
	_ = cmd.MarkFlagRequired("right")

	return cmd
}

func runCompare(cc *CommandContext, opts *compareOptions) error {
	left, err := parseShapeSpec(opts.left)
	if err != nil {
		return fmt.Errorf("--left: %w", err)
	}
	right, err := parseShapeSpec(opts.right)
	if err != nil {
		return fmt.Errorf("--right: %w", err)
	}

	resp, err := cc.Container.MeasureService().Compare(cc.Context, dto.CompareRequest{Left: left, Right: right})
	if err != nil {
		return err
	}

	formatter, err := cc.Formatter()
	if err != nil {
		return err
	}
	return formatter.FormatComparison(resp)
}
