// Package services contains application use cases.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/shapes/internal/application/dto"
	apperrors "github.com/reglet-dev/shapes/internal/application/errors"
	"github.com/reglet-dev/shapes/internal/application/ports"
	domainservices "github.com/reglet-dev/shapes/internal/domain/services"
	"github.com/reglet-dev/shapes/internal/domain/values"
	"github.com/reglet-dev/shapes/shapes"
)

// MeasureService builds shapes from requests, measures them and compares
// them.
type MeasureService struct {
	validator ports.ParamsValidator
	checker   ports.ExpectationChecker
	logger    *slog.Logger
}

// NewMeasureService creates a new measure service.
func NewMeasureService(validator ports.ParamsValidator, checker ports.ExpectationChecker, logger *slog.Logger) *MeasureService {
	if logger == nil {
		logger = slog.Default()
	}
	if checker == nil {
		checker = domainservices.NewExpectationEvaluator()
	}

	return &MeasureService{
		validator: validator,
		checker:   checker,
		logger:    logger,
	}
}

// Build validates req and constructs the shape it describes. The returned
// shape is a *shapes.Circle, *shapes.Rectangle or *shapes.RegularPolygon.
func (s *MeasureService) Build(req dto.MeasureRequest) (any, values.Kind, error) {
	kind, err := values.NewKind(req.Kind)
	if err != nil {
		return nil, values.KindUnknown, apperrors.WrapValidationError("kind", "unknown shape kind", err)
	}

	if s.validator != nil {
		if err := s.validator.ValidateParams(kind, req.Params); err != nil {
			return nil, kind, err
		}
	}

	var shape any
	switch kind {
	case values.KindCircle:
		shape, err = buildCircle(req.Params)
	case values.KindRectangle:
		shape, err = buildRectangle(req.Params)
	case values.KindRegularPolygon:
		shape, err = buildRegularPolygon(req.Params)
	default:
		return nil, kind, apperrors.NewValidationError("kind", fmt.Sprintf("unsupported shape kind %q", kind))
	}
	if err != nil {
		return nil, kind, apperrors.WrapValidationError("params", fmt.Sprintf("cannot build %s", kind), err)
	}

	s.logger.Debug("built shape", "kind", kind.String(), "shape", shape)
	return shape, kind, nil
}

// Measure builds the requested shape and reports its derived quantities.
// If any expect expression fails, the report is returned together with an
// *apperrors.ExpectationError.
func (s *MeasureService) Measure(ctx context.Context, req dto.MeasureRequest) (*dto.MeasurementResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shape, kind, err := s.Build(req)
	if err != nil {
		return nil, err
	}

	resp := measure(shape, kind)
	resp.ID = values.NewReportID().String()

	if len(req.Expect) == 0 {
		return resp, nil
	}

	env := domainservices.MeasurementEnv{
		Kind:        resp.Kind,
		Description: resp.Description,
		Area:        resp.Area,
		Perimeter:   resp.Perimeter,
		Sides:       resp.Sides,
		Params:      resp.Params,
	}
	outcomes, allPassed := s.checker.Evaluate(env, req.Expect)

	var failed []string
	for _, o := range outcomes {
		resp.Expectations = append(resp.Expectations, dto.ExpectationResult{
			Expression: o.Expression,
			Passed:     o.Passed,
			Message:    o.Message,
		})
		if !o.Passed {
			failed = append(failed, o.Expression)
			s.logger.Warn("expectation failed", "expression", o.Expression, "message", o.Message)
		}
	}

	if !allPassed {
		return resp, apperrors.NewExpectationError(resp.Description, failed)
	}
	return resp, nil
}

// Compare builds both shapes and reports shapes.Equal in each direction.
func (s *MeasureService) Compare(ctx context.Context, req dto.CompareRequest) (*dto.ComparisonResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	left, leftKind, err := s.Build(req.Left)
	if err != nil {
		return nil, fmt.Errorf("left shape: %w", err)
	}
	right, rightKind, err := s.Build(req.Right)
	if err != nil {
		return nil, fmt.Errorf("right shape: %w", err)
	}

	resp := &dto.ComparisonResponse{
		ID:              values.NewReportID().String(),
		Left:            *measure(left, leftKind),
		Right:           *measure(right, rightKind),
		LeftEqualsRight: shapes.Equal(left, right),
		RightEqualsLeft: shapes.Equal(right, left),
	}

	if !resp.Symmetric() {
		s.logger.Debug("asymmetric comparison",
			"left", resp.Left.Description,
			"right", resp.Right.Description,
			"left_equals_right", resp.LeftEqualsRight,
			"right_equals_left", resp.RightEqualsLeft)
	}

	return resp, nil
}

// measure derives a report from one of the three shape pointer types.
func measure(shape any, kind values.Kind) *dto.MeasurementResponse {
	resp := &dto.MeasurementResponse{Kind: kind.String()}

	switch sh := shape.(type) {
	case *shapes.Circle:
		resp.Description = sh.String()
		resp.Area = sh.Area()
		resp.Perimeter = sh.Circumference()
		resp.Params = map[string]float64{"radius": sh.Radius()}
	case *shapes.Rectangle:
		resp.Description = sh.String()
		resp.Area = sh.Area()
		resp.Perimeter = sh.Perimeter()
		resp.Sides = 4
		resp.Params = map[string]float64{"length": sh.Length(), "width": sh.Width()}
	case *shapes.RegularPolygon:
		resp.Description = sh.String()
		resp.Area = sh.Area()
		resp.Perimeter = sh.Perimeter()
		resp.Sides = sh.NumSides()
		resp.Params = map[string]float64{"sides": float64(sh.NumSides()), "side_length": sh.SideLength()}
	}

	return resp
}

func buildCircle(params map[string]interface{}) (*shapes.Circle, error) {
	radius, ok, err := floatParam(params, "radius")
	if err != nil {
		return nil, err
	}
	if !ok {
		return shapes.DefaultCircle(), nil
	}
	return shapes.NewCircle(radius)
}

func buildRectangle(params map[string]interface{}) (*shapes.Rectangle, error) {
	side, ok, err := floatParam(params, "side")
	if err != nil {
		return nil, err
	}
	if ok {
		return shapes.NewSquare(side)
	}

	r := shapes.DefaultRectangle()
	if length, ok, err := floatParam(params, "length"); err != nil {
		return nil, err
	} else if ok {
		if err := r.SetLength(length); err != nil {
			return nil, err
		}
	}
	if width, ok, err := floatParam(params, "width"); err != nil {
		return nil, err
	} else if ok {
		if err := r.SetWidth(width); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func buildRegularPolygon(params map[string]interface{}) (*shapes.RegularPolygon, error) {
	sides, hasSides, err := intParam(params, "sides")
	if err != nil {
		return nil, err
	}
	length, hasLength, err := floatParam(params, "side_length")
	if err != nil {
		return nil, err
	}

	switch {
	case hasSides && hasLength:
		return shapes.NewRegularPolygon(sides, length)
	case hasSides:
		return shapes.RegularPolygonFromSideCount(sides)
	case hasLength:
		return shapes.RegularPolygonFromSideLength(length)
	default:
		return shapes.DefaultRegularPolygon(), nil
	}
}

// floatParam reads an optional numeric parameter.
func floatParam(params map[string]interface{}, key string) (float64, bool, error) {
	raw, ok := params[key]
	if !ok {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("%s: %w", key, err)
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("%s: expected a number, got %T", key, raw)
	}
}

// intParam reads an optional whole-number parameter.
func intParam(params map[string]interface{}, key string) (int, bool, error) {
	f, ok, err := floatParam(params, key)
	if err != nil || !ok {
		return 0, ok, err
	}
	n := int(f)
	if float64(n) != f {
		return 0, false, fmt.Errorf("%s: expected a whole number, got %v", key, f)
	}
	return n, true, nil
}
