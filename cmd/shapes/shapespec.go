package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reglet-dev/shapes/internal/application/dto"
)

// parseShapeSpec parses "kind" or "kind:key=value,key=value" into a
// request, e.g. "rectangle:length=2,width=3" or "polygon:sides=4,side-length=2".
// Keys may use '-' or '_'; values must be numbers.
func parseShapeSpec(spec string) (dto.MeasureRequest, error) {
	kind, rest, _ := strings.Cut(strings.TrimSpace(spec), ":")
	if kind == "" {
		return dto.MeasureRequest{}, fmt.Errorf("invalid shape %q: missing kind", spec)
	}

	req := dto.MeasureRequest{
		Kind:   kind,
		Params: map[string]interface{}{},
	}
	if strings.TrimSpace(rest) == "" {
		return req, nil
	}

	for _, field := range strings.Split(rest, ",") {
		key, value, ok := strings.Cut(field, "=")
		key = strings.ReplaceAll(strings.TrimSpace(key), "-", "_")
		if !ok || key == "" {
			return dto.MeasureRequest{}, fmt.Errorf("invalid shape %q: expected key=value, got %q", spec, field)
		}
		if _, dup := req.Params[key]; dup {
			return dto.MeasureRequest{}, fmt.Errorf("invalid shape %q: %s given twice", spec, key)
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return dto.MeasureRequest{}, fmt.Errorf("invalid shape %q: %s is not a number: %w", spec, key, err)
		}
		req.Params[key] = f
	}

	return req, nil
}
