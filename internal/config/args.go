package config

import (
	"fmt"
	"strings"

	"github.com/nao1215/shapereport/internal/shape"
	"github.com/shopspring/decimal"
)

// ParseShapeArg parses a command line shape of the form "kind:dims".
// Dimensions are comma separated, in this order:
//
//	square:side  circle:diameter  triangle:side
//	rectangle:base,height  trapezoid:base,minorBase,height
func ParseShapeArg(arg string) (shape.Shape, error) {
	name, dims, ok := strings.Cut(arg, ":")
	if !ok || strings.TrimSpace(dims) == "" {
		return shape.Shape{}, fmt.Errorf("%w: %q", ErrInvalidShapeArg, arg)
	}

	kind, err := shape.ParseKind(name)
	if err != nil {
		return shape.Shape{}, err
	}

	parts := strings.Split(dims, ",")
	values := make([]decimal.Decimal, len(parts))
	for i, p := range parts {
		v, err := decimal.NewFromString(strings.TrimSpace(p))
		if err != nil {
			return shape.Shape{}, fmt.Errorf("%w: %q: %w", ErrInvalidShapeArg, arg, err)
		}
		values[i] = v
	}

	want := dimensionCount(kind)
	if len(values) != want {
		return shape.Shape{}, fmt.Errorf("%w: %q: %s takes %d dimension(s), got %d",
			ErrInvalidShapeArg, arg, kind, want, len(values))
	}

	var minorBase, height decimal.NullDecimal
	switch kind {
	case shape.KindTrapezoid:
		minorBase = decimal.NewNullDecimal(values[1])
		height = decimal.NewNullDecimal(values[2])
	case shape.KindRectangle:
		height = decimal.NewNullDecimal(values[1])
	}

	return shape.New(kind, values[0], minorBase, height)
}

// ParseShapeArgs parses every argument with ParseShapeArg.
func ParseShapeArgs(args []string) ([]shape.Shape, error) {
	shapes := make([]shape.Shape, 0, len(args))
	for _, arg := range args {
		s, err := ParseShapeArg(arg)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// dimensionCount returns how many dimensions a kind takes on the command line.
func dimensionCount(k shape.Kind) int {
	switch k {
	case shape.KindTrapezoid:
		return 3
	case shape.KindRectangle:
		return 2
	default:
		return 1
	}
}
