package shape

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"
)

// Constants converted to decimal once so every calculation multiplies
// decimals only.
var (
	pi        = decimal.NewFromFloat(math.Pi)
	sqrt3     = decimal.NewFromFloat(math.Sqrt(3))
	two       = decimal.NewFromInt(2)
	three     = decimal.NewFromInt(3)
	four      = decimal.NewFromInt(4)
	sqrt3Div4 = sqrt3.Div(four)
)

// Shape is an immutable geometric figure.
// Use the New* constructors; the zero value has no valid kind and every
// calculation on it returns ErrUnknownShapeKind.
type Shape struct {
	kind      Kind
	base      decimal.Decimal
	minorBase decimal.NullDecimal
	height    decimal.NullDecimal
}

// NewSquare creates a square with the given side length.
func NewSquare(side decimal.Decimal) Shape {
	return Shape{kind: KindSquare, base: side}
}

// NewCircle creates a circle with the given diameter.
func NewCircle(diameter decimal.Decimal) Shape {
	return Shape{kind: KindCircle, base: diameter}
}

// NewEquilateralTriangle creates an equilateral triangle with the given side length.
func NewEquilateralTriangle(side decimal.Decimal) Shape {
	return Shape{kind: KindEquilateralTriangle, base: side}
}

// NewTrapezoid creates a trapezoid from its two parallel sides and its height.
func NewTrapezoid(base, minorBase, height decimal.Decimal) Shape {
	return Shape{
		kind:      KindTrapezoid,
		base:      base,
		minorBase: decimal.NewNullDecimal(minorBase),
		height:    decimal.NewNullDecimal(height),
	}
}

// NewRectangle creates a rectangle with the given base and height.
func NewRectangle(base, height decimal.Decimal) Shape {
	return Shape{
		kind:   KindRectangle,
		base:   base,
		height: decimal.NewNullDecimal(height),
	}
}

// New creates a shape of any kind and checks that the dimensions the kind
// needs are present and non-negative. Dimensions the kind does not use are
// dropped.
func New(kind Kind, base decimal.Decimal, minorBase, height decimal.NullDecimal) (Shape, error) {
	if base.IsNegative() {
		return Shape{}, fmt.Errorf("%w: base %s", ErrNegativeDimension, base)
	}

	switch kind {
	case KindSquare:
		return NewSquare(base), nil
	case KindCircle:
		return NewCircle(base), nil
	case KindEquilateralTriangle:
		return NewEquilateralTriangle(base), nil
	case KindTrapezoid:
		if !minorBase.Valid {
			return Shape{}, fmt.Errorf("%s: %w", kind, ErrMissingMinorBase)
		}
		if !height.Valid {
			return Shape{}, fmt.Errorf("%s: %w", kind, ErrMissingHeight)
		}
		if minorBase.Decimal.IsNegative() {
			return Shape{}, fmt.Errorf("%w: minor base %s", ErrNegativeDimension, minorBase.Decimal)
		}
		if height.Decimal.IsNegative() {
			return Shape{}, fmt.Errorf("%w: height %s", ErrNegativeDimension, height.Decimal)
		}
		return NewTrapezoid(base, minorBase.Decimal, height.Decimal), nil
	case KindRectangle:
		if !height.Valid {
			return Shape{}, fmt.Errorf("%s: %w", kind, ErrMissingHeight)
		}
		if height.Decimal.IsNegative() {
			return Shape{}, fmt.Errorf("%w: height %s", ErrNegativeDimension, height.Decimal)
		}
		return NewRectangle(base, height.Decimal), nil
	default:
		return Shape{}, fmt.Errorf("%w: %d", ErrUnknownShapeKind, int(kind))
	}
}

// Kind returns the kind of the shape.
func (s Shape) Kind() Kind {
	return s.kind
}

// Base returns the primary dimension.
func (s Shape) Base() decimal.Decimal {
	return s.base
}

// MinorBase returns the shorter parallel side; Valid is false unless the
// shape is a trapezoid.
func (s Shape) MinorBase() decimal.NullDecimal {
	return s.minorBase
}

// Height returns the height; Valid is false unless the shape is a
// trapezoid or a rectangle.
func (s Shape) Height() decimal.NullDecimal {
	return s.height
}

// Area returns the area of the shape.
//
//	Square               base²
//	Circle               π·(base/2)²
//	EquilateralTriangle  (√3/4)·base²
//	Trapezoid            height·(base + minorBase)/2
//	Rectangle            base·height
func (s Shape) Area() (decimal.Decimal, error) {
	switch s.kind {
	case KindSquare:
		return s.base.Mul(s.base), nil
	case KindCircle:
		radius := s.base.Div(two)
		return pi.Mul(radius).Mul(radius), nil
	case KindEquilateralTriangle:
		return sqrt3Div4.Mul(s.base).Mul(s.base), nil
	case KindTrapezoid:
		return s.height.Decimal.Mul(s.base.Add(s.minorBase.Decimal)).Div(two), nil
	case KindRectangle:
		return s.base.Mul(s.height.Decimal), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %d", ErrUnknownShapeKind, int(s.kind))
	}
}

// Perimeter returns the perimeter of the shape.
// A circle's base is its diameter, so its perimeter is π·base.
//
//	Square               4·base
//	Circle               π·base
//	EquilateralTriangle  3·base
//	Trapezoid            base + minorBase + 2·height
//	Rectangle            2·base + 2·height
func (s Shape) Perimeter() (decimal.Decimal, error) {
	switch s.kind {
	case KindSquare:
		return four.Mul(s.base), nil
	case KindCircle:
		return pi.Mul(s.base), nil
	case KindEquilateralTriangle:
		return three.Mul(s.base), nil
	case KindTrapezoid:
		return s.base.Add(s.minorBase.Decimal).Add(two.Mul(s.height.Decimal)), nil
	case KindRectangle:
		return two.Mul(s.base).Add(two.Mul(s.height.Decimal)), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %d", ErrUnknownShapeKind, int(s.kind))
	}
}

// String returns a compact description such as "trapezoid(6, 4, h=3)".
func (s Shape) String() string {
	switch {
	case s.minorBase.Valid && s.height.Valid:
		return fmt.Sprintf("%s(%s, %s, h=%s)", s.kind, s.base, s.minorBase.Decimal, s.height.Decimal)
	case s.height.Valid:
		return fmt.Sprintf("%s(%s, h=%s)", s.kind, s.base, s.height.Decimal)
	default:
		return fmt.Sprintf("%s(%s)", s.kind, s.base)
	}
}

// LogValue implements slog.LogValuer.
func (s Shape) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", s.kind.String()),
		slog.String("base", s.base.String()),
	}
	if s.minorBase.Valid {
		attrs = append(attrs, slog.String("minor_base", s.minorBase.Decimal.String()))
	}
	if s.height.Valid {
		attrs = append(attrs, slog.String("height", s.height.Decimal.String()))
	}
	return slog.GroupValue(attrs...)
}
