package shape

import (
	"fmt"
	"strings"
)

// Kind identifies one of the closed set of supported shapes.
// The zero value is not a valid kind.
type Kind int

const (
	// KindSquare is a square; base is the side length.
	KindSquare Kind = iota + 1

	// KindCircle is a circle; base is the diameter.
	KindCircle

	// KindEquilateralTriangle is an equilateral triangle; base is the side length.
	KindEquilateralTriangle

	// KindTrapezoid is a trapezoid described by both parallel sides and
	// the height.
	KindTrapezoid

	// KindRectangle is a rectangle described by base and height.
	KindRectangle
)

// canonicalOrder is the order kinds appear in reports.
var canonicalOrder = []Kind{
	KindSquare,
	KindCircle,
	KindEquilateralTriangle,
	KindTrapezoid,
	KindRectangle,
}

// Kinds returns every supported kind in canonical report order.
// The returned slice is a copy and may be modified by the caller.
func Kinds() []Kind {
	kinds := make([]Kind, len(canonicalOrder))
	copy(kinds, canonicalOrder)
	return kinds
}

// Valid reports whether k belongs to the supported set.
func (k Kind) Valid() bool {
	switch k {
	case KindSquare, KindCircle, KindEquilateralTriangle, KindTrapezoid, KindRectangle:
		return true
	default:
		return false
	}
}

// String returns the identifier used in shape files and on the command line.
func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "square"
	case KindCircle:
		return "circle"
	case KindEquilateralTriangle:
		return "equilateral-triangle"
	case KindTrapezoid:
		return "trapezoid"
	case KindRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// kindAliases maps accepted spellings to kinds.
var kindAliases = map[string]Kind{
	"square":               KindSquare,
	"circle":               KindCircle,
	"equilateral-triangle": KindEquilateralTriangle,
	"equilateraltriangle":  KindEquilateralTriangle,
	"triangle":             KindEquilateralTriangle,
	"trapezoid":            KindTrapezoid,
	"trapezium":            KindTrapezoid,
	"rectangle":            KindRectangle,
}

// ParseKind converts a kind identifier to a Kind.
// Matching is case-insensitive and treats '_' and ' ' like '-'.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)

	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShapeKind, s)
}
