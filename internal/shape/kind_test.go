package shape

import (
	"errors"
	"testing"
)

// TestKindsCanonicalOrder documents the order kinds appear in reports.
func TestKindsCanonicalOrder(t *testing.T) {
	t.Parallel()

	want := []Kind{KindSquare, KindCircle, KindEquilateralTriangle, KindTrapezoid, KindRectangle}
	got := Kinds()

	if len(got) != len(want) {
		t.Fatalf("expected %d kinds, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, expected %s", i, got[i], want[i])
		}
	}

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()

		k := Kinds()
		k[0] = KindRectangle
		if Kinds()[0] != KindSquare {
			t.Error("modifying the result of Kinds changed the canonical order")
		}
	})
}

// TestKindString tests the String method of Kind.
func TestKindString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind     Kind
		expected string
	}{
		{KindSquare, "square"},
		{KindCircle, "circle"},
		{KindEquilateralTriangle, "equilateral-triangle"},
		{KindTrapezoid, "trapezoid"},
		{KindRectangle, "rectangle"},
		{Kind(0), "kind(0)"},
		{Kind(42), "kind(42)"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.kind.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.kind.String(), tc.expected)
			}
		})
	}
}

// TestKindValid tests membership in the closed set.
func TestKindValid(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
	}
	for _, k := range []Kind{0, -1, 6, 100} {
		if k.Valid() {
			t.Errorf("%d should not be valid", int(k))
		}
	}
}

// TestParseKind tests parsing of kind identifiers and aliases.
func TestParseKind(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		want  Kind
	}{
		{"square", KindSquare},
		{"SQUARE", KindSquare},
		{" circle ", KindCircle},
		{"equilateral-triangle", KindEquilateralTriangle},
		{"equilateral_triangle", KindEquilateralTriangle},
		{"Equilateral Triangle", KindEquilateralTriangle},
		{"triangle", KindEquilateralTriangle},
		{"trapezoid", KindTrapezoid},
		{"trapezium", KindTrapezoid},
		{"rectangle", KindRectangle},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseKind(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, expected %s", got, tc.want)
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		_, err := ParseKind("hexagon")
		if !errors.Is(err, ErrUnknownShapeKind) {
			t.Errorf("expected ErrUnknownShapeKind, got %v", err)
		}
	})
}
