package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/shapereport/internal/i18n"
	"github.com/nao1215/shapereport/internal/shape"
	"github.com/shopspring/decimal"
)

// d builds a decimal from a literal.
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// mixedShapes returns a list with squares, circles and triangles in
// interleaved order.
func mixedShapes() []shape.Shape {
	return []shape.Shape{
		shape.NewSquare(d("5")),
		shape.NewCircle(d("3")),
		shape.NewEquilateralTriangle(d("4")),
		shape.NewSquare(d("2")),
		shape.NewEquilateralTriangle(d("9")),
		shape.NewCircle(d("2.75")),
		shape.NewEquilateralTriangle(d("4.2")),
	}
}

// TestRenderEmpty tests the output for an empty list in every language.
func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		lang i18n.Language
		want string
	}{
		{i18n.Spanish, "<h1>Lista vacía de formas!</h1>"},
		{i18n.English, "<h1>Empty list of shapes!</h1>"},
		{i18n.Portuguese, "<h1>Lista vazia de formas!</h1>"},
	}

	for _, tc := range testCases {
		t.Run(tc.lang.String(), func(t *testing.T) {
			t.Parallel()

			for _, shapes := range [][]shape.Shape{nil, {}} {
				got, err := Render(shapes, tc.lang)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.want {
					t.Errorf("got %q, expected %q", got, tc.want)
				}
			}
		})
	}
}

// TestRender tests complete reports against known output.
func TestRender(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		shapes []shape.Shape
		lang   i18n.Language
		want   string
	}{
		{
			name:   "one square in Spanish",
			shapes: []shape.Shape{shape.NewSquare(d("5"))},
			lang:   i18n.Spanish,
			want:   "<h1>Reporte de Formas</h1>1 Cuadrado | Area 25 | Perimetro 20 <br/>TOTAL:<br/>1 formas Perimetro 20 Area 25",
		},
		{
			name: "several squares in English",
			shapes: []shape.Shape{
				shape.NewSquare(d("5")),
				shape.NewSquare(d("1")),
				shape.NewSquare(d("3")),
			},
			lang: i18n.English,
			want: "<h1>Shapes report</h1>3 Squares | Area 35 | Perimeter 36 <br/>TOTAL:<br/>3 shapes Perimeter 36 Area 35",
		},
		{
			name: "squares and a circle in English",
			shapes: []shape.Shape{
				shape.NewSquare(d("2")),
				shape.NewSquare(d("3")),
				shape.NewCircle(d("4")),
			},
			lang: i18n.English,
			want: "<h1>Shapes report</h1>2 Squares | Area 13 | Perimeter 20 <br/>" +
				"1 Circle | Area 12.57 | Perimeter 12.57 <br/>" +
				"TOTAL:<br/>3 shapes Perimeter 32.57 Area 25.57",
		},
		{
			name:   "mixed kinds in English",
			shapes: mixedShapes(),
			lang:   i18n.English,
			want: "<h1>Shapes report</h1>2 Squares | Area 29 | Perimeter 28 <br/>" +
				"2 Circles | Area 13.01 | Perimeter 18.06 <br/>" +
				"3 Triangles | Area 49.64 | Perimeter 51.6 <br/>" +
				"TOTAL:<br/>7 shapes Perimeter 97.66 Area 91.65",
		},
		{
			name:   "mixed kinds in Spanish",
			shapes: mixedShapes(),
			lang:   i18n.Spanish,
			want: "<h1>Reporte de Formas</h1>2 Cuadrados | Area 29 | Perimetro 28 <br/>" +
				"2 Círculos | Area 13.01 | Perimetro 18.06 <br/>" +
				"3 Triángulos | Area 49.64 | Perimetro 51.6 <br/>" +
				"TOTAL:<br/>7 formas Perimetro 97.66 Area 91.65",
		},
		{
			name: "trapezoid and rectangles in Portuguese",
			shapes: []shape.Shape{
				shape.NewRectangle(d("5"), d("3")),
				shape.NewTrapezoid(d("6"), d("4"), d("3")),
				shape.NewRectangle(d("5"), d("3")),
			},
			lang: i18n.Portuguese,
			want: "<h1>Relatório de formas</h1>1 Trapézio | Area 15 | Perimetro 16 <br/>" +
				"2 Retângulos | Area 30 | Perimetro 32 <br/>" +
				"TOTAL:<br/>3 formas Perimetro 48 Area 45",
		},
		{
			name:   "sub-unit values drop the leading zero",
			shapes: []shape.Shape{shape.NewSquare(d("0.5")), shape.NewSquare(d("0"))},
			lang:   i18n.English,
			want:   "<h1>Shapes report</h1>2 Squares | Area .25 | Perimeter 2 <br/>TOTAL:<br/>2 shapes Perimeter 2 Area .25",
		},
		{
			name:   "zero values print empty",
			shapes: []shape.Shape{shape.NewSquare(d("0"))},
			lang:   i18n.Spanish,
			want:   "<h1>Reporte de Formas</h1>1 Cuadrado | Area  | Perimetro  <br/>TOTAL:<br/>1 formas Perimetro  Area ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tc.shapes, tc.lang)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("report mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestRenderCanonicalOrder verifies that lines follow the canonical kind
// order whatever the input order is.
func TestRenderCanonicalOrder(t *testing.T) {
	t.Parallel()

	shapes := []shape.Shape{
		shape.NewRectangle(d("1"), d("1")),
		shape.NewTrapezoid(d("2"), d("1"), d("1")),
		shape.NewEquilateralTriangle(d("1")),
		shape.NewCircle(d("1")),
		shape.NewSquare(d("1")),
	}

	got, err := Render(shapes, i18n.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := []string{"1 Square ", "1 Circle ", "1 Triangle ", "1 Trapezium ", "1 Rectangle "}
	last := -1
	for _, name := range names {
		idx := strings.Index(got, name)
		if idx < 0 {
			t.Fatalf("expected %q in output: %s", name, got)
		}
		if idx < last {
			t.Errorf("%q appears out of canonical order: %s", name, got)
		}
		last = idx
	}
}

// TestRenderOmitsAbsentKinds verifies that kinds with no shapes produce no line.
func TestRenderOmitsAbsentKinds(t *testing.T) {
	t.Parallel()

	got, err := Render([]shape.Shape{shape.NewCircle(d("2"))}, i18n.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, absent := range []string{"Square", "Triangle", "Trapezium", "Rectangle"} {
		if strings.Contains(got, absent) {
			t.Errorf("unexpected %q in output: %s", absent, got)
		}
	}
	if strings.Count(got, "<br/>") != 2 {
		t.Errorf("expected one kind line and the totals line, got: %s", got)
	}
}

// TestRenderErrors verifies that failures produce no output.
func TestRenderErrors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported language", func(t *testing.T) {
		t.Parallel()

		for _, lang := range []i18n.Language{0, 4, -1} {
			got, err := Render([]shape.Shape{shape.NewSquare(d("1"))}, lang)
			if !errors.Is(err, i18n.ErrUnsupportedLanguage) {
				t.Errorf("language %d: expected ErrUnsupportedLanguage, got %v", int(lang), err)
			}
			if got != "" {
				t.Errorf("language %d: expected no output, got %q", int(lang), got)
			}
		}
	})

	t.Run("unsupported language with empty list", func(t *testing.T) {
		t.Parallel()

		if _, err := Render(nil, i18n.Language(9)); !errors.Is(err, i18n.ErrUnsupportedLanguage) {
			t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
		}
	})

	t.Run("unknown shape kind", func(t *testing.T) {
		t.Parallel()

		shapes := []shape.Shape{shape.NewSquare(d("1")), {}}
		got, err := Render(shapes, i18n.English)
		if !errors.Is(err, shape.ErrUnknownShapeKind) {
			t.Errorf("expected ErrUnknownShapeKind, got %v", err)
		}
		if got != "" {
			t.Errorf("expected no output, got %q", got)
		}
	})
}

// TestHTMLWriter verifies the writer produces exactly the Render output.
func TestHTMLWriter(t *testing.T) {
	t.Parallel()

	shapes := mixedShapes()
	want, err := Render(shapes, i18n.Portuguese)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := Aggregate(shapes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	n, err := NewHTMLWriter(&sb, i18n.Portuguese).Write(summary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(want) {
		t.Errorf("expected %d bytes, wrote %d", len(want), n)
	}
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
