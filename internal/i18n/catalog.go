package i18n

import (
	"fmt"

	"github.com/nao1215/shapereport/internal/shape"
)

// Concept identifies a piece of user-facing text independently of language.
type Concept string

// Report concepts.
const (
	// ConceptHeading is the title of a non-empty report.
	ConceptHeading Concept = "heading"

	// ConceptEmptyList is the only text of a report with no shapes.
	ConceptEmptyList Concept = "empty_list"

	// ConceptArea labels area values.
	ConceptArea Concept = "area"

	// ConceptPerimeter labels perimeter values.
	ConceptPerimeter Concept = "perimeter"

	// ConceptShapes is the plural noun used in the totals line.
	ConceptShapes Concept = "shapes"

	// ConceptTotal labels the totals line.
	ConceptTotal Concept = "total"

	// ConceptShapeColumn and ConceptCountColumn are table column headers.
	ConceptShapeColumn Concept = "shape_column"
	ConceptCountColumn Concept = "count_column"
)

// KindConcept returns the concept holding the singular name of a shape kind.
func KindConcept(k shape.Kind) (Concept, error) {
	switch k {
	case shape.KindSquare:
		return "kind.square", nil
	case shape.KindCircle:
		return "kind.circle", nil
	case shape.KindEquilateralTriangle:
		return "kind.equilateral_triangle", nil
	case shape.KindTrapezoid:
		return "kind.trapezoid", nil
	case shape.KindRectangle:
		return "kind.rectangle", nil
	default:
		return "", fmt.Errorf("%w: %d", shape.ErrUnknownShapeKind, int(k))
	}
}

// entry keys the catalog by concept and language.
type entry struct {
	concept  Concept
	language Language
}

// catalog holds every localized string.
// A new language needs one row per concept; a new kind needs one
// KindConcept case and a row per language.
var catalog = map[entry]string{
	{ConceptHeading, Spanish}:    "Reporte de Formas",
	{ConceptHeading, English}:    "Shapes report",
	{ConceptHeading, Portuguese}: "Relatório de formas",

	{ConceptEmptyList, Spanish}:    "Lista vacía de formas!",
	{ConceptEmptyList, English}:    "Empty list of shapes!",
	{ConceptEmptyList, Portuguese}: "Lista vazia de formas!",

	{ConceptArea, Spanish}:    "Area",
	{ConceptArea, English}:    "Area",
	{ConceptArea, Portuguese}: "Area",

	{ConceptPerimeter, Spanish}:    "Perimetro",
	{ConceptPerimeter, English}:    "Perimeter",
	{ConceptPerimeter, Portuguese}: "Perimetro",

	{ConceptShapes, Spanish}:    "formas",
	{ConceptShapes, English}:    "shapes",
	{ConceptShapes, Portuguese}: "formas",

	{ConceptTotal, Spanish}:    "TOTAL",
	{ConceptTotal, English}:    "TOTAL",
	{ConceptTotal, Portuguese}: "TOTAL",

	{ConceptShapeColumn, Spanish}:    "Forma",
	{ConceptShapeColumn, English}:    "Shape",
	{ConceptShapeColumn, Portuguese}: "Forma",

	{ConceptCountColumn, Spanish}:    "Cantidad",
	{ConceptCountColumn, English}:    "Count",
	{ConceptCountColumn, Portuguese}: "Quantidade",

	{"kind.square", Spanish}:    "Cuadrado",
	{"kind.square", English}:    "Square",
	{"kind.square", Portuguese}: "Quadrado",

	{"kind.circle", Spanish}:    "Círculo",
	{"kind.circle", English}:    "Circle",
	{"kind.circle", Portuguese}: "Círculo",

	{"kind.equilateral_triangle", Spanish}:    "Triángulo",
	{"kind.equilateral_triangle", English}:    "Triangle",
	{"kind.equilateral_triangle", Portuguese}: "Triângulo",

	{"kind.trapezoid", Spanish}:    "Trapecio",
	{"kind.trapezoid", English}:    "Trapezium",
	{"kind.trapezoid", Portuguese}: "Trapézio",

	{"kind.rectangle", Spanish}:    "Rectángulo",
	{"kind.rectangle", English}:    "Rectangle",
	{"kind.rectangle", Portuguese}: "Retângulo",
}

// Text returns the text of a concept in the given language.
func Text(c Concept, l Language) (string, error) {
	if !l.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedLanguage, int(l))
	}

	s, ok := catalog[entry{c, l}]
	if !ok {
		return "", fmt.Errorf("no %s text for concept %q", l, c)
	}
	return s, nil
}

// KindName returns the localized name of a kind for count items.
// Names are pluralized by appending "s" when count is greater than one,
// in every language.
func KindName(k shape.Kind, count int, l Language) (string, error) {
	c, err := KindConcept(k)
	if err != nil {
		return "", err
	}

	name, err := Text(c, l)
	if err != nil {
		return "", err
	}

	if count > 1 {
		return name + "s", nil
	}
	return name, nil
}
