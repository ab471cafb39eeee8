package config

import (
	"fmt"

	"github.com/nao1215/shapereport/internal/shape"
	"github.com/shopspring/decimal"
)

// ShapeSpec is one shape as written in a shape file.
//
//	- kind: trapezoid
//	  base: 6
//	  minorBase: 4
//	  height: 3
type ShapeSpec struct {
	// Kind is a shape identifier accepted by shape.ParseKind.
	Kind string `yaml:"kind" json:"kind"`

	// Base is the side, diameter or longer parallel side.
	Base decimal.Decimal `yaml:"base" json:"base"`

	// MinorBase is the shorter parallel side of a trapezoid.
	MinorBase *decimal.Decimal `yaml:"minorBase,omitempty" json:"minorBase,omitempty"`

	// Height is required for trapezoids and rectangles.
	Height *decimal.Decimal `yaml:"height,omitempty" json:"height,omitempty"`
}

// File represents the structure of a shape file.
type File struct {
	// Language is the default report language for this file.
	Language string `yaml:"language,omitempty"`

	// Format is the default output format for this file.
	Format string `yaml:"format,omitempty"`

	// Shapes are the shapes to report on, in input order.
	Shapes []ShapeSpec `yaml:"shapes"`
}

// Shape converts the entry to a validated shape.
func (s ShapeSpec) Shape() (shape.Shape, error) {
	kind, err := shape.ParseKind(s.Kind)
	if err != nil {
		return shape.Shape{}, err
	}
	return shape.New(kind, s.Base, nullable(s.MinorBase), nullable(s.Height))
}

// SpecFromShape converts a shape back to its file representation.
func SpecFromShape(s shape.Shape) ShapeSpec {
	spec := ShapeSpec{
		Kind: s.Kind().String(),
		Base: s.Base(),
	}
	if mb := s.MinorBase(); mb.Valid {
		v := mb.Decimal
		spec.MinorBase = &v
	}
	if h := s.Height(); h.Valid {
		v := h.Decimal
		spec.Height = &v
	}
	return spec
}

// ShapeList converts every entry of the file to a shape.
// Errors name the 1-based position of the offending entry.
func (f *File) ShapeList() ([]shape.Shape, error) {
	shapes := make([]shape.Shape, 0, len(f.Shapes))
	for i, spec := range f.Shapes {
		s, err := spec.Shape()
		if err != nil {
			return nil, fmt.Errorf("%w #%d: %w", ErrInvalidShapeSpec, i+1, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// nullable converts an optional decimal to a NullDecimal.
func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
