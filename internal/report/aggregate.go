package report

import (
	"fmt"

	"github.com/nao1215/shapereport/internal/shape"
	"github.com/shopspring/decimal"
)

// Bucket holds the running totals of one shape kind.
type Bucket struct {
	Kind      shape.Kind
	Count     int
	Area      decimal.Decimal
	Perimeter decimal.Decimal
}

// Summary is the aggregated, language-independent content of a report.
// Totals are kept unrounded; rounding happens only when formatting.
type Summary struct {
	// Buckets has one entry per kind in canonical order, including kinds
	// with no shapes.
	Buckets []Bucket

	// Count is the total number of shapes.
	Count int

	// Area is the sum of every shape's area.
	Area decimal.Decimal

	// Perimeter is the sum of every shape's perimeter.
	Perimeter decimal.Decimal
}

// Aggregate groups shapes by kind and sums counts, areas and perimeters.
// It fails with shape.ErrUnknownShapeKind if any shape has an invalid kind.
func Aggregate(shapes []shape.Shape) (*Summary, error) {
	order := shape.Kinds()

	buckets := make(map[shape.Kind]*Bucket, len(order))
	for _, k := range order {
		buckets[k] = &Bucket{Kind: k}
	}

	for i, s := range shapes {
		b, ok := buckets[s.Kind()]
		if !ok {
			return nil, fmt.Errorf("shape %d: %w: %d", i, shape.ErrUnknownShapeKind, int(s.Kind()))
		}

		area, err := s.Area()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		perimeter, err := s.Perimeter()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}

		b.Count++
		b.Area = b.Area.Add(area)
		b.Perimeter = b.Perimeter.Add(perimeter)
	}

	summary := &Summary{
		Buckets: make([]Bucket, 0, len(order)),
	}
	for _, k := range order {
		b := buckets[k]
		summary.Buckets = append(summary.Buckets, *b)
		summary.Count += b.Count
		summary.Area = summary.Area.Add(b.Area)
		summary.Perimeter = summary.Perimeter.Add(b.Perimeter)
	}

	return summary, nil
}

// Empty reports whether the summary was built from no shapes.
func (s *Summary) Empty() bool {
	return s.Count == 0
}

// Occupied returns the buckets with at least one shape, in canonical order.
func (s *Summary) Occupied() []Bucket {
	occupied := make([]Bucket, 0, len(s.Buckets))
	for _, b := range s.Buckets {
		if b.Count > 0 {
			occupied = append(occupied, b)
		}
	}
	return occupied
}

// Bucket returns the bucket of a kind.
func (s *Summary) Bucket(k shape.Kind) (Bucket, bool) {
	for _, b := range s.Buckets {
		if b.Kind == k {
			return b, true
		}
	}
	return Bucket{}, false
}
