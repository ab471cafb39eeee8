// Package shape provides the geometric shapes supported by shapereport and
// the area and perimeter calculations for each of them.
//
// A Shape is an immutable value made of a Kind and the dimensions that kind
// needs:
//   - Square: side length (base)
//   - Circle: diameter (base)
//   - EquilateralTriangle: side length (base)
//   - Trapezoid: longer parallel side (base), shorter parallel side
//     (minor base) and height
//   - Rectangle: base and height
//
// All arithmetic is done with github.com/shopspring/decimal so that totals
// computed by the report package are not affected by binary floating point
// error before they are rounded for display.
//
// # Adding a shape kind
//
// Every switch over Kind in this module ends in a default arm that returns
// ErrUnknownShapeKind. Adding a kind means adding a constant here, a case to
// Area and Perimeter, and a label to the i18n catalog.
package shape
