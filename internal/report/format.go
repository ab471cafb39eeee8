package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// displayPlaces is the number of decimal places shown in reports.
const displayPlaces = 2

// FormatDecimal formats a value for display with the "#.##" pattern:
// rounded half away from zero to two places, without trailing zeros, a
// bare decimal point, or a thousands separator. The integer part is
// optional, so values below one have no leading zero and a value that
// rounds to zero prints as the empty string.
//
//	3        -> "3"
//	3.14159  -> "3.14"
//	2.675    -> "2.68"
//	0.25     -> ".25"
//	-0.25    -> "-.25"
//	0.004    -> ""
func FormatDecimal(d decimal.Decimal) string {
	rounded := d.Round(displayPlaces)
	if rounded.IsZero() {
		return ""
	}

	s := rounded.String()
	if rest, ok := strings.CutPrefix(s, "-0."); ok {
		return "-." + rest
	}
	if rest, ok := strings.CutPrefix(s, "0."); ok {
		return "." + rest
	}
	return s
}

// FormatTotal formats a value for tables and machine output, where an
// empty cell would be ambiguous: like FormatDecimal, but with the leading
// zero kept and zero printed as "0".
func FormatTotal(d decimal.Decimal) string {
	return d.Round(displayPlaces).String()
}
