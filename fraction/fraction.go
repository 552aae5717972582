// Package fraction formats ingredient quantities as mixed numbers using
// vulgar fraction glyphs.
package fraction

import (
	"math"
	"strconv"
)

// Tolerance is the absolute distance within which a fractional part is
// considered equal to a table entry.
const Tolerance = 1e-4

type glyph struct {
	value float64
	text  string
}

var glyphs = []glyph{
	{1.0 / 8, "⅛"},
	{1.0 / 6, "⅙"},
	{1.0 / 5, "⅕"},
	{1.0 / 4, "¼"},
	{1.0 / 3, "⅓"},
	{3.0 / 8, "⅜"},
	{1.0 / 2, "½"},
	{5.0 / 8, "⅝"},
	{2.0 / 3, "⅔"},
	{3.0 / 4, "¾"},
	{5.0 / 6, "⅚"},
	{7.0 / 8, "⅞"},
}

// Format renders amount as "<whole><glyph>" when its fractional part is a
// common culinary fraction, and as a plain decimal otherwise. Non-finite
// amounts yield the empty string.
func Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}

	whole := math.Trunc(amount)
	decimal := amount - whole

	for _, g := range glyphs {
		if math.Abs(decimal-g.value) < Tolerance {
			if whole == 0 {
				return g.text
			}
			return strconv.FormatFloat(whole, 'f', -1, 64) + g.text
		}
	}

	return strconv.FormatFloat(amount, 'f', -1, 64)
}
