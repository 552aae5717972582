package fraction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.3333333, "⅓"},
		{1.3333333, "1⅓"},
		{2, "2"},
		{0.5, "½"},
		{2.75, "2¾"},
		{0.125, "⅛"},
		{0.6666667, "⅔"},
		{1.7, "1.7"},
		{0.35, "0.35"},
		{0, "0"},
		{12, "12"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%v)", tt.in)
	}
}

func TestFormat_NonFinite(t *testing.T) {
	assert.Equal(t, "", Format(math.NaN()))
	assert.Equal(t, "", Format(math.Inf(1)))
	assert.Equal(t, "", Format(math.Inf(-1)))
}

func TestGlyphWindowsDoNotOverlap(t *testing.T) {
	for i := range glyphs {
		for j := i + 1; j < len(glyphs); j++ {
			d := math.Abs(glyphs[i].value - glyphs[j].value)
			assert.Greater(t, d, 2*Tolerance, "%s and %s overlap", glyphs[i].text, glyphs[j].text)
		}
	}
}
