package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeOnlyComposesVisualAndBorderFacets(t *testing.T) {
	base := NewStyle()
	base.Width = Points(10)
	base.FlexGrow = 1

	overlay := NewStyle()
	overlay.Width = Points(99) // layout facet: must NOT be merged
	overlay.Bold = true
	overlay.BorderStyle = BorderDouble
	overlay.Color = colorPtr(Named(Red))

	merged := base.Merge(overlay)

	assert.Equal(t, Points(10), merged.Width, "layout facets are never merged")
	assert.Equal(t, float64(1), merged.FlexGrow)
	assert.True(t, merged.Bold)
	assert.Equal(t, BorderDouble, merged.BorderStyle)
	assert.Equal(t, Named(Red), *merged.Color)
}

func TestMergeOnlyOverridesTrueBooleans(t *testing.T) {
	base := NewStyle()
	base.Italic = true

	overlay := NewStyle()
	overlay.Bold = false // explicit false must not clear base.Italic

	merged := base.Merge(overlay)
	assert.True(t, merged.Italic)
	assert.False(t, merged.Bold)
}

func TestMergeLeavesBorderStyleAloneWhenOtherIsNone(t *testing.T) {
	base := NewStyle()
	base.BorderStyle = BorderSingle

	merged := base.Merge(NewStyle())
	assert.Equal(t, BorderSingle, merged.BorderStyle)
}

func TestBorderStyleChars(t *testing.T) {
	assert.False(t, BorderNone.IsVisible())
	assert.True(t, BorderSingle.IsVisible())
	chars := BorderRound.Chars()
	assert.Equal(t, "╭", chars.TopLeft)
}

func TestColorLipglossRendering(t *testing.T) {
	assert.Equal(t, "", Reset.Lipgloss())
	assert.Equal(t, "1", Named(Red).Lipgloss())
	assert.Equal(t, "200", Ansi256(200).Lipgloss())
	assert.Equal(t, "#ff8000", RGB(0xff, 0x80, 0x00).Lipgloss())
}
