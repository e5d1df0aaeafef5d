package stylesys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesheet_String(t *testing.T) {
	sheet := NewStylesheet(DefaultBreakpoints())

	card, err := Layout(LayoutProps{
		Width:   Responsive{"base": "100%", "lg": 960, "md": 640},
		Display: "flex",
	})
	require.NoError(t, err)
	sheet.Add(".card", card)

	media, err := Layout(LayoutProps{ObjectFit: Responsive{"md": "cover"}})
	require.NoError(t, err)
	sheet.Add(".card img", media)

	want := ".card{width:100%;display:flex;}\n" +
		"@media (min-width: 768px){\n" +
		".card{width:640px;}\n" +
		".card img{object-fit:cover;}\n" +
		"}\n" +
		"@media (min-width: 1024px){\n" +
		".card{width:960px;}\n" +
		"}\n"
	assert.Equal(t, want, sheet.String())
	assert.Equal(t, []string{"md", "lg"}, sheet.MediaNames())
	assert.Len(t, sheet.Rules(), 2)
}

func TestStylesheet_UnknownBreakpointsRenderLast(t *testing.T) {
	sheet := NewStylesheet(DefaultBreakpoints())
	sheet.Add(".a", ResponsiveStyle{Media: map[string]string{
		"print":  "display:none;",
		"sm":     "display:block;",
		"aural":  "cursor:none;",
		"unused": "",
	}})

	assert.Equal(t, []string{"sm", "aural", "print"}, sheet.MediaNames())
	assert.Equal(t, "@media (min-width: 640px){\n.a{display:block;}\n}\n"+
		"@media aural{\n.a{cursor:none;}\n}\n"+
		"@media print{\n.a{display:none;}\n}\n", sheet.String())
}

func TestStylesheet_Empty(t *testing.T) {
	sheet := NewStylesheet(DefaultBreakpoints())
	assert.Equal(t, "", sheet.String())

	sheet.Add(".empty", ResponsiveStyle{})
	assert.Equal(t, "", sheet.String())
	assert.Empty(t, sheet.MediaNames())
}

func TestMerge(t *testing.T) {
	a := ResponsiveStyle{Base: "width:1px;", Media: map[string]string{"md": "width:2px;"}}
	b := ResponsiveStyle{Base: "height:1px;", Media: map[string]string{"md": "height:2px;", "lg": "height:3px;"}}

	got := Merge(a, b)
	assert.Equal(t, "width:1px;height:1px;", got.Base)
	assert.Equal(t, map[string]string{
		"md": "width:2px;height:2px;",
		"lg": "height:3px;",
	}, got.Media)

	// inputs are not modified
	assert.Equal(t, "width:2px;", a.Media["md"])
}
