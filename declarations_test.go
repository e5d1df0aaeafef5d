package stylesys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Declaration
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "builder output",
			text: "width:10px;display:flex;z-index:1;",
			want: []Declaration{
				{Property: "width", Value: "10px"},
				{Property: "display", Value: "flex"},
				{Property: "z-index", Value: "1"},
			},
		},
		{
			name: "spacing is trimmed",
			text: "max-width: 100%; overflow-x: hidden",
			want: []Declaration{
				{Property: "max-width", Value: "100%"},
				{Property: "overflow-x", Value: "hidden"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeclarations(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDeclarations_RoundTrip(t *testing.T) {
	style, err := Layout(LayoutProps{
		Width:      Responsive{"base": 320, "md": 640},
		Display:    "block",
		Position:   "sticky",
		BoxSizing:  "border-box",
		UserSelect: "none",
	})
	require.NoError(t, err)

	decls, err := ParseDeclarations(style.Base)
	require.NoError(t, err)

	var text string
	for _, d := range decls {
		text += d.String()
	}
	assert.Equal(t, style.Base, text)

	n, err := CountDeclarations(style)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}
