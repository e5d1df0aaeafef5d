package stylegen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/stylesys"
	"go.uber.org/multierr"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "styles")
	writeFile(t, filepath.Join(src, "a.style.yaml"), `
rules:
  - selector: .card
    layout:
      width: 10
      display: flex
      zIndex: { base: 1, md: 2 }
`)
	writeFile(t, filepath.Join(src, "b.style.yaml"), `
rules:
  - selector: .hero
    layout:
      height: { md: 400, lg: 600 }
      overflow: hidden
`)

	config := Config{
		SourceDir:  src,
		Includes:   []string{"**/*.style.yaml"},
		OutputFile: filepath.Join(dir, "dist", "layout.css"),
	}

	result, err := Generate(context.Background(), config, nil)
	require.NoError(t, err)
	require.NoError(t, result.Err())

	want := ".card{width:10px;display:flex;z-index:1;}\n" +
		".hero{overflow:hidden;}\n" +
		"@media (min-width: 768px){\n" +
		".card{z-index:2;}\n" +
		".hero{height:400px;}\n" +
		"}\n" +
		"@media (min-width: 1024px){\n" +
		".hero{height:600px;}\n" +
		"}\n"
	assert.Equal(t, want, result.CSS)

	written, err := os.ReadFile(config.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, want, string(written))

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 2, result.RulesBuilt)
	assert.Equal(t, 7, result.Declarations)
	assert.Equal(t, []string{"md", "lg"}, result.Breakpoints)
	assert.Equal(t, []FileResult{
		{Path: filepath.Join(src, "a.style.yaml"), Rules: 1, Declarations: 4},
		{Path: filepath.Join(src, "b.style.yaml"), Rules: 1, Declarations: 3},
	}, result.Files)
}

func TestGenerate_CustomBreakpoints(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), `
rules:
  - selector: .nav
    layout:
      display: [none, flex]
`)

	config := Config{
		SourceDir: src,
		Includes:  []string{"*.style.yaml"},
		Breakpoints: []stylesys.Breakpoint{
			{Name: "tablet", MinWidth: "700px"},
		},
	}

	result, err := Generate(context.Background(), config, nil)
	require.NoError(t, err)
	assert.Equal(t, ".nav{display:none;}\n@media (min-width: 700px){\n.nav{display:flex;}\n}\n", result.CSS)
}

func TestGenerate_InvalidBreakpoints(t *testing.T) {
	config := Config{
		SourceDir:   t.TempDir(),
		Breakpoints: []stylesys.Breakpoint{{Name: "base"}},
	}

	_, err := Generate(context.Background(), config, nil)
	require.ErrorIs(t, err, stylesys.ErrInvalidBreakpoint)
}

func TestGenerate_CollectsErrors(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), `
rules:
  - selector: .ok
    layout:
      cursor: pointer
      margin: 4
  - selector: .bad
    layout:
      width: { huge: 10 }
`)
	writeFile(t, filepath.Join(src, "b.style.yaml"), "rules: nope\n")

	config := Config{SourceDir: src, Includes: []string{"*.style.yaml"}}

	result, err := Generate(context.Background(), config, nil)
	require.NoError(t, err)

	assert.Equal(t, ".ok{cursor:pointer;}\n", result.CSS)
	assert.Equal(t, 1, result.RulesBuilt)
	require.Len(t, result.Errors, 2)
	assert.ErrorIs(t, result.Errors[0], stylesys.ErrUnknownBreakpoint)
	assert.Contains(t, result.Errors[0].Error(), ".bad")
	assert.ErrorIs(t, result.Errors[1], ErrInvalidDocument)
	assert.Len(t, multierr.Errors(result.Err()), 2)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `unknown layout key "margin"`)
}

func TestGenerate_Canceled(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), "rules: []\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, Config{SourceDir: src, Includes: []string{"*.style.yaml"}}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
