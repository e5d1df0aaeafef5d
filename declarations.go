package stylesys

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrBadDeclaration is returned when declaration text cannot be read.
var ErrBadDeclaration = errors.New("bad declaration")

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// String formats d the way Layout emits it.
func (d Declaration) String() string {
	return d.Property + ":" + d.Value + ";"
}

// ParseDeclarations reads a run of declarations such as the Base or Media
// text of a ResponsiveStyle. Values are not validated.
func ParseDeclarations(text string) ([]Declaration, error) {
	p := css.NewParser(parse.NewInputString(text), true)

	var decls []Declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %v", ErrBadDeclaration, err)
			}
			return decls, nil

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			var value strings.Builder
			for _, tok := range p.Values() {
				value.Write(tok.Data)
			}
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    strings.TrimSpace(value.String()),
			})

		case css.CommentGrammar:
			// skip

		default:
			return nil, fmt.Errorf("%w: unexpected %s %q", ErrBadDeclaration, gt, data)
		}
	}
}

// CountDeclarations returns the number of declarations in style across base
// and every breakpoint.
func CountDeclarations(style ResponsiveStyle) (int, error) {
	decls, err := ParseDeclarations(style.Base)
	if err != nil {
		return 0, err
	}
	n := len(decls)
	for name, text := range style.Media {
		decls, err := ParseDeclarations(text)
		if err != nil {
			return 0, fmt.Errorf("breakpoint %s: %w", name, err)
		}
		n += len(decls)
	}
	return n, nil
}
