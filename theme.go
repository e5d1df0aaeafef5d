package stylesys

import (
	"errors"
	"fmt"
)

// BaseKey names the unconditional entry of a responsive value.
const BaseKey = "base"

// ErrInvalidBreakpoint is returned by NewBreakpoints for empty, reserved or
// duplicate names.
var ErrInvalidBreakpoint = errors.New("invalid breakpoint")

// Breakpoint is a named min-width screen threshold.
type Breakpoint struct {
	Name     string `koanf:"name" json:"name"`
	MinWidth string `koanf:"min-width" json:"min-width"`
}

// Breakpoints is an ordered breakpoint set, smallest first.
type Breakpoints struct {
	list  []Breakpoint
	index map[string]int
}

// NewBreakpoints validates list and keeps its order.
func NewBreakpoints(list ...Breakpoint) (Breakpoints, error) {
	bps := Breakpoints{
		list:  make([]Breakpoint, 0, len(list)),
		index: make(map[string]int, len(list)),
	}
	for _, bp := range list {
		switch {
		case bp.Name == "":
			return Breakpoints{}, fmt.Errorf("%w: empty name", ErrInvalidBreakpoint)
		case bp.Name == BaseKey:
			return Breakpoints{}, fmt.Errorf("%w: %q is reserved", ErrInvalidBreakpoint, bp.Name)
		}
		if _, dup := bps.index[bp.Name]; dup {
			return Breakpoints{}, fmt.Errorf("%w: duplicate %q", ErrInvalidBreakpoint, bp.Name)
		}
		bps.index[bp.Name] = len(bps.list)
		bps.list = append(bps.list, bp)
	}
	return bps, nil
}

// DefaultBreakpoints returns sm, md, lg, xl and 2xl.
func DefaultBreakpoints() Breakpoints {
	bps, _ := NewBreakpoints(
		Breakpoint{Name: "sm", MinWidth: "640px"},
		Breakpoint{Name: "md", MinWidth: "768px"},
		Breakpoint{Name: "lg", MinWidth: "1024px"},
		Breakpoint{Name: "xl", MinWidth: "1280px"},
		Breakpoint{Name: "2xl", MinWidth: "1536px"},
	)
	return bps
}

// Len returns the number of breakpoints.
func (b Breakpoints) Len() int { return len(b.list) }

// At returns the i-th breakpoint.
func (b Breakpoints) At(i int) Breakpoint { return b.list[i] }

// Lookup finds a breakpoint by name.
func (b Breakpoints) Lookup(name string) (Breakpoint, bool) {
	i, ok := b.index[name]
	if !ok {
		return Breakpoint{}, false
	}
	return b.list[i], true
}

// Names returns breakpoint names in order.
func (b Breakpoints) Names() []string {
	names := make([]string, len(b.list))
	for i, bp := range b.list {
		names[i] = bp.Name
	}
	return names
}

// MediaQuery returns the at-rule prelude for name, e.g.
// "@media (min-width: 768px)". Unknown names are used as the query itself.
func (b Breakpoints) MediaQuery(name string) string {
	bp, ok := b.Lookup(name)
	if !ok || bp.MinWidth == "" {
		return "@media " + name
	}
	return "@media (min-width: " + bp.MinWidth + ")"
}
