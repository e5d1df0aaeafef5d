package stylesys

import (
	"sort"
	"strings"
)

// Rule pairs a selector with the style built for it.
type Rule struct {
	Selector string          `json:"selector"`
	Style    ResponsiveStyle `json:"style"`
}

// Stylesheet collects rules and renders them with one @media block per
// breakpoint.
type Stylesheet struct {
	breakpoints Breakpoints
	rules       []Rule
}

// NewStylesheet creates an empty stylesheet that orders @media blocks by bps.
func NewStylesheet(bps Breakpoints) *Stylesheet {
	return &Stylesheet{breakpoints: bps}
}

// Add appends a rule.
func (s *Stylesheet) Add(selector string, style ResponsiveStyle) {
	s.rules = append(s.rules, Rule{Selector: selector, Style: style})
}

// Rules returns the rules in insertion order.
func (s *Stylesheet) Rules() []Rule {
	return s.rules
}

// MediaNames returns the breakpoints used by any rule: known ones in
// breakpoint order, then unknown ones sorted by name.
func (s *Stylesheet) MediaNames() []string {
	used := make(map[string]bool)
	for _, r := range s.rules {
		for name, css := range r.Style.Media {
			if css != "" {
				used[name] = true
			}
		}
	}

	names := make([]string, 0, len(used))
	for _, name := range s.breakpoints.Names() {
		if used[name] {
			names = append(names, name)
			delete(used, name)
		}
	}
	extra := make([]string, 0, len(used))
	for name := range used {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// String renders the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder

	for _, r := range s.rules {
		if r.Style.Base == "" {
			continue
		}
		writeRule(&sb, r.Selector, r.Style.Base)
	}

	for _, name := range s.MediaNames() {
		sb.WriteString(s.breakpoints.MediaQuery(name))
		sb.WriteString("{\n")
		for _, r := range s.rules {
			if css := r.Style.Media[name]; css != "" {
				writeRule(&sb, r.Selector, css)
			}
		}
		sb.WriteString("}\n")
	}

	return sb.String()
}

func writeRule(sb *strings.Builder, selector, body string) {
	sb.WriteString(selector)
	sb.WriteString("{")
	sb.WriteString(body)
	sb.WriteString("}\n")
}

// Merge concatenates b after a, breakpoint by breakpoint.
func Merge(a, b ResponsiveStyle) ResponsiveStyle {
	out := ResponsiveStyle{
		Base:  a.Base + b.Base,
		Media: make(map[string]string, len(a.Media)+len(b.Media)),
	}
	for name, css := range a.Media {
		out.Media[name] = css
	}
	for name, css := range b.Media {
		out.Media[name] += css
	}
	return out
}
