package stylesys

import (
	"errors"
	"fmt"
)

// Errors returned while expanding a value into declarations.
var (
	ErrUnknownBreakpoint = errors.New("unknown breakpoint")
	ErrTooManyValues     = errors.New("more responsive values than breakpoints")
	ErrUnsupportedValue  = errors.New("unsupported value")
)

// Responsive is a value keyed by breakpoint name. The BaseKey entry applies
// unconditionally.
//
//	stylesys.Responsive{"base": 1, "md": 2}
type Responsive map[string]any

// Responder expands one property value into base and breakpoint-scoped
// declarations.
type Responder interface {
	Apply(property string, value any, convert ValueConverter) (ResponsiveStyle, error)
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(property string, value any, convert ValueConverter) (ResponsiveStyle, error)

// Apply calls f.
func (f ResponderFunc) Apply(property string, value any, convert ValueConverter) (ResponsiveStyle, error) {
	return f(property, value, convert)
}

// Applier is the Responder for a fixed breakpoint set. It accepts scalars,
// Responsive maps and slices where index 0 is the base value and index i
// the i-th breakpoint.
type Applier struct {
	breakpoints Breakpoints
}

// NewApplier returns an Applier for bps.
func NewApplier(bps Breakpoints) *Applier {
	return &Applier{breakpoints: bps}
}

// Breakpoints returns the set the Applier resolves against.
func (a *Applier) Breakpoints() Breakpoints {
	return a.breakpoints
}

// Apply emits "property:value;" declarations for value.
func (a *Applier) Apply(property string, value any, convert ValueConverter) (ResponsiveStyle, error) {
	style := ResponsiveStyle{Media: make(map[string]string)}

	var err error
	switch v := value.(type) {
	case Responsive:
		err = a.applyMap(&style, property, v, convert)
	case map[string]any:
		err = a.applyMap(&style, property, v, convert)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		err = a.applyMap(&style, property, m, convert)
	case []any:
		err = a.applySlice(&style, property, v, convert)
	case []string:
		err = a.applySlice(&style, property, toAny(v), convert)
	case []int:
		err = a.applySlice(&style, property, toAny(v), convert)
	case []float64:
		err = a.applySlice(&style, property, toAny(v), convert)
	default:
		style.Base, err = declaration(property, value, convert)
	}
	if err != nil {
		return ResponsiveStyle{}, err
	}
	return style, nil
}

func (a *Applier) applyMap(style *ResponsiveStyle, property string, values map[string]any, convert ValueConverter) error {
	for name, v := range values {
		if v == nil {
			continue
		}
		decl, err := declaration(property, v, convert)
		if err != nil {
			return err
		}
		if name == BaseKey {
			style.Base = decl
			continue
		}
		if _, ok := a.breakpoints.Lookup(name); !ok {
			return fmt.Errorf("%s: %w %q", property, ErrUnknownBreakpoint, name)
		}
		style.Media[name] = decl
	}
	return nil
}

func (a *Applier) applySlice(style *ResponsiveStyle, property string, values []any, convert ValueConverter) error {
	if len(values) > a.breakpoints.Len()+1 {
		return fmt.Errorf("%s: %w: got %d, have %d breakpoints",
			property, ErrTooManyValues, len(values), a.breakpoints.Len())
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		decl, err := declaration(property, v, convert)
		if err != nil {
			return err
		}
		if i == 0 {
			style.Base = decl
			continue
		}
		style.Media[a.breakpoints.At(i-1).Name] = decl
	}
	return nil
}

// declaration converts value and formats it as "property:value;".
func declaration(property string, value any, convert ValueConverter) (string, error) {
	if convert != nil {
		value = convert(value)
	}
	text, err := cssText(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", property, err)
	}
	return property + ":" + text + ";", nil
}

func cssText(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	if n, ok := number(value); ok {
		return n, nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
}

func toAny[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
