package stylesys

import (
	"go.uber.org/zap"
)

// Key is a logical layout property name as used in LayoutProps.
type Key string

// Logical layout keys, in the order Layout emits them.
const (
	Width          Key = "width"
	MinWidth       Key = "minWidth"
	MaxWidth       Key = "maxWidth"
	Height         Key = "height"
	MinHeight      Key = "minHeight"
	MaxHeight      Key = "maxHeight"
	Display        Key = "display"
	Overflow       Key = "overflow"
	OverflowX      Key = "overflowX"
	OverflowY      Key = "overflowY"
	Position       Key = "position"
	ZIndex         Key = "zIndex"
	Cursor         Key = "cursor"
	AspectRatio    Key = "aspectRatio"
	BoxSizing      Key = "boxSizing"
	Float          Key = "float"
	Clear          Key = "clear"
	ObjectFit      Key = "objectFit"
	ObjectPosition Key = "objectPosition"
	Resize         Key = "resize"
	VerticalAlign  Key = "verticalAlign"
	UserSelect     Key = "userSelect"
)

// LayoutProps maps logical layout keys to values. A value is either a scalar
// (string or number) or a responsive value understood by the Responder.
// Nil values are treated as absent.
type LayoutProps map[Key]any

// ValueConverter normalizes a resolved value before it is written as CSS.
type ValueConverter func(any) any

// ResponsiveStyle is CSS declaration text split into the unconditional part
// and the part scoped to each breakpoint.
type ResponsiveStyle struct {
	Base  string            `json:"base"`
	Media map[string]string `json:"media"`
}

type layoutMapping struct {
	key      Key
	property string
}

// layoutMappings drives iteration order.
var layoutMappings = [...]layoutMapping{
	{Width, "width"},
	{MinWidth, "min-width"},
	{MaxWidth, "max-width"},
	{Height, "height"},
	{MinHeight, "min-height"},
	{MaxHeight, "max-height"},
	{Display, "display"},
	{Overflow, "overflow"},
	{OverflowX, "overflow-x"},
	{OverflowY, "overflow-y"},
	{Position, "position"},
	{ZIndex, "z-index"},
	{Cursor, "cursor"},
	{AspectRatio, "aspect-ratio"},
	{BoxSizing, "box-sizing"},
	{Float, "float"},
	{Clear, "clear"},
	{ObjectFit, "object-fit"},
	{ObjectPosition, "object-position"},
	{Resize, "resize"},
	{VerticalAlign, "vertical-align"},
	{UserSelect, "user-select"},
}

var converters = map[Key]ValueConverter{
	Width:     ToCSSUnit,
	MinWidth:  ToCSSUnit,
	MaxWidth:  ToCSSUnit,
	Height:    ToCSSUnit,
	MinHeight: ToCSSUnit,
	MaxHeight: ToCSSUnit,
	ZIndex:    func(v any) any { return v },
}

// Keys returns the logical layout keys in emission order.
func Keys() []Key {
	keys := make([]Key, len(layoutMappings))
	for i, m := range layoutMappings {
		keys[i] = m.key
	}
	return keys
}

// Property returns the CSS property name for key.
func Property(key Key) (string, bool) {
	for _, m := range layoutMappings {
		if m.key == key {
			return m.property, true
		}
	}
	return "", false
}

// Builder turns LayoutProps into CSS text.
type Builder struct {
	responder Responder
	log       *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithResponder replaces the collaborator that expands values into
// breakpoint-scoped declarations.
func WithResponder(r Responder) Option {
	return func(b *Builder) {
		b.responder = r
	}
}

// WithBreakpoints uses an Applier bound to bps.
func WithBreakpoints(bps Breakpoints) Option {
	return func(b *Builder) {
		b.responder = NewApplier(bps)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// NewBuilder creates a Builder. Without options it uses DefaultBreakpoints
// and a no-op logger.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		responder: NewApplier(DefaultBreakpoints()),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.Named("layout")
	return b
}

// Layout builds the CSS for props. Keys are emitted in table order, not in
// the order of props, and keys missing from the table are ignored.
// Errors from the Responder are returned as is.
func (b *Builder) Layout(props LayoutProps) (ResponsiveStyle, error) {
	result := ResponsiveStyle{Media: make(map[string]string)}

	for _, m := range layoutMappings {
		value, ok := props[m.key]
		if !ok || value == nil {
			continue
		}

		style, err := b.responder.Apply(m.property, value, converters[m.key])
		if err != nil {
			return ResponsiveStyle{}, err
		}

		b.log.Debug("Applied layout property",
			zap.String("key", string(m.key)),
			zap.String("property", m.property),
			zap.Int("breakpoints", len(style.Media)))

		result.Base += style.Base
		for bp, css := range style.Media {
			result.Media[bp] += css
		}
	}

	return result, nil
}

var defaultBuilder = NewBuilder()

// Layout builds props with the default breakpoints.
func Layout(props LayoutProps) (ResponsiveStyle, error) {
	return defaultBuilder.Layout(props)
}
