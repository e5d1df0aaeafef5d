package stylegen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/yacobolo/stylesys"
)

// ErrInvalidDocument is returned for style documents with the wrong shape.
var ErrInvalidDocument = errors.New("invalid style document")

// Document is a parsed style file.
//
//	rules:
//	  - selector: .card
//	    layout:
//	      width: 320
//	      display: { base: block, md: flex }
type Document struct {
	Path  string
	Rules []DocumentRule
}

// DocumentRule is one selector and its layout props.
type DocumentRule struct {
	Selector    string
	Layout      stylesys.LayoutProps
	UnknownKeys []string // Layout keys with no CSS property, sorted
}

// LoadDocument reads a YAML (or JSON) style document.
func LoadDocument(path string) (*Document, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc := &Document{Path: path}
	if !k.Exists("rules") {
		return doc, nil
	}

	items, ok := k.Get("rules").([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: rules must be a list", ErrInvalidDocument, path)
	}

	for i, item := range items {
		rule, err := parseRule(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: rule %d: %v", ErrInvalidDocument, path, i+1, err)
		}
		doc.Rules = append(doc.Rules, rule)
	}

	return doc, nil
}

func parseRule(item any) (DocumentRule, error) {
	fields, ok := asMap(item)
	if !ok {
		return DocumentRule{}, errors.New("rule must be a mapping")
	}

	selector, _ := fields["selector"].(string)
	if selector == "" {
		return DocumentRule{}, errors.New("missing selector")
	}

	rule := DocumentRule{Selector: selector, Layout: stylesys.LayoutProps{}}
	if fields["layout"] == nil {
		return rule, nil
	}

	layout, ok := asMap(fields["layout"])
	if !ok {
		return DocumentRule{}, errors.New("layout must be a mapping")
	}

	for name, value := range layout {
		key := stylesys.Key(name)
		if _, known := stylesys.Property(key); !known {
			rule.UnknownKeys = append(rule.UnknownKeys, name)
		}
		rule.Layout[key] = normalizeValue(value)
	}
	sort.Strings(rule.UnknownKeys)

	return rule, nil
}

// normalizeValue turns decoded mappings into stylesys.Responsive.
func normalizeValue(value any) any {
	if m, ok := asMap(value); ok {
		return stylesys.Responsive(m)
	}
	return value
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		m := make(map[string]any, len(v))
		for key, val := range v {
			m[fmt.Sprint(key)] = val
		}
		return m, true
	}
	return nil, false
}
