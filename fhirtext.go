package fhirtext

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilInput         = errors.New("required input is nil")
	ErrUnsupportedStyle = errors.New("unsupported style")
	ErrUnsupportedOrder = errors.New("unsupported name order")
	ErrInvalidPageLink  = errors.New("invalid page link")
	ErrInvalidRecord    = errors.New("invalid record")
)

// Style selects the line terminator and indent token of the rendered text.
type Style int

const (
	Plain Style = iota // "\n" and a tab
	HTML               // "<br>\n" and four &nbsp;
)

var styleNames = map[Style]string{
	Plain: "plain",
	HTML:  "html",
}

// String returns the style name.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle parses a style name as used on the command line.
func ParseStyle(s string) (Style, error) {
	for style, name := range styleNames {
		if strings.EqualFold(name, s) {
			return style, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
}

// Order controls how the parts of a person name are arranged.
type Order int

const (
	LastFirst Order = iota // Family Suffix, Prefix Given
	Natural                // Prefix Given Family Suffix
)

var orderNames = map[Order]string{
	LastFirst: "last-first",
	Natural:   "natural",
}

// String returns the order name.
func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder parses an order name as used on the command line.
func ParseOrder(s string) (Order, error) {
	for order, name := range orderNames {
		if strings.EqualFold(name, s) {
			return order, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedOrder, s)
}

// layout holds the tokens a Style expands to.
type layout struct {
	newline string
	indent  string
	html    bool
}

func layoutFor(s Style) (layout, error) {
	switch s {
	case Plain:
		return layout{newline: "\n", indent: "\t"}, nil
	case HTML:
		return layout{newline: "<br>\n", indent: "&nbsp;&nbsp;&nbsp;&nbsp;", html: true}, nil
	default:
		return layout{}, fmt.Errorf("%w: %s", ErrUnsupportedStyle, s)
	}
}

// text escapes s when the layout produces HTML.
func (l layout) text(s string) string {
	if l.html {
		return html.EscapeString(s)
	}
	return s
}

// labels joins the non-empty values with a single space.
func labels(values ...string) string {
	var parts []string
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

type coded interface {
	Code() string
}

// code returns the FHIR code of an optional coded value.
func code[T coded](v *T) string {
	if v == nil {
		return ""
	}
	return (*v).Code()
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
