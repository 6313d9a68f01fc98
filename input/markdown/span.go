package markdown

import (
	"errors"
	"fmt"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/engine/htmlnode"
)

// ErrUnknownSpanKind is flagged when converting a span of a kind not known to
// the renderer.
var ErrUnknownSpanKind = errors.New("unknown span kind")

// SpanKind is the inline style of a span of text.
type SpanKind int8

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

func (k SpanKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	}
	return fmt.Sprintf("SpanKind(%d)", int(k))
}

// Span is a run of inline text with a single style. Links and images carry
// a URL, for images Text is the alt text.
type Span struct {
	Text string
	Kind SpanKind
	URL  string // links and images only
}

// PlainSpan creates an unstyled span.
func PlainSpan(text string) Span {
	return Span{Text: text, Kind: Plain}
}

// StyledSpan creates a span of kind Plain, Bold, Italic or Code.
// Links and images must be created with LinkSpan and ImageSpan.
func StyledSpan(text string, kind SpanKind) Span {
	return Span{Text: text, Kind: kind}
}

// LinkSpan creates a link with anchor text and URL.
func LinkSpan(text, url string) Span {
	return Span{Text: text, Kind: Link, URL: url}
}

// ImageSpan creates an image with alt text and URL.
func ImageSpan(alt, url string) Span {
	return Span{Text: alt, Kind: Image, URL: url}
}

// HasURL is true for links and images.
func (s Span) HasURL() bool {
	return s.Kind == Link || s.Kind == Image
}

func (s Span) String() string {
	if s.HasURL() {
		return fmt.Sprintf("Span(%q, %s, %q)", s.Text, s.Kind, s.URL)
	}
	return fmt.Sprintf("Span(%q, %s)", s.Text, s.Kind)
}

// SpanToNode creates an HTML leaf node for a span.
func SpanToNode(s Span) (*htmlnode.Node, error) {
	switch s.Kind {
	case Plain:
		return htmlnode.Text(s.Text), nil
	case Bold:
		return htmlnode.Leaf("b", s.Text), nil
	case Italic:
		return htmlnode.Leaf("i", s.Text), nil
	case Code:
		return htmlnode.Leaf("code", s.Text), nil
	case Link:
		return htmlnode.Leaf("a", s.Text, "href", s.URL), nil
	case Image:
		return htmlnode.Leaf("img", "", "src", s.URL, "alt", s.Text), nil
	}
	err := core.WrapError(ErrUnknownSpanKind, core.EINTERNAL, "cannot convert %v", s)
	tracer().Errorf(err.Error())
	return nil, err
}
