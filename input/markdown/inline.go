package markdown

import (
	"errors"
	"regexp"
	"strings"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/engine/htmlnode"
)

// ErrUnclosedSpan is flagged if an inline delimiter has no closing partner.
var ErrUnclosedSpan = errors.New("unclosed span")

// Inline delimiters, in order of precedence.
var delimiters = []struct {
	delim string
	kind  SpanKind
}{
	{"`", Code},
	{"**", Bold},
	{"_", Italic},
}

var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Tokenize splits a string of inline Markdown into spans.
//
// Code spans are recognized first, then bold and italic spans, then images
// and finally links. Text inside a styled span is not looked at again, thus
// emphasis does not nest and `**x**` is code with text "**x**".
// An empty string results in no spans at all.
//
// If a delimiter is not closed, Tokenize fails with ErrUnclosedSpan.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{PlainSpan(text)}
	var err error
	for _, d := range delimiters {
		if spans, err = splitDelimiter(spans, d.delim, d.kind); err != nil {
			return nil, err
		}
	}
	spans = splitMarkup(spans, Image, findImage)
	spans = splitMarkup(spans, Link, findLink)
	tracer().Debugf("tokenized %q into %d spans", text, len(spans))
	return spans, nil
}

// splitDelimiter splits all plain spans at a delimiter. Pieces at odd
// positions are enclosed by delimiters and get kind; empty pieces are dropped.
func splitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			result = append(result, span)
			continue
		}
		pieces := strings.Split(span.Text, delim)
		if len(pieces)%2 == 0 {
			err := core.WrapError(ErrUnclosedSpan, core.ESYNTAX,
				"delimiter %q not closed in %q", delim, span.Text)
			tracer().Errorf(err.Error())
			return nil, err
		}
		for i, piece := range pieces {
			if piece == "" {
				continue
			}
			if i%2 == 0 {
				result = append(result, PlainSpan(piece))
			} else {
				result = append(result, StyledSpan(piece, kind))
			}
		}
	}
	return result, nil
}

// finder locates the first occurrence of link or image markup in text.
// It returns the byte range of the markup, text and URL, or start = -1.
type finder func(text string) (start, end int, label, url string)

func findImage(text string) (int, int, string, string) {
	m := imagePattern.FindStringSubmatchIndex(text)
	if m == nil {
		return -1, -1, "", ""
	}
	return m[0], m[1], text[m[2]:m[3]], text[m[4]:m[5]]
}

// findLink skips bracket expressions which are preceded by '!', as these
// denote images.
func findLink(text string) (int, int, string, string) {
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		return m[0], m[1], text[m[2]:m[3]], text[m[4]:m[5]]
	}
	return -1, -1, "", ""
}

// splitMarkup splits all plain spans at occurrences of link or image markup.
func splitMarkup(spans []Span, kind SpanKind, find finder) []Span {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			result = append(result, span)
			continue
		}
		rest := span.Text
		for {
			start, end, label, url := find(rest)
			if start < 0 {
				break
			}
			if start > 0 {
				result = append(result, PlainSpan(rest[:start]))
			}
			if kind == Image {
				result = append(result, ImageSpan(label, url))
			} else {
				result = append(result, LinkSpan(label, url))
			}
			rest = rest[end:]
		}
		if rest != "" {
			result = append(result, PlainSpan(rest))
		}
	}
	return result
}

// inlineNodes tokenizes text and converts the spans to HTML leaf nodes.
// Empty text results in a single empty text node, as parents may not be
// childless.
func inlineNodes(text string) ([]*htmlnode.Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return []*htmlnode.Node{htmlnode.Text("")}, nil
	}
	nodes := make([]*htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		n, err := SpanToNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
