package html

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/core/option"
	"github.com/npillmayer/mdhtml/engine/htmlnode"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoSingleRoot is flagged if markup does not consist of exactly one
// top-level node.
var ErrNoSingleRoot = errors.New("markup must have a single root node")

var bodyContext = &html.Node{
	Type:     html.ElementNode,
	Data:     "body",
	DataAtom: atom.Body,
}

// Parse reads an HTML fragment and converts it to a node tree.
func Parse(r io.Reader) (*htmlnode.Node, error) {
	nodes, err := html.ParseFragment(r, bodyContext)
	if err != nil {
		tracer().Errorf("unable to parse HTML: %s", err)
		return nil, core.WrapError(err, core.ESYNTAX, "cannot parse HTML")
	}
	nodes = significant(nodes)
	if len(nodes) != 1 {
		err = core.WrapError(ErrNoSingleRoot, core.EINVALID,
			"markup has %d top-level nodes", len(nodes))
		tracer().Errorf(err.Error())
		return nil, err
	}
	return FromDOM(nodes[0])
}

// ParseString is a shortcut for Parse(strings.NewReader(s)).
func ParseString(s string) (*htmlnode.Node, error) {
	return Parse(strings.NewReader(s))
}

// FromDOM converts an HTML parse tree to a node tree. For a document node,
// its single element child is converted.
func FromDOM(h *html.Node) (*htmlnode.Node, error) {
	if h == nil {
		return nil, core.Error(core.EMISSING, "no HTML node to convert")
	}
	switch h.Type {
	case html.DocumentNode:
		var elems []*html.Node
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				elems = append(elems, c)
			}
		}
		if len(elems) != 1 {
			return nil, core.WrapError(ErrNoSingleRoot, core.EINVALID,
				"document has %d root elements", len(elems))
		}
		return FromDOM(elems[0])
	case html.TextNode:
		return htmlnode.Text(h.Data), nil
	case html.ElementNode:
		return fromElement(h)
	}
	return nil, core.Error(core.EINVALID, "cannot convert HTML node of type %d", h.Type)
}

func fromElement(h *html.Node) (*htmlnode.Node, error) {
	var attrs *htmlnode.Attributes
	if len(h.Attr) > 0 {
		pairs := make([]string, 0, 2*len(h.Attr))
		for _, a := range h.Attr {
			pairs = append(pairs, a.Key, a.Val)
		}
		attrs = htmlnode.NewAttributes(pairs...)
	}
	children := significant(childrenOf(h))
	switch {
	case len(children) == 0:
		return htmlnode.NewLeaf(option.SomeString(h.Data), option.SomeString(""), attrs)
	case len(children) == 1 && children[0].Type == html.TextNode:
		return htmlnode.NewLeaf(option.SomeString(h.Data), option.SomeString(children[0].Data), attrs)
	}
	nodes := make([]*htmlnode.Node, 0, len(children))
	for _, c := range children {
		n, err := FromDOM(c)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	tracer().Debugf("<%s> with %d children", h.Data, len(nodes))
	return htmlnode.NewParent(h.Data, nodes, attrs)
}

func childrenOf(h *html.Node) []*html.Node {
	var children []*html.Node
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// significant filters out comments and doctypes.
func significant(nodes []*html.Node) []*html.Node {
	r := nodes[:0]
	for _, n := range nodes {
		if n.Type == html.ElementNode || n.Type == html.TextNode {
			r = append(r, n)
		}
	}
	return r
}
