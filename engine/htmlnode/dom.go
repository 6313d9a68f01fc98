package htmlnode

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/mdhtml/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToDOM converts a node tree to an HTML parse tree, as used by golang.org/x/net/html.
// The result is a document node with the converted tree as its single child.
// Tagged leafs become elements with a single text child, or no child if their
// value is empty.
func ToDOM(n *Node) (*html.Node, error) {
	h, err := toDOM(n)
	if err != nil {
		return nil, err
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(h)
	return doc, nil
}

func toDOM(n *Node) (*html.Node, error) {
	switch n.Kind() {
	case LeafNode:
		if n.value.IsNone() {
			return nil, invalid("leaf node %s needs a value", n.tag)
		}
		if n.IsText() {
			return &html.Node{Type: html.TextNode, Data: n.Value()}, nil
		}
		e := element(n)
		if n.Value() != "" {
			e.AppendChild(&html.Node{Type: html.TextNode, Data: n.Value()})
		}
		return e, nil
	case ParentNode:
		if !n.HasTag() || len(n.children) == 0 {
			return nil, invalid("parent node %s must have tag and children", n.tag)
		}
		e := element(n)
		for _, ch := range n.children {
			h, err := toDOM(ch)
			if err != nil {
				return nil, err
			}
			e.AppendChild(h)
		}
		return e, nil
	}
	return nil, invalid("cannot convert node of kind %s", n.Kind())
}

func element(n *Node) *html.Node {
	e := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag(),
		DataAtom: atom.Lookup([]byte(n.Tag())),
	}
	n.attrs.Each(func(name, value string) {
		e.Attr = append(e.Attr, html.Attribute{Key: name, Val: value})
	})
	return e
}

// Select returns all elements of the tree rooted at n which match a CSS selector.
func Select(n *Node, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid CSS selector %q", selector)
	}
	doc, err := ToDOM(n)
	if err != nil {
		return nil, err
	}
	matches := sel.MatchAll(doc)
	tracer().Debugf("selector %q matched %d elements", selector, len(matches))
	return matches, nil
}
