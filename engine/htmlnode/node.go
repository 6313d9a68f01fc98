package htmlnode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/core/option"
)

// ErrInvalidNode is flagged for leafs without a value and for parents without
// a tag or without children.
var ErrInvalidNode = errors.New("invalid HTML node")

// NodeKind discriminates leaf nodes from parent nodes.
type NodeKind int8

// The zero NodeKind denotes an uninitialized node and is never valid.
const (
	NoNode NodeKind = iota
	LeafNode
	ParentNode
)

func (k NodeKind) String() string {
	switch k {
	case LeafNode:
		return "leaf"
	case ParentNode:
		return "parent"
	}
	return "no-node"
}

// Node is a node of an HTML tree, either a leaf or a parent.
// Nodes are created by NewLeaf, Leaf, Text and NewParent.
type Node struct {
	kind     NodeKind
	tag      option.StringT
	value    option.StringT // leafs only
	attrs    *Attributes
	children []*Node // parents only
}

// NewLeaf creates a leaf node. If tag is unset, the leaf will render its value
// verbatim. value must be set, although it may be the empty string.
func NewLeaf(tag option.StringT, value option.StringT, attrs *Attributes) (*Node, error) {
	if value.IsNone() {
		return nil, invalid("leaf node %s needs a value", tag)
	}
	if !tag.IsNone() && tag.Unwrap() == "" {
		return nil, invalid("leaf node has empty tag")
	}
	return &Node{
		kind:  LeafNode,
		tag:   tag,
		value: value,
		attrs: attrs.copy(),
	}, nil
}

// Leaf creates a leaf node with a tag and optional attributes, given as
// name/value pairs. An empty tag creates a text leaf.
func Leaf(tag string, value string, attrs ...string) *Node {
	var a *Attributes
	if len(attrs) > 0 {
		a = NewAttributes(attrs...)
	}
	return &Node{
		kind:  LeafNode,
		tag:   option.NonEmpty(tag),
		value: option.SomeString(value),
		attrs: a,
	}
}

// Text creates a leaf node without a tag. It renders as its plain text.
func Text(value string) *Node {
	return Leaf("", value)
}

// NewParent creates a node with children. tag must be non-empty and there
// must be at least one child. Children are not copied; they belong to the
// new node from now on.
func NewParent(tag string, children []*Node, attrs *Attributes) (*Node, error) {
	if tag == "" {
		return nil, invalid("parent node needs a tag")
	}
	if len(children) == 0 {
		return nil, invalid("parent node <%s> needs children", tag)
	}
	for i, ch := range children {
		if ch == nil {
			return nil, invalid("child #%d of parent node <%s> is nil", i, tag)
		}
	}
	return &Node{
		kind:     ParentNode,
		tag:      option.SomeString(tag),
		attrs:    attrs.copy(),
		children: children,
	}, nil
}

func invalid(format string, v ...interface{}) error {
	err := core.WrapError(ErrInvalidNode, core.EINVALID, format, v...)
	tracer().Errorf(err.Error())
	return err
}

// --- Accessors -------------------------------------------------------------

// Kind returns the node's kind.
func (n *Node) Kind() NodeKind {
	if n == nil {
		return NoNode
	}
	return n.kind
}

// Tag returns the node's tag, or "" for text leafs.
func (n *Node) Tag() string {
	return n.tag.Unwrap()
}

// HasTag is false for text leafs.
func (n *Node) HasTag() bool {
	return !n.tag.IsNone()
}

// IsText is true for leafs without a tag.
func (n *Node) IsText() bool {
	return n.kind == LeafNode && n.tag.IsNone()
}

// Value returns the text of a leaf. Parents have no value.
func (n *Node) Value() string {
	return n.value.Unwrap()
}

// Attributes returns the node's attributes. The result may be nil.
func (n *Node) Attributes() *Attributes {
	return n.attrs
}

// ChildCount returns the number of children of a parent; leafs have none.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns child #i.
func (n *Node) Child(i int) (*Node, bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// Children returns the children of a parent node, in order.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	ch := make([]*Node, len(n.children))
	copy(ch, n.children)
	return ch
}

// --- Rendering -------------------------------------------------------------

// Render serializes a node and all its descendents to HTML.
func Render(n *Node) (string, error) {
	return n.Render()
}

// Render serializes a node and all its descendents to HTML.
// It fails with ErrInvalidNode if any node of the tree is invalid.
func (n *Node) Render() (string, error) {
	var b strings.Builder
	if err := n.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (n *Node) render(b *strings.Builder) error {
	if n == nil {
		return invalid("cannot render nil node")
	}
	switch n.kind {
	case LeafNode:
		return n.renderLeaf(b)
	case ParentNode:
		if n.tag.IsNone() || n.tag.Unwrap() == "" {
			return invalid("parent node needs a tag")
		}
		if len(n.children) == 0 {
			return invalid("parent node <%s> needs children", n.tag.Unwrap())
		}
		openTag(b, n.tag.Unwrap(), n.attrs)
		for _, ch := range n.children {
			if err := ch.render(b); err != nil {
				return err
			}
		}
		closeTag(b, n.tag.Unwrap())
		return nil
	}
	return invalid("node of unknown kind %d", n.kind)
}

func (n *Node) renderLeaf(b *strings.Builder) error {
	if n.value.IsNone() {
		return invalid("leaf node %s needs a value", n.tag)
	}
	_, err := n.tag.Match(option.Maybe{
		option.None: func(interface{}) (interface{}, error) {
			b.WriteString(n.value.Unwrap())
			return nil, nil
		},
		option.Some: func(interface{}) (interface{}, error) {
			openTag(b, n.tag.Unwrap(), n.attrs)
			b.WriteString(n.value.Unwrap())
			closeTag(b, n.tag.Unwrap())
			return nil, nil
		},
	})
	return err
}

func openTag(b *strings.Builder, tag string, attrs *Attributes) {
	b.WriteByte('<')
	b.WriteString(tag)
	attrs.writeTo(b)
	b.WriteByte('>')
}

func closeTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// String returns a debug representation of a node.
func (n *Node) String() string {
	if n == nil {
		return "Node(nil)"
	}
	switch n.kind {
	case LeafNode:
		return fmt.Sprintf("LeafNode(%s, %s, {%s})", n.tag, n.value, strings.TrimSpace(n.attrs.String()))
	case ParentNode:
		return fmt.Sprintf("ParentNode(%s, #children=%d, {%s})", n.tag, len(n.children),
			strings.TrimSpace(n.attrs.String()))
	}
	return "Node(?)"
}
