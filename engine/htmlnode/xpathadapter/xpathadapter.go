/*
Package xpathadapter implements an xpath.NodeNavigator.

We use this library for XPath queries:

	github.com/antchfx/xpath

Package xpathadapter implements an adapter to enable antchfx/xpath to
access a tree of htmlnode.Node. Nodes of this tree do not know their parents,
therefore the navigator keeps the path from the root to the current node.
A virtual document node sits on top of the tree root, so absolute paths
like "/div/p" work as expected.

Text leafs are text nodes. Tagged leafs are elements without children;
their value is accessible as the string value of the element, e.g.

	//b[.='bold']

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xpathadapter

import (
	"errors"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/engine/htmlnode"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.htmlnode'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.htmlnode")
}

// step is an entry of the path from the root to the current node.
type step struct {
	node  *htmlnode.Node
	chinx int // index of node within its parent's children
}

// NodeNavigator navigates a tree of htmlnode.Node.
type NodeNavigator struct {
	root *htmlnode.Node
	path []step // empty if positioned at the virtual document node
	attr int    // attributes index
}

// NewNavigator creates a new xpath.NodeNavigator for a node tree.
// The navigator is positioned at the virtual document node.
func NewNavigator(root *htmlnode.Node) *NodeNavigator {
	return &NodeNavigator{
		root: root,
		attr: -1,
	}
}

// CurrentNode returns the node the navigator is positioned at. For the
// virtual document node, nil is returned. For attributes, the owning
// element is returned.
func CurrentNode(nav xpath.NodeNavigator) (*htmlnode.Node, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return nil, errors.New("navigator is not of type xpathadapter.NodeNavigator")
	}
	return mynav.current(), nil
}

func (nav *NodeNavigator) current() *htmlnode.Node {
	if len(nav.path) == 0 {
		return nil
	}
	return nav.path[len(nav.path)-1].node
}

// siblings returns the children of the current node's parent.
func (nav *NodeNavigator) siblings() []*htmlnode.Node {
	switch len(nav.path) {
	case 0:
		return nil
	case 1:
		return []*htmlnode.Node{nav.root}
	}
	return nav.path[len(nav.path)-2].node.Children()
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	n := nav.current()
	switch {
	case n == nil:
		return xpath.RootNode
	case nav.attr != -1:
		return xpath.AttributeNode
	case n.IsText():
		return xpath.TextNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	n := nav.current()
	if n == nil {
		return ""
	}
	if nav.attr != -1 {
		return n.Attributes().Names()[nav.attr]
	}
	return n.Tag()
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	n := nav.current()
	if n == nil {
		return htmlnode.TextContent(nav.root)
	}
	if nav.attr != -1 {
		v, _ := n.Attributes().Get(n.Attributes().Names()[nav.attr])
		return v
	}
	return htmlnode.TextContent(n)
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	n.path = make([]step, len(nav.path))
	copy(n.path, nav.path)
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.path = nav.path[:0]
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if len(nav.path) == 0 {
		return false
	}
	nav.path = nav.path[:len(nav.path)-1]
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	n := nav.current()
	if n == nil || n.IsText() {
		return false
	}
	if nav.attr >= n.Attributes().Len()-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	n := nav.current()
	if n == nil {
		if nav.root == nil {
			return false
		}
		nav.path = append(nav.path, step{node: nav.root})
		return true
	}
	child, ok := n.Child(0)
	if !ok {
		return false
	}
	nav.path = append(nav.path, step{node: child})
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || len(nav.path) == 0 {
		return false
	}
	top := &nav.path[len(nav.path)-1]
	if top.chinx == 0 {
		return false
	}
	top.chinx = 0
	top.node = nav.siblings()[0]
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 || len(nav.path) == 0 {
		return false
	}
	siblings := nav.siblings()
	top := &nav.path[len(nav.path)-1]
	if top.chinx+1 >= len(siblings) {
		return false
	}
	top.chinx++
	top.node = siblings[top.chinx]
	return true
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 || len(nav.path) == 0 {
		return false
	}
	top := &nav.path[len(nav.path)-1]
	if top.chinx == 0 {
		return false
	}
	top.chinx--
	top.node = nav.siblings()[top.chinx]
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.path = append(nav.path[:0], n.path...)
	nav.attr = n.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// --- Queries ---------------------------------------------------------------

// Query returns all nodes of the tree rooted at root which are selected by
// an XPath expression. Attributes selected by the expression are reported
// as their owning element.
func Query(root *htmlnode.Node, expr string) ([]*htmlnode.Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	var result []*htmlnode.Node
	iter := x.Select(NewNavigator(root))
	for iter.MoveNext() {
		n, err := CurrentNode(iter.Current())
		if err != nil {
			return nil, err
		}
		if n != nil {
			result = append(result, n)
		}
	}
	tracer().Debugf("XPath %q selected %d nodes", expr, len(result))
	return result, nil
}

// Evaluate evaluates an XPath expression against the tree rooted at root,
// e.g. "count(//li)". The result is a float64, string, bool or a node iterator,
// as documented for xpath.Expr.Evaluate.
func Evaluate(root *htmlnode.Node, expr string) (interface{}, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	return x.Evaluate(NewNavigator(root)), nil
}
