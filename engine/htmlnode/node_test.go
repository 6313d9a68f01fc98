package htmlnode

import (
	"errors"
	"testing"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.htmlnode")
	defer teardown()
	//
	var attrs *Attributes
	assert.Equal(t, "", attrs.String())
	assert.Equal(t, "", NewAttributes().String())
	assert.Equal(t, 0, attrs.Len())
	_, found := attrs.Get("href")
	assert.False(t, found)
}

func TestAttributesInsertionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.htmlnode")
	defer teardown()
	//
	attrs := NewAttributes("href", "https://boot.dev")
	assert.Equal(t, ` href="https://boot.dev"`, attrs.String())
	attrs = NewAttributes("href", "https://boot.dev", "target", "_blank")
	assert.Equal(t, ` href="https://boot.dev" target="_blank"`, attrs.String())
	attrs = NewAttributes("src", "x.png", "alt", "X", "dangling")
	assert.Equal(t, []string{"src", "alt"}, attrs.Names())
	v, found := attrs.Get("alt")
	assert.True(t, found)
	assert.Equal(t, "X", v)
}

func TestLeafRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.htmlnode")
	defer teardown()
	//
	s, err := Leaf("p", "hello").Render()
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", s)
	//
	s, err = Leaf("a", "link", "href", "https://boot.dev").Render()
	require.NoError(t, err)
	assert.Equal(t, `<a href="https://boot.dev">link</a>`, s)
	//
	s, err = Text("poop").Render()
	require.NoError(t, err)
	assert.Equal(t, "poop", s)
	//
	s, err = Leaf("img", "", "src", "x.png", "alt", "X").Render()
	require.NoError(t, err)
	assert.Equal(t, `<img src="x.png" alt="X"></img>`, s)
}

func TestLeafWithoutValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.htmlnode")
	defer teardown()
	//
	_, err := NewLeaf(option.SomeString("b"), option.String(), nil)
	assert.True(t, errors.Is(err, ErrInvalidNode))
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	n := &Node{kind: LeafNode, tag: option.SomeString("b")}
	_, err = n.Render()
	assert.ErrorIs(t, err, ErrInvalidNode)
}

func TestParentRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.htmlnode")
	defer teardown()
	//
	p, err := NewParent("div", []*Node{Leaf("b", "test")}, nil)
	require.NoError(t, err)
	s, err := Render(p)
	require.NoError(t, err)
	assert.Equal(t, "<div><b>test</b></div>", s)
	//
	inner, err := NewParent("p", []*Node{Leaf("i", "Italic")}, nil)
	require.NoError(t, err)
	p, err = NewParent("div", []*Node{Leaf("b", "Bold"), inner}, NewAttributes("class", "container"))
	require.NoError(t, err)
	s, err = p.Render()
	require.NoError(t, err)
	assert.Equal(t, `<div class="container"><b>Bold</b><p><i>Italic</i></p></div>`, s)
	assert.Equal(t, 2, p.ChildCount())
	ch, ok := p.Child(1)
	assert.True(t, ok)
	assert.Equal(t, "p", ch.Tag())
	_, ok = p.Child(2)
	assert.False(t, ok)
}

func TestParentInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.htmlnode")
	defer teardown()
	//
	_, err := NewParent("", []*Node{Text("x")}, nil)
	assert.ErrorIs(t, err, ErrInvalidNode)
	_, err = NewParent("div", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidNode)
	_, err = NewParent("div", []*Node{nil}, nil)
	assert.ErrorIs(t, err, ErrInvalidNode)
	//
	var zero Node
	_, err = zero.Render()
	assert.ErrorIs(t, err, ErrInvalidNode)
	childless := &Node{kind: ParentNode, tag: option.SomeString("ul")}
	_, err = childless.Render()
	assert.ErrorIs(t, err, ErrInvalidNode)
	// an invalid descendent fails the whole tree
	p := &Node{kind: ParentNode, tag: option.SomeString("div"), children: []*Node{childless}}
	_, err = p.Render()
	assert.ErrorIs(t, err, ErrInvalidNode)
}

func TestRenderIsRepeatable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.htmlnode")
	defer teardown()
	//
	p, err := NewParent("p", []*Node{Text("a "), Leaf("code", "b")}, nil)
	require.NoError(t, err)
	s1, err1 := p.Render()
	s2, err2 := p.Render()
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, s1, s2)
}

func TestNodesDoNotShareAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.htmlnode")
	defer teardown()
	//
	attrs := NewAttributes("class", "a")
	n, err := NewLeaf(option.SomeString("span"), option.SomeString("x"), attrs)
	require.NoError(t, err)
	attrs.m.Put("class", "b")
	s, err := n.Render()
	require.NoError(t, err)
	assert.Equal(t, `<span class="a">x</span>`, s)
}

func TestNodeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.htmlnode")
	defer teardown()
	//
	assert.Equal(t, `LeafNode("a", "x", {href="y"})`, Leaf("a", "x", "href", "y").String())
	assert.Equal(t, `LeafNode(String.None, "x", {})`, Text("x").String())
	assert.Equal(t, "leaf", LeafNode.String())
	assert.Equal(t, "no-node", NoNode.String())
}
