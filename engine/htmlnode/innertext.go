package htmlnode

import (
	"github.com/npillmayer/cords"
)

// InnerText creates a text cord for the textual content of a node and all
// its descendents, in document order. It resembles the text produced by
//
//      document.getElementById("myNode").innerText
//
// in JavaScript. Attribute values (e.g. the alt text of an image) are not
// part of the inner text.
//
// Every non-empty leaf contributes one leaf of the cord.
func InnerText(n *Node) (cords.Cord, error) {
	if n == nil {
		return cords.Cord{}, cords.ErrIllegalArguments
	}
	b := cords.NewBuilder()
	collectText(n, b)
	return b.Cord(), nil
}

// TextContent is a shortcut for InnerText(n).String().
func TextContent(n *Node) string {
	text, err := InnerText(n)
	if err != nil || text.IsVoid() {
		return ""
	}
	return text.String()
}

func collectText(n *Node, b *cords.Builder) {
	if n.Kind() == LeafNode {
		if v := n.Value(); v != "" {
			b.Append(textLeaf{node: n, content: v})
		}
		return
	}
	for _, ch := range n.children {
		collectText(ch, b)
	}
}

// textLeaf is the leaf type for cords created by InnerText.
type textLeaf struct {
	node    *Node
	content string
}

// Weight of a leaf is its string length in bytes.
func (l textLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l textLeaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := textLeaf{node: l.node, content: l.content[:i]}
	right := textLeaf{node: l.node, content: l.content[i:]}
	return left, right
}

// Substring returns a string segment of the leaf's text fragment.
func (l textLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = textLeaf{}
