/*
Package htmlnode implements a minimal HTML node tree.

A node is either a leaf or a parent. Leafs carry an optional tag and a text
value; a leaf without a tag renders its value verbatim. Parents carry a tag
and a non-empty list of children. Both may have attributes, which render in
the order they have been set.

	p, err := htmlnode.NewParent("p", []*htmlnode.Node{
		htmlnode.Text("This is "),
		htmlnode.Leaf("b", "bold"),
	}, nil)
	s, err := p.Render() // <p>This is <b>bold</b></p>

Nodes are immutable once built. Constructors validate their arguments,
Render checks again, as a node may be a zero value. Rendering does not
escape text or attribute values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlnode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.htmlnode'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.htmlnode")
}
