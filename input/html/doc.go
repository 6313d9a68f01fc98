/*
Package html reads HTML markup into htmlnode trees.

It is the inverse of rendering: markup produced by htmlnode.Render parses back
into an equivalent tree. Parsing is done by golang.org/x/net/html, in the context
of a <body> element. Elements are mapped as follows:

	<tag></tag>           → tagged leaf with empty value
	<tag>text</tag>       → tagged leaf
	<tag>…children…</tag> → parent
	text                  → text leaf

Comments and doctype declarations are dropped. The parser decodes character
entities, whereas rendering does not encode them, so a round trip is exact for
markup without entities only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.html'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.html")
}
