/*
Package markdown converts a small subset of Markdown to an HTML node tree.

Markdown parsing is rather local: a document is split into blocks at blank
lines, each block is classified by its first characters (and the first
characters of each of its lines), and the inline content of a block is
split into spans. Nothing at the start of a document affects blocks further
down.

Supported are paragraphs, headings (levels 1–6), code blocks fenced by
three backticks, block quotes, and unordered and ordered lists without
nesting. Inline, spans may be `code`, **bold** or _italic_, and links and
images in the usual [text](url) and ![alt](url) notation. Emphasis does not
nest.

	root, err := markdown.ConvertDocument("# Hello\n\nThis is **bold**.")
	html, err := root.Render()
	// <div><h1>Hello</h1><p>This is <b>bold</b>.</p></div>

See also

https://www.markdownguide.org/basic-syntax

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.markdown")
}
