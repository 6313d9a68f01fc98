package markdown

import (
	"errors"
	"strconv"
	"strings"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/engine/htmlnode"
)

// ErrMalformedCodeFence is flagged for code blocks without matching fences.
var ErrMalformedCodeFence = errors.New("malformed code fence")

// BuildBlock creates the HTML subtree for a classified block.
func BuildBlock(b Block) (*htmlnode.Node, error) {
	switch b.Kind {
	case Paragraph:
		return buildParagraph(b.Text)
	case Heading:
		return buildHeading(b.Text)
	case CodeBlock:
		return buildCode(b.Text)
	case Quote:
		return buildQuote(b.Text)
	case UnorderedList:
		return buildUnorderedList(b.Text)
	case OrderedList:
		return buildOrderedList(b.Text)
	}
	err := core.Error(core.EINTERNAL, "cannot build block of kind %s", b.Kind)
	tracer().Errorf(err.Error())
	return nil, err
}

// parentWithInline creates a parent node with the inline content of text
// as children.
func parentWithInline(tag, text string) (*htmlnode.Node, error) {
	children, err := inlineNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children, nil)
}

// Lines of a paragraph are joined with spaces.
func buildParagraph(block string) (*htmlnode.Node, error) {
	return parentWithInline("p", strings.ReplaceAll(block, "\n", " "))
}

func buildHeading(block string) (*htmlnode.Node, error) {
	level := headingLevel(block)
	if level == 0 {
		return nil, core.Error(core.EINTERNAL, "block is not a heading: %.20q", block)
	}
	content := strings.TrimSpace(block[level:])
	return parentWithInline("h"+strconv.Itoa(level), content)
}

// buildCode strips the fences and a newline directly after the opening fence.
// The content is not parsed for inline markup. A newline before the closing
// fence is part of the content.
func buildCode(block string) (*htmlnode.Node, error) {
	if !isFenced(block) {
		err := core.WrapError(ErrMalformedCodeFence, core.ESYNTAX,
			"code block must start and end with %s: %.20q", fence, block)
		tracer().Errorf(err.Error())
		return nil, err
	}
	content := block[len(fence) : len(block)-len(fence)]
	content = strings.TrimPrefix(content, "\n")
	code, err := htmlnode.NewParent("code", []*htmlnode.Node{htmlnode.Text(content)}, nil)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("pre", []*htmlnode.Node{code}, nil)
}

// buildQuote removes any run of '>' and spaces from the start of each line
// and joins the lines with spaces.
func buildQuote(block string) (*htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, "> ")
	}
	return parentWithInline("blockquote", strings.Join(lines, " "))
}

func buildUnorderedList(block string) (*htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]*htmlnode.Node, 0, len(lines))
	for _, line := range lines {
		item, err := parentWithInline("li", strings.TrimPrefix(line, "- "))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent("ul", items, nil)
}

func buildOrderedList(block string) (*htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]*htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		item, err := parentWithInline("li", strings.TrimPrefix(line, orderedPrefix(i)))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent("ol", items, nil)
}
