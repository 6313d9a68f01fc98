package markdown

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockKind is the structural type of a block.
type BlockKind int8

const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case CodeBlock:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

const fence = "```"

// Block is a classified chunk of a Markdown document.
type Block struct {
	Text  string
	Kind  BlockKind
	Level int // heading level 1…6, 0 for other kinds
}

// Segment splits a document into blocks at blank lines. Blocks are trimmed
// and empty blocks are dropped. Line endings are expected to be "\n".
func Segment(doc string) []string {
	chunks := strings.Split(doc, "\n\n")
	blocks := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			blocks = append(blocks, chunk)
		}
	}
	return blocks
}

// Blocks segments a document and classifies each block.
func Blocks(doc string) []Block {
	chunks := Segment(doc)
	blocks := make([]Block, len(chunks))
	for i, chunk := range chunks {
		kind := Classify(chunk)
		blocks[i] = Block{Text: chunk, Kind: kind}
		if kind == Heading {
			blocks[i].Level = headingLevel(chunk)
		}
	}
	return blocks
}

// Classify determines the kind of a (trimmed) block.
//
// Headings start with 1 to 6 '#' followed by a space. Code blocks start and
// end with a fence of three backticks. For quotes and lists every line must
// carry the list marker, for ordered lists the numbers must count up from 1.
// Everything else is a paragraph.
func Classify(block string) BlockKind {
	kind := classify(block)
	tracer().Debugf("block %.20q is %s", block, kind)
	return kind
}

func classify(block string) BlockKind {
	if level := headingLevel(block); level > 0 {
		return Heading
	}
	if isFenced(block) {
		return CodeBlock
	}
	lines := strings.Split(block, "\n")
	switch {
	case strings.HasPrefix(block, ">"):
		if allLines(lines, func(_ int, line string) bool {
			return strings.HasPrefix(line, ">")
		}) {
			return Quote
		}
	case strings.HasPrefix(block, "- "):
		if allLines(lines, func(_ int, line string) bool {
			return strings.HasPrefix(line, "- ")
		}) {
			return UnorderedList
		}
	case strings.HasPrefix(block, "1. "):
		if allLines(lines, func(i int, line string) bool {
			return strings.HasPrefix(line, orderedPrefix(i))
		}) {
			return OrderedList
		}
	}
	return Paragraph
}

// headingLevel returns the number of leading '#' of a heading line, or 0
// if block does not start with a heading marker.
func headingLevel(block string) int {
	level := 0
	for level < len(block) && block[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(block) || block[level] != ' ' {
		return 0
	}
	return level
}

// isFenced is true if block starts and ends with a fence and both fences
// do not overlap.
func isFenced(block string) bool {
	return len(block) >= 2*len(fence) &&
		strings.HasPrefix(block, fence) && strings.HasSuffix(block, fence)
}

// orderedPrefix is the marker of list item #i (zero-based): "1. ", "2. ", …
func orderedPrefix(i int) string {
	return strconv.Itoa(i+1) + ". "
}

func allLines(lines []string, pred func(int, string) bool) bool {
	for i, line := range lines {
		if !pred(i, line) {
			return false
		}
	}
	return true
}
