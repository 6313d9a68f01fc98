package markdown

import (
	"errors"
	"strings"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/engine/htmlnode"
	"github.com/npillmayer/schuko"
	"golang.org/x/text/unicode/norm"
)

// ErrMissingTitle is flagged if a document has no level-1 heading.
var ErrMissingTitle = errors.New("no title")

// Configuration keys read by NewConverter.
const (
	ConfRootTag       = "markdown.root-tag"      // tag of the document root, default "div"
	ConfNormalization = "markdown.normalization" // "NFC", "NFD" or "none" (default)
	ConfLineEndings   = "markdown.line-endings"  // "unix" (default) or "keep"
)

// DefaultRootTag is the tag of the root node wrapping all blocks of a document.
const DefaultRootTag = "div"

// Converter converts Markdown documents to HTML node trees.
// A Converter does not change after creation and may be used concurrently.
type Converter struct {
	rootTag     string
	normalize   bool
	form        norm.Form
	unixNewline bool
}

var defaultConverter = &Converter{
	rootTag:     DefaultRootTag,
	unixNewline: true,
}

// NewConverter creates a converter configured by conf. conf may be nil,
// resulting in the default configuration.
func NewConverter(conf schuko.Configuration) (*Converter, error) {
	c := *defaultConverter
	if conf == nil {
		return &c, nil
	}
	if tag := strings.TrimSpace(conf.GetString(ConfRootTag)); tag != "" {
		if strings.ContainsAny(tag, " <>/\"'=") {
			return nil, core.Error(core.EINVALID, "invalid root tag %q", tag)
		}
		c.rootTag = tag
	}
	switch n := strings.ToUpper(conf.GetString(ConfNormalization)); n {
	case "", "NONE":
	case "NFC":
		c.normalize, c.form = true, norm.NFC
	case "NFD":
		c.normalize, c.form = true, norm.NFD
	default:
		return nil, core.Error(core.EINVALID, "unknown Unicode normalization %q", n)
	}
	switch le := strings.ToLower(conf.GetString(ConfLineEndings)); le {
	case "", "unix":
	case "keep":
		c.unixNewline = false
	default:
		return nil, core.Error(core.EINVALID, "unknown line ending mode %q", le)
	}
	tracer().Infof("markdown converter: root=<%s>, normalize=%v, unix-newlines=%v",
		c.rootTag, c.normalize, c.unixNewline)
	return &c, nil
}

// prepare normalizes line endings and Unicode, as configured.
func (c *Converter) prepare(md string) string {
	if c.unixNewline {
		md = strings.ReplaceAll(md, "\r\n", "\n")
		md = strings.ReplaceAll(md, "\r", "\n")
	}
	if c.normalize {
		md = c.form.String(md)
	}
	return md
}

// Convert converts a Markdown document to an HTML node tree. The root node
// has one child per block, in document order. A document without blocks
// results in an empty root element.
//
// Convert fails on the first malformed block, i.e. with ErrUnclosedSpan or
// ErrMalformedCodeFence.
func (c *Converter) Convert(md string) (*htmlnode.Node, error) {
	blocks := Blocks(c.prepare(md))
	children := make([]*htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		n, err := BuildBlock(b)
		if err != nil {
			tracer().Errorf("block #%d (%s) cannot be converted", i+1, b.Kind)
			return nil, err
		}
		children = append(children, n)
	}
	if len(children) == 0 {
		children = append(children, htmlnode.Text(""))
	}
	tracer().Debugf("converted %d blocks", len(blocks))
	return htmlnode.NewParent(c.rootTag, children, nil)
}

// ExtractTitle returns the text of the first line starting with "# ",
// trimmed. If there is no such line, ErrMissingTitle is returned.
func (c *Converter) ExtractTitle(md string) (string, error) {
	for _, line := range strings.Split(c.prepare(md), "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:]), nil
		}
	}
	err := core.WrapError(ErrMissingTitle, core.EMISSING, "document has no level-1 heading")
	tracer().Errorf(err.Error())
	return "", err
}

// ConvertDocument converts a Markdown document to an HTML node tree, using
// the default configuration.
func ConvertDocument(md string) (*htmlnode.Node, error) {
	return defaultConverter.Convert(md)
}

// ExtractTitle returns the text of the first level-1 heading of a document.
func ExtractTitle(md string) (string, error) {
	return defaultConverter.ExtractTitle(md)
}

// ToHTML converts a Markdown document and renders it to HTML.
func ToHTML(md string) (string, error) {
	root, err := ConvertDocument(md)
	if err != nil {
		return "", err
	}
	return root.Render()
}
