package markdown

import (
	"errors"
	"testing"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDelimiter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	var tests = []struct {
		input string
		delim string
		kind  SpanKind
		spans []Span
	}{
		{"This is text with a `code block` word", "`", Code, []Span{
			PlainSpan("This is text with a "), StyledSpan("code block", Code), PlainSpan(" word"),
		}},
		{"This is text with `no text after the code block`", "`", Code, []Span{
			PlainSpan("This is text with "), StyledSpan("no text after the code block", Code),
		}},
		{"`no text before or after code block`", "`", Code, []Span{
			StyledSpan("no text before or after code block", Code),
		}},
		{"big **bold** words", "**", Bold, []Span{
			PlainSpan("big "), StyledSpan("bold", Bold), PlainSpan(" words"),
		}},
		{"fa*ncy*", "*", Italic, []Span{
			PlainSpan("fa"), StyledSpan("ncy", Italic),
		}},
		{"This is text with a **bolded word** and **another**", "**", Bold, []Span{
			PlainSpan("This is text with a "), StyledSpan("bolded word", Bold),
			PlainSpan(" and "), StyledSpan("another", Bold),
		}},
		{"no delimiter here", "`", Code, []Span{PlainSpan("no delimiter here")}},
	}
	for i, test := range tests {
		spans, err := splitDelimiter([]Span{PlainSpan(test.input)}, test.delim, test.kind)
		require.NoError(t, err, "test #%d", i)
		assert.Equal(t, test.spans, spans, "test #%d", i)
	}
}

func TestSplitDelimiterPassesStyledSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	in := []Span{StyledSpan("no `delimiter` here", Bold)}
	spans, err := splitDelimiter(in, "`", Code)
	require.NoError(t, err)
	assert.Equal(t, in, spans)
}

func TestSplitDelimiterChained(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	spans := []Span{PlainSpan("this `has` **a lot** going *on*")}
	var err error
	spans, err = splitDelimiter(spans, "`", Code)
	require.NoError(t, err)
	spans, err = splitDelimiter(spans, "**", Bold)
	require.NoError(t, err)
	spans, err = splitDelimiter(spans, "*", Italic)
	require.NoError(t, err)
	assert.Equal(t, []Span{
		PlainSpan("this "), StyledSpan("has", Code), PlainSpan(" "),
		StyledSpan("a lot", Bold), PlainSpan(" going "), StyledSpan("on", Italic),
	}, spans)
}

func TestUnclosedSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	_, err := splitDelimiter([]Span{PlainSpan("This is text with `only opening code block")}, "`", Code)
	assert.True(t, errors.Is(err, ErrUnclosedSpan))
	assert.Equal(t, core.ESYNTAX, core.Code(err))
	_, err = Tokenize("this has an '_' that somehow makes it bad")
	assert.ErrorIs(t, err, ErrUnclosedSpan)
	_, err = Tokenize("**bold** and **not")
	assert.ErrorIs(t, err, ErrUnclosedSpan)
}

func TestFindImagesAndLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	text := "This is text with a ![boot.dev logo](https://boot.dev/img/logo.webp) and [to youtube](https://youtube.com)"
	start, end, alt, url := findImage(text)
	assert.Equal(t, "boot.dev logo", alt)
	assert.Equal(t, "https://boot.dev/img/logo.webp", url)
	assert.Equal(t, "![boot.dev logo](https://boot.dev/img/logo.webp)", text[start:end])
	_, _, label, url := findLink(text)
	assert.Equal(t, "to youtube", label)
	assert.Equal(t, "https://youtube.com", url)
	start, _, _, _ = findLink("This doesn't even try to pretend to have a link")
	assert.Equal(t, -1, start)
	start, _, _, _ = findLink("only an ![image](x.png)")
	assert.Equal(t, -1, start)
}

func TestSplitImages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	var tests = []struct {
		input string
		spans []Span
	}{
		{"This has ![a logo](https://boot.dev/logo.gif)", []Span{
			PlainSpan("This has "), ImageSpan("a logo", "https://boot.dev/logo.gif"),
		}},
		{"This has ![a logo](https://boot.dev/logo.gif) and ![something else](https://example.com/else.jpeg)", []Span{
			PlainSpan("This has "), ImageSpan("a logo", "https://boot.dev/logo.gif"),
			PlainSpan(" and "), ImageSpan("something else", "https://example.com/else.jpeg"),
		}},
		{"![a logo](https://boot.dev/logo.gif)![and more](local.gif)", []Span{
			ImageSpan("a logo", "https://boot.dev/logo.gif"), ImageSpan("and more", "local.gif"),
		}},
		{"This has ![a logo](https://boot.dev/logo.gif) and some more text", []Span{
			PlainSpan("This has "), ImageSpan("a logo", "https://boot.dev/logo.gif"),
			PlainSpan(" and some more text"),
		}},
		{"This is just text", []Span{PlainSpan("This is just text")}},
	}
	for i, test := range tests {
		spans := splitMarkup([]Span{PlainSpan(test.input)}, Image, findImage)
		assert.Equal(t, test.spans, spans, "test #%d", i)
	}
}

func TestSplitLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	var tests = []struct {
		input string
		spans []Span
	}{
		{"This has [a link](https://boot.dev/)", []Span{
			PlainSpan("This has "), LinkSpan("a link", "https://boot.dev/"),
		}},
		{"[a link](https://boot.dev/logo.gif)[and link](local.gif)", []Span{
			LinkSpan("a link", "https://boot.dev/logo.gif"), LinkSpan("and link", "local.gif"),
		}},
		{"This has [a logo](https://boot.dev/logo.gif) and some more text", []Span{
			PlainSpan("This has "), LinkSpan("a logo", "https://boot.dev/logo.gif"),
			PlainSpan(" and some more text"),
		}},
		{"![img](a.png) then [link](b.html)", []Span{
			PlainSpan("![img](a.png) then "), LinkSpan("link", "b.html"),
		}},
		{"This is just text", []Span{PlainSpan("This is just text")}},
	}
	for i, test := range tests {
		spans := splitMarkup([]Span{PlainSpan(test.input)}, Link, findLink)
		assert.Equal(t, test.spans, spans, "test #%d", i)
	}
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	spans, err := Tokenize("This is **text** with an _italic_ word and a `code block` and an " +
		"![obi wan image](https://i.imgur.com/fJRm4Vk.jpeg) and a [link](https://boot.dev)")
	require.NoError(t, err)
	assert.Equal(t, []Span{
		PlainSpan("This is "),
		StyledSpan("text", Bold),
		PlainSpan(" with an "),
		StyledSpan("italic", Italic),
		PlainSpan(" word and a "),
		StyledSpan("code block", Code),
		PlainSpan(" and an "),
		ImageSpan("obi wan image", "https://i.imgur.com/fJRm4Vk.jpeg"),
		PlainSpan(" and a "),
		LinkSpan("link", "https://boot.dev"),
	}, spans)
}

func TestTokenizeEdgeCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	spans, err := Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, spans)
	spans, err = Tokenize("no markup at all")
	require.NoError(t, err)
	assert.Equal(t, []Span{PlainSpan("no markup at all")}, spans)
	// code is recognized first and not looked into
	spans, err = Tokenize("`**x** and [a](b)`")
	require.NoError(t, err)
	assert.Equal(t, []Span{StyledSpan("**x** and [a](b)", Code)}, spans)
	// adjacent delimiters leave nothing behind
	spans, err = Tokenize("****")
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestSpanToNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	var tests = []struct {
		span Span
		html string
	}{
		{PlainSpan("TESTES"), "TESTES"},
		{StyledSpan("bold", Bold), "<b>bold</b>"},
		{StyledSpan("fancy", Italic), "<i>fancy</i>"},
		{StyledSpan("code", Code), "<code>code</code>"},
		{LinkSpan("boot.dev", "https://boot.dev"), `<a href="https://boot.dev">boot.dev</a>`},
		{ImageSpan("ALT", "https://www.boot.dev/img/logo.webp"),
			`<img src="https://www.boot.dev/img/logo.webp" alt="ALT"></img>`},
	}
	for i, test := range tests {
		n, err := SpanToNode(test.span)
		require.NoError(t, err, "test #%d", i)
		s, err := n.Render()
		require.NoError(t, err, "test #%d", i)
		assert.Equal(t, test.html, s, "test #%d", i)
	}
	_, err := SpanToNode(Span{Text: "oops", Kind: SpanKind(42)})
	assert.ErrorIs(t, err, ErrUnknownSpanKind)
	assert.Equal(t, core.EINTERNAL, core.Code(err))
}

func TestSpanInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markdown")
	defer teardown()
	//
	assert.False(t, PlainSpan("x").HasURL())
	assert.False(t, StyledSpan("x", Bold).HasURL())
	assert.True(t, LinkSpan("x", "y").HasURL())
	assert.True(t, ImageSpan("x", "y").HasURL())
	assert.Equal(t, PlainSpan("x"), PlainSpan("x"))
	assert.NotEqual(t, StyledSpan("x", Bold), StyledSpan("x", Italic))
	assert.Equal(t, `Span("x", link, "y")`, LinkSpan("x", "y").String())
	assert.Equal(t, `Span("x", bold)`, StyledSpan("x", Bold).String())
	assert.Equal(t, "SpanKind(42)", SpanKind(42).String())
}
