package render

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"

	"github.com/alnah/go-mdconv/internal/pipeline"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<!DOCTYPE document SYSTEM "CommonMark.dtd">` + "\n"
	xmlNamespace = "http://commonmark.org/xml/1.0"
)

// xmlEscape escapes markup characters and replaces characters XML 1.0
// cannot carry, invalid UTF-8 included, with U+FFFD.
func xmlEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case c == '&':
			b.WriteString("&amp;")
		case c == '<':
			b.WriteString("&lt;")
		case c == '>':
			b.WriteString("&gt;")
		case c == '"':
			b.WriteString("&quot;")
		case c == utf8.RuneError && size == 1, !isXMLChar(c):
			b.WriteRune(utf8.RuneError)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// isXMLChar reports whether c matches the Char production of XML 1.0.
func isXMLChar(c rune) bool {
	return c == '\t' || c == '\n' || c == '\r' ||
		c >= 0x20 && c <= 0xD7FF ||
		c >= 0xE000 && c <= 0xFFFD ||
		c >= 0x10000 && c <= 0x10FFFF
}

// xmlAttr is one attribute of an XML element, in output order.
type xmlAttr struct {
	name, value string
}

// xmlRenderer writes the CommonMark XML representation of a tree: one
// element per node, indented two spaces per level.
type xmlRenderer struct {
	source []byte
	opts   Options
	idx    *pipeline.LineIndex
	buf    bytes.Buffer
}

// XML renders doc as CommonMark XML. An empty document is a self-closed
// document element. Soft and hard breaks are written as they occur in the
// tree; the break options do not apply to this format.
func XML(doc ast.Node, source []byte, opts Options) []byte {
	r := &xmlRenderer{source: source, opts: opts}
	if opts.SourcePos {
		r.idx = pipeline.NewLineIndex(source)
	}
	r.buf.WriteString(xmlHeader)
	r.node(doc, 0)
	return r.buf.Bytes()
}

func (r *xmlRenderer) node(n ast.Node, depth int) {
	name, attrs, text, isLiteral := r.describe(n)
	if name == "" {
		// Unknown node kinds contribute their children only.
		r.children(n, depth)
		return
	}

	indent := strings.Repeat("  ", depth)
	r.buf.WriteString(indent)
	r.buf.WriteByte('<')
	r.buf.WriteString(name)
	if depth == 0 {
		r.attr(xmlAttr{"xmlns", xmlNamespace})
	}
	if r.idx != nil {
		if span, ok := r.idx.BlockSpan(n); ok {
			r.attr(xmlAttr{"sourcepos", span.String()})
		}
	}
	for _, a := range attrs {
		r.attr(a)
	}

	al, isAutoLink := n.(*ast.AutoLink)
	switch {
	case isAutoLink:
		r.buf.WriteString(">\n")
		r.buf.WriteString(strings.Repeat("  ", depth+1) + `<text xml:space="preserve">`)
		r.buf.WriteString(xmlEscape(string(al.Label(r.source))))
		r.buf.WriteString("</text>\n" + indent + "</" + name + ">\n")
	case isLiteral:
		r.buf.WriteString(` xml:space="preserve">`)
		r.buf.WriteString(xmlEscape(text))
		r.buf.WriteString("</" + name + ">\n")
	case n.FirstChild() == nil:
		r.buf.WriteString(" />\n")
	default:
		r.buf.WriteString(">\n")
		r.children(n, depth+1)
		r.buf.WriteString(indent + "</" + name + ">\n")
	}
}

func (r *xmlRenderer) children(n ast.Node, depth int) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, isText := c.(*ast.Text)
		if !isText || inlineText(t, r.source) != "" {
			r.node(c, depth)
		}
		if !isText {
			continue
		}
		switch {
		case t.HardLineBreak():
			r.buf.WriteString(strings.Repeat("  ", depth) + "<linebreak />\n")
		case t.SoftLineBreak():
			r.buf.WriteString(strings.Repeat("  ", depth) + "<softbreak />\n")
		}
	}
}

func (r *xmlRenderer) attr(a xmlAttr) {
	r.buf.WriteByte(' ')
	r.buf.WriteString(a.name)
	r.buf.WriteString(`="`)
	r.buf.WriteString(xmlEscape(a.value))
	r.buf.WriteByte('"')
}

// describe maps a node to its element name, attributes and, for literal
// nodes, the text content.
func (r *xmlRenderer) describe(node ast.Node) (name string, attrs []xmlAttr, text string, isLiteral bool) {
	switch n := node.(type) {
	case *ast.Document:
		return "document", nil, "", false
	case *ast.Blockquote:
		return "block_quote", nil, "", false
	case *ast.List:
		return "list", listAttrs(n), "", false
	case *ast.ListItem:
		return "item", nil, "", false
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if info := fenceInfo(n, r.source); len(info) > 0 {
			attrs = append(attrs, xmlAttr{"info", string(literal(info))})
		}
		return "code_block", attrs, linesText(blockLines(n, r.source)), true
	case *ast.HTMLBlock:
		return "html_block", nil, linesText(blockLines(n, r.source)), true
	case *ast.Paragraph, *ast.TextBlock:
		return "paragraph", nil, "", false
	case *ast.Heading:
		return "heading", []xmlAttr{{"level", strconv.Itoa(n.Level)}}, "", false
	case *ast.ThematicBreak:
		return "thematic_break", nil, "", false
	case *ast.Text, *ast.String:
		return "text", nil, inlineText(n, r.source), true
	case *ast.CodeSpan:
		return "code", nil, codeSpanText(n, r.source), true
	case *ast.RawHTML:
		return "html_inline", nil, rawHTML(n, r.source), true
	case *ast.Emphasis:
		if n.Level >= 2 {
			return "strong", nil, "", false
		}
		return "emph", nil, "", false
	case *ast.Link:
		return "link", linkAttrs(n.Destination, n.Title), "", false
	case *ast.Image:
		return "image", linkAttrs(n.Destination, n.Title), "", false
	case *ast.AutoLink:
		return "link", []xmlAttr{{"destination", string(n.URL(r.source))}, {"title", ""}}, "", false
	}
	return "", nil, "", false
}

func listAttrs(n *ast.List) []xmlAttr {
	if !n.IsOrdered() {
		return []xmlAttr{{"type", "bullet"}, {"tight", strconv.FormatBool(n.IsTight)}}
	}
	delim := "period"
	if n.Marker == ')' {
		delim = "paren"
	}
	return []xmlAttr{
		{"type", "ordered"},
		{"start", strconv.Itoa(n.Start)},
		{"delim", delim},
		{"tight", strconv.FormatBool(n.IsTight)},
	}
}

func linkAttrs(destination, title []byte) []xmlAttr {
	return []xmlAttr{
		{"destination", string(literal(destination))},
		{"title", string(literal(title))},
	}
}

// rawHTML concatenates the segments of an inline HTML node.
func rawHTML(n *ast.RawHTML, source []byte) string {
	var b strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// linesText joins block lines, terminating each with a newline.
func linesText(lines []string) string {
	return string(joinLines(lines))
}
