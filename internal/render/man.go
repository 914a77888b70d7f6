package render

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// manEscaper escapes text for groff. Typographic punctuation produced by
// the smart option is mapped to groff named glyphs.
var manEscaper = strings.NewReplacer(
	`\`, `\e`,
	"-", `\-`,
	"\u2018", `\[oq]`,
	"\u2019", `\[cq]`,
	"\u201C", `\[lq]`,
	"\u201D", `\[rq]`,
	"\u2014", `\[em]`,
	"\u2013", `\[en]`,
	"\u2026", "...",
)

// manHardBreak separates the lines of a paragraph with a hard break.
var manHardBreak = []string{".PD 0", ".P", ".PD"}

// manRenderer writes groff man(7) requests. Raw HTML is omitted.
type manRenderer struct {
	source []byte
	opts   Options
}

// Man renders doc as a groff man page body. No .TH header is written.
func Man(doc ast.Node, source []byte, opts Options, width int) []byte {
	r := &manRenderer{source: source, opts: opts}
	return joinLines(r.blocks(doc, width))
}

func (r *manRenderer) blocks(parent ast.Node, width int) []string {
	var out []string
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, r.block(c, width)...)
	}
	return out
}

func (r *manRenderer) block(node ast.Node, width int) []string {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		var out []string
		if !isFirstChild(n) {
			out = append(out, ".PP")
		}
		return append(out, fillParagraph(r.inlines(n, width), width, manHardBreak)...)
	case *ast.Heading:
		req := ".SS"
		if n.Level == 1 {
			req = ".SH"
		}
		return []string{req, restore(singleLine(r.inlines(n, 0)))}
	case *ast.ThematicBreak:
		return []string{".PP", "  *  *  *  *  *"}
	case *ast.CodeBlock, *ast.FencedCodeBlock:
		return r.codeBlock(n)
	case *ast.HTMLBlock:
		return nil
	case *ast.Blockquote:
		out := []string{".RS"}
		out = append(out, r.blocks(n, width)...)
		return append(out, ".RE")
	case *ast.List:
		return r.list(n, width)
	}
	return r.blocks(node, width)
}

func (r *manRenderer) codeBlock(n ast.Node) []string {
	out := []string{".IP", ".nf", `\f[C]`}
	for _, l := range blockLines(n, r.source) {
		out = append(out, manLineStart(manEscaper.Replace(l)))
	}
	return append(out, `\f[]`, ".fi")
}

// list renders each item as an indented paragraph. Lists nested in an
// item are shifted right with .RS/.RE.
func (r *manRenderer) list(n *ast.List, width int) []string {
	var out []string
	_, nested := n.Parent().(*ast.ListItem)
	if nested {
		out = append(out, ".RS 4")
	}
	num := n.Start
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		if n.IsOrdered() {
			out = append(out, `.IP "`+strconv.Itoa(num)+`." 4`)
			num++
		} else {
			out = append(out, `.IP \[bu] 2`)
		}
		out = append(out, r.blocks(item, width)...)
	}
	if nested {
		out = append(out, ".RE")
	}
	return out
}

func (r *manRenderer) inlines(parent ast.Node, width int) string {
	var b strings.Builder
	r.children(&b, parent, width)
	return escapeWords(b.String(), manLineStart)
}

func (r *manRenderer) children(b *strings.Builder, n ast.Node, width int) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(b, c, width)
	}
}

func (r *manRenderer) inline(b *strings.Builder, node ast.Node, width int) {
	switch n := node.(type) {
	case *ast.Text:
		b.WriteString(manEscaper.Replace(inlineText(n, r.source)))
		r.lineBreak(b, n, width)
	case *ast.String:
		b.WriteString(manEscaper.Replace(inlineText(n, r.source)))
	case *ast.CodeSpan:
		b.WriteString(protect(`\f[C]` + manEscaper.Replace(codeSpanText(n, r.source)) + `\f[]`))
	case *ast.Emphasis:
		font := `\f[I]`
		if n.Level >= 2 {
			font = `\f[B]`
		}
		b.WriteString(font)
		r.children(b, n, width)
		b.WriteString(`\f[]`)
	case *ast.Link:
		r.children(b, n, width)
		url := string(literal(n.Destination))
		if url != plainText(n, r.source) {
			b.WriteString(" (" + protect(manEscaper.Replace(url)) + ")")
		}
	case *ast.AutoLink:
		b.WriteString(protect(manEscaper.Replace(string(n.Label(r.source)))))
	case *ast.Image:
		b.WriteString("[IMAGE: ")
		r.children(b, n, width)
		b.WriteString("]")
	case *ast.RawHTML:
		// omitted
	default:
		r.children(b, n, width)
	}
}

func (r *manRenderer) lineBreak(b *strings.Builder, n *ast.Text, width int) {
	switch {
	case n.HardLineBreak():
		b.WriteString(" " + hardBreakMark + " ")
	case !n.SoftLineBreak():
	case r.opts.softBreak(width) == breakHard:
		b.WriteString(" " + hardBreakMark + " ")
	case r.opts.softBreak(width) == breakSpace:
		b.WriteByte(' ')
	default:
		b.WriteByte('\n')
	}
}

// manLineStart keeps a word that may begin a line from being read as a
// request or macro call.
func manLineStart(w string) string {
	if strings.HasPrefix(w, ".") || strings.HasPrefix(w, "'") {
		return `\&` + w
	}
	return w
}
