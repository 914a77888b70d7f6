package render

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
)

var latexSections = []string{
	`\section`, `\subsection`, `\subsubsection`, `\paragraph`, `\subparagraph`,
}

// latexItem starts the first line of a list item.
const latexItem = `\item `

// latexCounters are the enumerate counters for each nesting level.
var latexCounters = []string{"enumi", "enumii", "enumiii", "enumiv"}

// latexRenderer writes a LaTeX body. Raw HTML is omitted.
type latexRenderer struct {
	source []byte
	opts   Options
}

// LaTeX renders doc as LaTeX markup without a preamble.
func LaTeX(doc ast.Node, source []byte, opts Options, width int) []byte {
	r := &latexRenderer{source: source, opts: opts}
	return joinLines(r.blocks(doc, width, false))
}

func (r *latexRenderer) blocks(parent ast.Node, width int, tight bool) []string {
	var out []string
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		lines := r.block(c, width)
		if len(lines) == 0 {
			continue
		}
		if len(out) > 0 && !tight {
			out = append(out, "")
		}
		out = append(out, lines...)
	}
	return out
}

func (r *latexRenderer) block(node ast.Node, width int) []string {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return fillParagraph(r.inlines(n, width), width, nil)
	case *ast.Heading:
		level := min(n.Level, len(latexSections))
		return []string{latexSections[level-1] + "{" + restore(r.inlines(n, 0)) + "}"}
	case *ast.ThematicBreak:
		return []string{`\begin{center}\rule{0.5\linewidth}{\linethickness}\end{center}`}
	case *ast.CodeBlock, *ast.FencedCodeBlock:
		out := []string{`\begin{verbatim}`}
		out = append(out, blockLines(n, r.source)...)
		return append(out, `\end{verbatim}`)
	case *ast.HTMLBlock:
		return nil
	case *ast.Blockquote:
		out := []string{`\begin{quote}`}
		out = append(out, r.blocks(n, width, false)...)
		return append(out, `\end{quote}`)
	case *ast.List:
		return r.list(n, width)
	}
	return r.blocks(node, width, false)
}

func (r *latexRenderer) list(n *ast.List, width int) []string {
	env := "itemize"
	if n.IsOrdered() {
		env = "enumerate"
	}
	out := []string{`\begin{` + env + `}`}
	if n.IsOrdered() && n.Start != 1 {
		if depth := orderedDepth(n); depth < len(latexCounters) {
			out = append(out, `\setcounter{`+latexCounters[depth]+`}{`+strconv.Itoa(n.Start-1)+`}`)
		}
	}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		// The first line carries the \item prefix.
		inner := r.blocks(item, narrow(width, len(latexItem)), n.IsTight)
		if len(inner) == 0 {
			out = append(out, `\item`)
			continue
		}
		out = append(out, latexItem+inner[0])
		out = append(out, inner[1:]...)
	}
	return append(out, `\end{`+env+`}`)
}

// orderedDepth counts the ordered lists enclosing n.
func orderedDepth(n *ast.List) int {
	depth := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		if l, ok := p.(*ast.List); ok && l.IsOrdered() {
			depth++
		}
	}
	return depth
}

func (r *latexRenderer) inlines(parent ast.Node, width int) string {
	var b strings.Builder
	r.children(&b, parent, width)
	return b.String()
}

func (r *latexRenderer) children(b *strings.Builder, n ast.Node, width int) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(b, c, width)
	}
}

func (r *latexRenderer) inline(b *strings.Builder, node ast.Node, width int) {
	switch n := node.(type) {
	case *ast.Text:
		b.WriteString(latexEscape(inlineText(n, r.source)))
		r.lineBreak(b, n, width)
	case *ast.String:
		b.WriteString(latexEscape(inlineText(n, r.source)))
	case *ast.CodeSpan:
		b.WriteString(protect(`\texttt{` + latexEscape(codeSpanText(n, r.source)) + `}`))
	case *ast.Emphasis:
		cmd := `\emph{`
		if n.Level >= 2 {
			cmd = `\textbf{`
		}
		b.WriteString(cmd)
		r.children(b, n, width)
		b.WriteByte('}')
	case *ast.Link:
		url := string(literal(n.Destination))
		if url == plainText(n, r.source) {
			b.WriteString(protect(`\url{` + latexURL(url) + `}`))
			return
		}
		b.WriteString(protect(`\href{`+latexURL(url)+`}`) + "{")
		r.children(b, n, width)
		b.WriteByte('}')
	case *ast.AutoLink:
		b.WriteString(protect(`\url{` + latexURL(string(n.URL(r.source))) + `}`))
	case *ast.Image:
		b.WriteString(protect(`\protect\includegraphics{` + latexURL(string(literal(n.Destination))) + `}`))
	case *ast.RawHTML:
		// omitted
	default:
		r.children(b, n, width)
	}
}

func (r *latexRenderer) lineBreak(b *strings.Builder, n *ast.Text, width int) {
	hard := n.HardLineBreak()
	if !hard && n.SoftLineBreak() {
		switch r.opts.softBreak(width) {
		case breakHard:
			hard = true
		case breakSpace:
			b.WriteByte(' ')
		default:
			b.WriteByte('\n')
		}
	}
	if hard {
		b.WriteString("\\\\\n")
	}
}

// latexEscape escapes LaTeX special characters and maps typographic
// punctuation to LaTeX ligatures. A hyphen followed by another hyphen is
// split so the pair is not read as a dash.
func latexEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, c := range s {
		switch c {
		case '{', '}', '#', '%', '&', '$', '_':
			b.WriteByte('\\')
			b.WriteRune(c)
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '^':
			b.WriteString(`\^{}`)
		case '|':
			b.WriteString(`\textbar{}`)
		case '<':
			b.WriteString(`\textless{}`)
		case '>':
			b.WriteString(`\textgreater{}`)
		case '"':
			b.WriteString(`\textquotedbl{}`)
		case '[':
			b.WriteString(`{[}`)
		case ']':
			b.WriteString(`{]}`)
		case '-':
			if strings.HasPrefix(s[i+1:], "-") {
				b.WriteString("-{}")
			} else {
				b.WriteByte('-')
			}
		case '\u2018':
			b.WriteByte('`')
		case '\u2019':
			b.WriteByte('\'')
		case '\u201C':
			b.WriteString("``")
		case '\u201D':
			b.WriteString("''")
		case '\u2014':
			b.WriteString("---")
		case '\u2013':
			b.WriteString("--")
		case '\u2026':
			b.WriteString(`\ldots{}`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// latexURL escapes the characters that break \url and \href arguments.
func latexURL(s string) string {
	return strings.NewReplacer(`\`, `\\`, "{", `\{`, "}", `\}`, "%", `\%`, "#", `\#`).Replace(s)
}
