package render

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// cmEscaper backslash-escapes characters that are markup anywhere in a
// line. Characters that are markup only at the start of a line are
// handled per word by cmEscapeWord.
var cmEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"&", `\&`,
)

// commonmarkRenderer writes normalized CommonMark. Blocks are rendered to
// lines; containers prefix the lines of their children.
type commonmarkRenderer struct {
	source []byte
	opts   Options
}

// CommonMark renders doc back to CommonMark. Parsing the output and
// rendering it again yields the same text.
func CommonMark(doc ast.Node, source []byte, opts Options, width int) []byte {
	r := &commonmarkRenderer{source: source, opts: opts}
	return joinLines(r.blocks(doc, width, false))
}

// blocks renders the children of parent, separated by blank lines unless
// they belong to a tight list item.
func (r *commonmarkRenderer) blocks(parent ast.Node, width int, tight bool) []string {
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

func (r *commonmarkRenderer) block(node ast.Node, width int) []string {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return fillParagraph(r.inlines(n, width, false), width, nil)
	case *ast.Heading:
		return r.heading(n)
	case *ast.ThematicBreak:
		return []string{"___"}
	case *ast.CodeBlock, *ast.FencedCodeBlock:
		return r.codeBlock(n)
	case *ast.HTMLBlock:
		return blockLines(n, r.source)
	case *ast.Blockquote:
		return r.blockquote(n, width)
	case *ast.List:
		return r.list(n, width)
	}
	return r.blocks(node, width, false)
}

func (r *commonmarkRenderer) heading(n *ast.Heading) []string {
	hashes := strings.Repeat("#", n.Level)
	text := restore(r.inlines(n, 0, true))
	if text == "" {
		return []string{hashes}
	}
	return []string{hashes + " " + text}
}

// codeBlock always writes a fenced block. The fence is longer than any
// run of the fence character inside the content.
func (r *commonmarkRenderer) codeBlock(n ast.Node) []string {
	lines := blockLines(n, r.source)
	info := string(fenceInfo(n, r.source))
	fenceChar := byte('`')
	if strings.Contains(info, "`") {
		fenceChar = '~'
	}
	size := 3
	for _, l := range lines {
		if run := longestRun(strings.TrimLeft(l, " "), fenceChar) + 1; run > size {
			size = run
		}
	}
	fence := strings.Repeat(string(fenceChar), size)

	out := make([]string, 0, len(lines)+2)
	out = append(out, fence+info)
	out = append(out, lines...)
	return append(out, fence)
}

func (r *commonmarkRenderer) blockquote(n *ast.Blockquote, width int) []string {
	inner := r.blocks(n, narrow(width, 2), false)
	if len(inner) == 0 {
		return []string{">"}
	}
	out := make([]string, len(inner))
	for i, l := range inner {
		if l == "" {
			out[i] = ">"
		} else {
			out[i] = "> " + l
		}
	}
	return out
}

// list keeps the source markers, so adjacent lists stay separate when the
// output is parsed again.
func (r *commonmarkRenderer) list(n *ast.List, width int) []string {
	var out []string
	num := n.Start
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		marker := string(n.Marker)
		if n.IsOrdered() {
			marker = strconv.Itoa(num) + marker
			num++
		}
		if len(out) > 0 && !n.IsTight {
			out = append(out, "")
		}
		out = append(out, r.listItem(item, marker, width, n.IsTight)...)
	}
	return out
}

func (r *commonmarkRenderer) listItem(item ast.Node, marker string, width int, tight bool) []string {
	indent := len(marker) + 1
	inner := r.blocks(item, narrow(width, indent), tight)
	if len(inner) == 0 {
		return []string{marker}
	}
	pad := strings.Repeat(" ", indent)
	out := make([]string, len(inner))
	for i, l := range inner {
		switch {
		case i == 0 && l == "":
			out[i] = marker
		case i == 0:
			out[i] = marker + " " + l
		case l == "":
			out[i] = ""
		default:
			out[i] = pad + l
		}
	}
	return out
}

// inlines renders the inline children of parent. Spaces inside code,
// links and raw HTML are protected from the wrapper. Headings render
// every break as a space.
func (r *commonmarkRenderer) inlines(parent ast.Node, width int, heading bool) string {
	var b strings.Builder
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(&b, c, width, heading)
	}
	return escapeWords(b.String(), cmEscapeWord)
}

func (r *commonmarkRenderer) inline(b *strings.Builder, node ast.Node, width int, heading bool) {
	switch n := node.(type) {
	case *ast.Text:
		b.WriteString(cmText(n, inlineText(n, r.source)))
		r.lineBreak(b, n, width, heading)
	case *ast.String:
		b.WriteString(cmText(n, inlineText(n, r.source)))
	case *ast.CodeSpan:
		b.WriteString(protect(codeSpan(codeSpanText(n, r.source))))
	case *ast.Emphasis:
		delim := strings.Repeat("*", n.Level)
		b.WriteString(delim)
		r.children(b, n, width, heading)
		b.WriteString(delim)
	case *ast.Link:
		b.WriteByte('[')
		r.children(b, n, width, heading)
		b.WriteString("](" + protect(linkTarget(n.Destination, n.Title)) + ")")
	case *ast.Image:
		b.WriteString("![")
		r.children(b, n, width, heading)
		b.WriteString("](" + protect(linkTarget(n.Destination, n.Title)) + ")")
	case *ast.AutoLink:
		b.WriteString(protect("<" + string(n.Label(r.source)) + ">"))
	case *ast.RawHTML:
		b.WriteString(protect(rawHTML(n, r.source)))
	default:
		r.children(b, n, width, heading)
	}
}

func (r *commonmarkRenderer) children(b *strings.Builder, n ast.Node, width int, heading bool) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(b, c, width, heading)
	}
}

func (r *commonmarkRenderer) lineBreak(b *strings.Builder, n *ast.Text, width int, heading bool) {
	hard := n.HardLineBreak()
	if !hard && !n.SoftLineBreak() {
		return
	}
	if heading {
		b.WriteByte(' ')
		return
	}
	if !hard {
		switch r.opts.softBreak(width) {
		case breakHard:
			hard = true
		case breakSpace:
			b.WriteByte(' ')
			return
		default:
			b.WriteByte('\n')
			return
		}
	}
	b.WriteString("\\\n")
}

// cmText escapes the text of n. A '!' right before a link is escaped too,
// or the pair would be read back as an image.
func cmText(n ast.Node, text string) string {
	s := cmEscaper.Replace(text)
	if _, ok := n.NextSibling().(*ast.Link); ok && strings.HasSuffix(s, "!") {
		s = s[:len(s)-1] + `\!`
	}
	return s
}

// codeSpan wraps code in a backtick fence longer than any backtick run it
// contains, padding with spaces when the content would otherwise be
// trimmed or merge with the fence.
func codeSpan(code string) string {
	fence := strings.Repeat("`", longestRun(code, '`')+1)
	pad := ""
	if strings.HasPrefix(code, "`") || strings.HasSuffix(code, "`") ||
		(strings.HasPrefix(code, " ") && strings.HasSuffix(code, " ") && strings.Trim(code, " ") != "") {
		pad = " "
	}
	return fence + pad + code + pad + fence
}

// linkTarget renders a link destination and optional title. Destinations
// are kept in their source form; ones that cannot stand bare are wrapped
// in angle brackets.
func linkTarget(destination, title []byte) string {
	dest := string(destination)
	if dest == "" || strings.ContainsAny(dest, " \t\n()<>") {
		dest = "<" + strings.NewReplacer("<", `\<`, ">", `\>`, "\n", " ").Replace(dest) + ">"
	}
	if len(title) == 0 {
		return dest
	}
	t := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "&", `\&`).Replace(string(literal(title)))
	return dest + ` "` + t + `"`
}

// cmEscapeWord escapes words that would start a block if a line began
// with them: heading markers, list bullets, thematic breaks, setext
// underlines, tilde fences and ordered list markers.
func cmEscapeWord(w string) string {
	switch {
	case w == "":
		return w
	case strings.Trim(w, "-+=#") == "":
		return `\` + w
	case strings.HasPrefix(w, "~~~"):
		return `\` + w
	case isOrderedMarker(w):
		return w[:len(w)-1] + `\` + w[len(w)-1:]
	}
	return w
}

// isOrderedMarker reports whether w is 1-9 digits followed by '.' or ')'.
func isOrderedMarker(w string) bool {
	n := len(w)
	if n < 2 || n > 10 || (w[n-1] != '.' && w[n-1] != ')') {
		return false
	}
	for i := 0; i < n-1; i++ {
		if w[i] < '0' || w[i] > '9' {
			return false
		}
	}
	return true
}
