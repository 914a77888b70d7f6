package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// literal returns the text a raw inline segment stands for: backslash
// escapes are removed and entity references resolved. Escaped characters
// are never re-read as part of an entity.
func literal(v []byte) []byte {
	if bytes.IndexByte(v, '\\') < 0 && bytes.IndexByte(v, '&') < 0 {
		return v
	}
	out := make([]byte, 0, len(v))
	last := 0
	for i := 0; i < len(v)-1; i++ {
		if v[i] == '\\' && util.IsPunct(v[i+1]) {
			out = append(out, resolveReferences(v[last:i])...)
			out = append(out, v[i+1])
			i++
			last = i + 1
		}
	}
	return append(out, resolveReferences(v[last:])...)
}

func resolveReferences(v []byte) []byte {
	if bytes.IndexByte(v, '&') < 0 {
		return v
	}
	return util.ResolveEntityNames(util.ResolveNumericReferences(v))
}

// inlineText returns the literal value of a Text or String node. Text
// that ends a line has its trailing spaces and hard-break backslash
// removed, since the break is rendered separately.
func inlineText(n ast.Node, source []byte) string {
	switch t := n.(type) {
	case *ast.Text:
		v := t.Segment.Value(source)
		if t.SoftLineBreak() || t.HardLineBreak() {
			v = bytes.TrimRight(v, " \t")
			if t.HardLineBreak() {
				v = bytes.TrimSuffix(v, []byte{'\\'})
			}
		}
		if t.IsRaw() {
			return string(v)
		}
		return string(literal(v))
	case *ast.String:
		if t.IsRaw() || t.IsCode() {
			return string(t.Value)
		}
		return string(literal(t.Value))
	}
	return ""
}

// codeSpanText returns the content of a code span with line endings
// turned into spaces.
func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		}
	}
	return strings.ReplaceAll(b.String(), "\n", " ")
}

// plainText concatenates the literal text below n, dropping markup.
// Used where a format needs a text-only label (image alt text).
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.WriteString(inlineText(t, source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.WriteString(inlineText(t, source))
		case *ast.CodeSpan:
			b.WriteString(codeSpanText(t, source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// blockLines returns the content lines of a code or HTML block without
// their line endings. Tab padding recorded by the parser is restored.
func blockLines(n ast.Node, source []byte) []string {
	lines := n.Lines()
	out := make([]string, 0, lines.Len()+1)
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(source)), "\r\n"))
	}
	if hb, ok := n.(*ast.HTMLBlock); ok && hb.HasClosure() {
		out = append(out, strings.TrimRight(string(hb.ClosureLine.Value(source)), "\r\n"))
	}
	return out
}

// fenceInfo returns the raw info string of a fenced code block.
func fenceInfo(n ast.Node, source []byte) []byte {
	fc, ok := n.(*ast.FencedCodeBlock)
	if !ok || fc.Info == nil {
		return nil
	}
	return bytes.TrimSpace(fc.Info.Segment.Value(source))
}

// longestRun returns the length of the longest run of c in s.
func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// isFirstChild reports whether n is the first child of a list item.
func isFirstChild(n ast.Node) bool {
	_, inItem := n.Parent().(*ast.ListItem)
	return inItem && n.PreviousSibling() == nil
}

// joinLines terminates every line with a newline.
func joinLines(lines []string) []byte {
	if len(lines) == 0 {
		return []byte{}
	}
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.Bytes()
}
