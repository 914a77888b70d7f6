package render

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark/ast"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdconv/internal/pipeline"
)

// sourcePosAttr carries block positions in HTML output.
var sourcePosAttr = []byte("data-sourcepos")

// HTML renders doc as an HTML fragment using goldmark's HTML renderer.
// Output is XHTML-style (<br />, <hr />). Without Unsafe, raw HTML is
// replaced by a comment and dangerous link destinations are dropped.
//
// Source positions are stored as node attributes, so HTML annotates (or
// clears) the tree it renders; a tree must not be rendered concurrently.
func HTML(doc ast.Node, source []byte, opts Options) ([]byte, error) {
	annotateSourcePos(doc, source, opts.SourcePos)

	htmlOpts := []html.Option{html.WithXHTML()}
	if opts.Unsafe {
		htmlOpts = append(htmlOpts, html.WithUnsafe())
	}

	cfg := html.NewConfig()
	cfg.XHTML = true
	nodeRenderers := []util.PrioritizedValue{
		util.Prioritized(html.NewRenderer(htmlOpts...), 1000),
		util.Prioritized(&breakRenderer{Config: cfg, opts: opts}, 100),
	}
	if opts.Highlight {
		nodeRenderers = append(nodeRenderers, util.Prioritized(
			highlighting.NewHTMLRenderer(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes, stylesheet left to the page
				),
			), 200))
	}

	r := renderer.NewRenderer(renderer.WithNodeRenderers(nodeRenderers...))
	var buf bytes.Buffer
	if err := r.Render(&buf, source, doc); err != nil {
		return nil, fmt.Errorf("html: %w", err)
	}
	return buf.Bytes(), nil
}

// annotateSourcePos sets or clears the data-sourcepos attribute on every
// block node. Plain CommonMark nodes carry no other attributes.
func annotateSourcePos(doc ast.Node, source []byte, on bool) {
	var idx *pipeline.LineIndex
	if on {
		idx = pipeline.NewLineIndex(source)
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		if !on {
			if n.Attributes() != nil {
				n.RemoveAttributes()
			}
			return ast.WalkContinue, nil
		}
		if span, ok := idx.BlockSpan(n); ok {
			n.SetAttribute(sourcePosAttr, []byte(span.String()))
		}
		return ast.WalkContinue, nil
	})
}

// breakRenderer replaces goldmark's text renderer to apply the soft break
// policy: hard breaks win over no-breaks.
type breakRenderer struct {
	html.Config
	opts Options
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *breakRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindText, r.renderText)
}

func (r *breakRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	value := n.Segment.Value(source)
	if n.IsRaw() {
		r.Writer.RawWrite(w, value)
		return ast.WalkContinue, nil
	}
	r.Writer.Write(w, value)
	switch {
	case n.HardLineBreak() || (n.SoftLineBreak() && r.opts.HardBreaks):
		if r.XHTML {
			_, _ = w.WriteString("<br />\n")
		} else {
			_, _ = w.WriteString("<br>\n")
		}
	case n.SoftLineBreak() && r.opts.NoBreaks:
		_ = w.WriteByte(' ')
	case n.SoftLineBreak():
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}
