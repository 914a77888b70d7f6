package render

import (
	"testing"

	"github.com/yuin/goldmark/ast"

	"github.com/alnah/go-mdconv/internal/pipeline"
)

// parse builds a tree the way the parser session does.
func parse(t *testing.T, source string, smart bool) (ast.Node, []byte) {
	t.Helper()
	src := pipeline.Preprocess([]byte(source), false)
	return pipeline.NewGoldmarkParser(pipeline.ParserOptions{Smart: smart}).Parse(src), src
}

// renderFunc is the common shape of the wrapping renderers.
type renderFunc func(doc ast.Node, source []byte, opts Options, width int) []byte

func renderWith(t *testing.T, fn renderFunc, source string, opts Options, width int) string {
	t.Helper()
	doc, src := parse(t, source, false)
	return string(fn(doc, src, opts, width))
}

func renderHTML(t *testing.T, source string, opts Options) string {
	t.Helper()
	doc, src := parse(t, source, false)
	out, err := HTML(doc, src, opts)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	return string(out)
}
