package pipeline

import (
	"fmt"
	"sort"

	"github.com/yuin/goldmark/ast"
)

// Span is a 1-based, inclusive source range.
type Span struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// String formats the span as "line:col-line:col".
func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}

// LineIndex maps byte offsets of a source to line and column numbers.
type LineIndex struct {
	source []byte
	starts []int // byte offset of each line start
}

// NewLineIndex indexes the line starts of source.
func NewLineIndex(source []byte) *LineIndex {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{source: source, starts: starts}
}

// Locate returns the 1-based line and byte column of offset.
func (x *LineIndex) Locate(offset int) (line, col int) {
	i := sort.Search(len(x.starts), func(i int) bool { return x.starts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, offset - x.starts[i] + 1
}

// BlockSpan computes the source range covered by a block node from the
// line segments of the node and its block descendants. It reports false
// for inline nodes and for blocks without any source lines.
func (x *LineIndex) BlockSpan(n ast.Node) (Span, bool) {
	if n.Type() != ast.TypeBlock {
		return Span{}, false
	}
	start, stop := -1, -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if c.Type() != ast.TypeBlock {
			return ast.WalkSkipChildren, nil
		}
		lines := c.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if seg.Stop <= seg.Start {
				continue
			}
			if start < 0 || seg.Start < start {
				start = seg.Start
			}
			if seg.Stop > stop {
				stop = seg.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	if start < 0 {
		return Span{}, false
	}

	if _, ok := n.(*ast.Heading); ok {
		start = x.headingStart(start)
	}

	end := stop - 1
	for end > start && (x.source[end] == '\n' || x.source[end] == '\r') {
		end--
	}

	var s Span
	s.StartLine, s.StartCol = x.Locate(start)
	s.EndLine, s.EndCol = x.Locate(end)
	return s, true
}

// headingStart moves an ATX heading's content offset back over its marker.
func (x *LineIndex) headingStart(offset int) int {
	for offset > 0 {
		switch x.source[offset-1] {
		case '#', ' ', '\t':
			offset--
		default:
			return offset
		}
	}
	return offset
}
