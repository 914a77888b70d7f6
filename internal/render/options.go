package render

// Options are the render switches shared by every renderer.
// Renderers ignore the switches that do not apply to their format.
type Options struct {
	SourcePos  bool // annotate blocks with source positions (html, xml)
	HardBreaks bool // soft breaks become hard breaks; wins over NoBreaks
	NoBreaks   bool // soft breaks become spaces
	Unsafe     bool // pass raw HTML and dangerous URLs through (html)
	Highlight  bool // chroma highlighting of fenced code (html)
}

// breakKind is how a soft line break is written.
type breakKind int

const (
	breakNewline breakKind = iota // keep the line break
	breakSpace                    // join the lines
	breakHard                     // force a hard break
)

// softBreak resolves the rendering of a soft break. HardBreaks takes
// precedence over NoBreaks. When wrapping is on, soft breaks become spaces
// so the paragraph can be refilled.
func (o Options) softBreak(width int) breakKind {
	switch {
	case o.HardBreaks:
		return breakHard
	case o.NoBreaks || width > 0:
		return breakSpace
	default:
		return breakNewline
	}
}
