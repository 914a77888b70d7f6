package mdconv

import (
	"fmt"

	"github.com/yuin/goldmark/ast"

	"github.com/alnah/go-mdconv/internal/render"
)

// renderJob is one renderer bound to the settings it uses.
type renderJob interface {
	render(root ast.Node, source []byte) ([]byte, error)
}

type htmlJob struct{ opts render.Options }

func (j htmlJob) render(root ast.Node, source []byte) ([]byte, error) {
	return render.HTML(root, source, j.opts)
}

type xmlJob struct{ opts render.Options }

func (j xmlJob) render(root ast.Node, source []byte) ([]byte, error) {
	return render.XML(root, source, j.opts), nil
}

type manJob struct {
	opts  render.Options
	width int
}

func (j manJob) render(root ast.Node, source []byte) ([]byte, error) {
	return render.Man(root, source, j.opts, j.width), nil
}

type commonmarkJob struct {
	opts  render.Options
	width int
}

func (j commonmarkJob) render(root ast.Node, source []byte) ([]byte, error) {
	return render.CommonMark(root, source, j.opts, j.width), nil
}

type latexJob struct {
	opts  render.Options
	width int
}

func (j latexJob) render(root ast.Node, source []byte) ([]byte, error) {
	return render.LaTeX(root, source, j.opts, j.width), nil
}

// selectJob maps a config to exactly one renderer. Width only reaches the
// renderers that wrap.
func selectJob(cfg Config) (renderJob, error) {
	opts := render.Options{
		SourcePos:  cfg.Options.Has(OptSourcePos),
		HardBreaks: cfg.Options.Has(OptHardBreaks),
		NoBreaks:   cfg.Options.Has(OptNoBreaks),
		Unsafe:     cfg.Options.Has(OptUnsafe),
	}
	width := 0
	if cfg.Format.Wraps() {
		width = cfg.Width
	}
	switch cfg.Format {
	case FormatHTML:
		opts.Highlight = cfg.Highlight
		return htmlJob{opts: opts}, nil
	case FormatXML:
		return xmlJob{opts: opts}, nil
	case FormatMan:
		return manJob{opts: opts, width: width}, nil
	case FormatCommonMark:
		return commonmarkJob{opts: opts, width: width}, nil
	case FormatLaTeX:
		return latexJob{opts: opts, width: width}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, cfg.Format)
}

// Render serializes doc in the format selected by cfg. The document is
// left intact and can be rendered again. Render performs no I/O.
func Render(doc *Document, cfg Config) (*Output, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if doc == nil || doc.released {
		return nil, ErrDocumentReleased
	}
	job, err := selectJob(cfg)
	if err != nil {
		return nil, err
	}
	buf, err := job.render(doc.root, doc.source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return &Output{format: cfg.Format, buf: buf}, nil
}
