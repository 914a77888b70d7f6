package mdconv

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Option configures a Converter.
type Option func(*Converter)

// WithFormat selects the output format.
func WithFormat(f Format) Option {
	return func(c *Converter) {
		c.cfg.Format = f
	}
}

// WithOptions sets the render options, replacing any set before.
func WithOptions(opts Options) Option {
	return func(c *Converter) {
		c.cfg.Options = opts
	}
}

// WithWidth sets the wrap width. 0 disables wrapping.
func WithWidth(width int) Option {
	return func(c *Converter) {
		c.cfg.Width = width
	}
}

// WithHighlight enables syntax highlighting of fenced code in HTML output.
func WithHighlight(on bool) Option {
	return func(c *Converter) {
		c.cfg.Highlight = on
	}
}

// WithLogger sets the logger for this converter. By default the package
// logger is used.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		c.log = l
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Converter) {
		c.cfg = cfg
	}
}

// Converter runs the parse-render pipeline with a fixed configuration.
// It holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	cfg Config
	log *zap.Logger
}

// NewConverter creates a Converter for HTML output with default options,
// then applies opts. It fails if the resulting configuration is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = Logger()
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Config returns the converter configuration.
func (c *Converter) Config() Config {
	return c.cfg
}

// Convert parses source and renders it. The caller owns the returned
// Output and must Release it. The context is checked between stages.
func (c *Converter) Convert(ctx context.Context, source []byte) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := c.log.With(zap.Stringer("format", c.cfg.Format), zap.Stringer("options", c.cfg.Options))

	p := NewParser(c.cfg)
	defer p.Close()
	if err := p.Feed(source); err != nil {
		return nil, err
	}
	doc, err := p.Finish()
	if err != nil {
		return nil, err
	}
	defer doc.Release()
	log.Debug("parsed input", zap.Int("bytes", len(source)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := Render(doc, c.cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("rendered output", zap.Int("bytes", out.Len()), zap.Int("width", c.cfg.Width))
	return out, nil
}

// ConvertTo converts source and writes the result to w. Nothing is written
// if conversion fails.
func (c *Converter) ConvertTo(ctx context.Context, w io.Writer, source []byte) error {
	out, err := c.Convert(ctx, source)
	if err != nil {
		return err
	}
	defer out.Release()

	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := out.WriteTo(w)
	if err != nil {
		return err
	}
	c.log.Debug("wrote output", zap.Int64("bytes", n))
	return nil
}

// Convert converts source with a one-off configuration.
func Convert(ctx context.Context, source []byte, cfg Config) (*Output, error) {
	c, err := NewConverter(WithConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}
	return c.Convert(ctx, source)
}
