package mdconv

import (
	"bytes"
	"fmt"

	"github.com/alnah/go-mdconv/internal/pipeline"
)

// parserState tracks the session lifecycle.
type parserState int

const (
	stateOpen parserState = iota
	stateFinished
	stateClosed
)

// Parser is a parser session. Input is fed in any number of chunks and
// finished into exactly one Document. A Parser is not safe for concurrent
// use.
type Parser struct {
	cfg    Config
	buf    bytes.Buffer
	state  parserState
	parser *pipeline.GoldmarkParser
}

// NewParser creates an open session. The config is copied; changing cfg
// afterwards has no effect on the session.
func NewParser(cfg Config) *Parser {
	return &Parser{
		cfg: cfg,
		parser: pipeline.NewGoldmarkParser(pipeline.ParserOptions{
			Smart: cfg.Options.Has(OptSmart),
		}),
	}
}

// Config returns the configuration captured by the session.
func (p *Parser) Config() Config {
	return p.cfg
}

// Feed appends a copy of chunk to the session input.
func (p *Parser) Feed(chunk []byte) error {
	if err := p.checkOpen(); err != nil {
		return err
	}
	p.buf.Write(chunk)
	return nil
}

// Finish parses everything fed so far and returns the document. It can be
// called once; the session accepts no more input afterwards. Malformed
// markup is never an error: every input yields a document.
func (p *Parser) Finish() (doc *Document, err error) {
	if err := p.checkOpen(); err != nil {
		return nil, err
	}
	p.state = stateFinished

	// The document outlives the session buffer.
	source := bytes.Clone(pipeline.Preprocess(p.buf.Bytes(), p.cfg.Options.Has(OptValidateUTF8)))
	p.buf = bytes.Buffer{}

	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("%w: %v", ErrParse, r)
		}
	}()
	return &Document{root: p.parser.Parse(source), source: source}, nil
}

// Close releases the session. It is safe to call more than once and after
// Finish.
func (p *Parser) Close() {
	p.state = stateClosed
	p.buf = bytes.Buffer{}
	p.parser = nil
}

func (p *Parser) checkOpen() error {
	switch p.state {
	case stateFinished:
		return ErrParserFinished
	case stateClosed:
		return ErrParserClosed
	}
	return nil
}
