package pipeline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ParserOptions selects parse-time behaviour.
type ParserOptions struct {
	Smart bool // typographic quotes, dashes and ellipses
}

// smartSubstitutions replaces goldmark's default HTML entities with the
// characters themselves so that every renderer sees plain text.
// Angle quotes are disabled: only quotes, dashes and ellipses are smart.
var smartSubstitutions = map[extension.TypographicPunctuation][]byte{
	extension.LeftSingleQuote:  []byte("\u2018"),
	extension.RightSingleQuote: []byte("\u2019"),
	extension.LeftDoubleQuote:  []byte("\u201C"),
	extension.RightDoubleQuote: []byte("\u201D"),
	extension.EnDash:           []byte("\u2013"),
	extension.EmDash:           []byte("\u2014"),
	extension.Ellipsis:         []byte("\u2026"),
	extension.Apostrophe:       []byte("\u2019"),
	extension.LeftAngleQuote:   nil,
	extension.RightAngleQuote:  nil,
}

// GoldmarkParser parses CommonMark into a goldmark AST.
type GoldmarkParser struct {
	p parser.Parser
}

// NewGoldmarkParser creates a CommonMark parser.
// No GFM extensions are enabled: tables, strikethrough and autolink
// literals are plain text.
func NewGoldmarkParser(opts ParserOptions) *GoldmarkParser {
	var exts []goldmark.Extender
	if opts.Smart {
		exts = append(exts, extension.NewTypographer(
			extension.WithTypographicSubstitutions(smartSubstitutions),
		))
	}
	md := goldmark.New(goldmark.WithExtensions(exts...))
	return &GoldmarkParser{p: md.Parser()}
}

// Parse parses source into a document node. Parsing is total: every input,
// including empty input, yields a document.
func (g *GoldmarkParser) Parse(source []byte) ast.Node {
	return g.p.Parse(text.NewReader(source))
}
