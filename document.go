package mdconv

import "github.com/yuin/goldmark/ast"

// Document is a parsed document tree and the source it indexes.
// It is produced once by Parser.Finish and can be rendered until released.
type Document struct {
	root     ast.Node
	source   []byte
	released bool
}

// Root returns the goldmark root node, or nil after Release.
func (d *Document) Root() ast.Node {
	return d.root
}

// Source returns the preprocessed bytes the tree was parsed from.
func (d *Document) Source() []byte {
	return d.source
}

// Released reports whether Release was called.
func (d *Document) Released() bool {
	return d.released
}

// Release drops the tree and its source. Rendering a released document
// fails with ErrDocumentReleased. Release is safe to call more than once.
func (d *Document) Release() {
	d.root = nil
	d.source = nil
	d.released = true
}
