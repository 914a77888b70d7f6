// Package pipeline implements the parse stage of the conversion pipeline.
//
// This package handles the steps between raw input bytes and the goldmark
// document tree:
//   - Input preprocessing (NUL replacement, optional UTF-8 validation)
//   - Goldmark parser construction (CommonMark, optional typographer)
//   - Source position lookup for rendered nodes
//
// Rendering is handled separately by internal/render. This separation keeps
// the pipeline focused on producing one tree, while each renderer only has
// to walk it.
package pipeline
