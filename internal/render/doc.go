// Package render serializes a goldmark document tree into the output
// formats supported by mdconv:
//   - HTML via goldmark's HTML renderer, with break handling and source
//     positions added on top
//   - CommonMark XML
//   - roff man pages
//   - normalized CommonMark
//   - LaTeX
//
// Renderers never perform I/O; each returns a freshly allocated buffer.
// The man, CommonMark and LaTeX renderers wrap paragraph text at a column
// width (0 disables wrapping); headings and code are never wrapped.
package render
