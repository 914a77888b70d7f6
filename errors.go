package mdconv

import "errors"

// Sentinel errors for library operations.
var (
	// Configuration errors.
	ErrUnknownFormat = errors.New("unknown output format")
	ErrUnknownOption = errors.New("unknown render option")
	ErrInvalidWidth  = errors.New("invalid wrap width")

	// Parser session errors.
	ErrParserFinished = errors.New("parser session already finished")
	ErrParserClosed   = errors.New("parser session closed")
	ErrParse          = errors.New("parsing failed")

	// Ownership errors.
	ErrDocumentReleased = errors.New("document already released")
	ErrOutputReleased   = errors.New("output already released")

	// Render and I/O errors.
	ErrRender      = errors.New("rendering failed")
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)
