package main

import (
	"errors"
	"os"

	mdconv "github.com/alnah/go-mdconv"
	"github.com/alnah/go-mdconv/internal/config"
)

// Exit codes for the mdconv CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Unreadable input, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, mdconv.ErrUnknownFormat) ||
		errors.Is(err, mdconv.ErrUnknownOption) ||
		errors.Is(err, mdconv.ErrInvalidWidth) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdconv.ErrReadInput) ||
		errors.Is(err, mdconv.ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
