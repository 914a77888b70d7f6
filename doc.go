// Package mdconv converts CommonMark documents to HTML, CommonMark XML,
// groff man pages, normalized CommonMark and LaTeX.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := mdconv.NewConverter(mdconv.WithFormat(mdconv.FormatMan))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := conv.Convert(ctx, []byte("# Hello\n\nWorld"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer out.Release()
//	out.WriteTo(os.Stdout)
//
// # Conversion Pipeline
//
// A conversion is a sequence of owned stages:
//
//  1. Input is fed to a Parser session, in any number of chunks
//  2. Parser.Finish preprocesses the input (NUL bytes, optional UTF-8
//     validation) and parses it into one Document
//  3. Render selects exactly one renderer for the configured Format
//  4. The Output is written unchanged and released
//
// Parsing never fails on malformed markup: every input, including empty
// input, yields a document.
//
// # Configuration
//
// A Config holds the Format, the Options bitset and the wrap Width. It is
// copied when a session starts and cannot change afterwards:
//
//	cfg := mdconv.Config{
//	    Format:  mdconv.FormatCommonMark,
//	    Options: mdconv.OptSmart | mdconv.OptHardBreaks,
//	    Width:   72,
//	}
//
// Width applies to the man, CommonMark and LaTeX renderers; 0 disables
// wrapping. When both OptHardBreaks and OptNoBreaks are set, hard breaks
// win.
//
// # Logging
//
// The package logs pipeline stages at debug level through a zap logger.
// It is silent unless SetLogger installs a logger.
package mdconv
