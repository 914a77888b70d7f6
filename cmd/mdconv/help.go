package main

import (
	"fmt"
	"io"
	"strings"

	mdconv "github.com/alnah/go-mdconv"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdconv [flags] [FILE...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert CommonMark to another format. Files are concatenated into one")
	fmt.Fprintln(w, "document; with no FILE, or when FILE is -, standard input is read.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintf(w, "  -t, --to <format>     Output format (%s)\n", strings.Join(mdconv.Formats(), ", "))
	fmt.Fprintln(w, "      --width <n>       Wrap width for man, commonmark, latex (0 = no wrap)")
	fmt.Fprintln(w, "  -s, --string <text>   Convert text instead of reading input")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "      --sourcepos       Include source position attribute")
	fmt.Fprintln(w, "      --hardbreaks      Treat newlines as hard line breaks")
	fmt.Fprintln(w, "      --nobreaks        Render soft line breaks as spaces")
	fmt.Fprintln(w, "      --unsafe          Render raw HTML and dangerous URLs")
	fmt.Fprintln(w, "      --smart           Use smart punctuation")
	fmt.Fprintln(w, "      --validate-utf8   Replace invalid UTF-8 sequences with U+FFFD")
	fmt.Fprintln(w, "      --highlight       Syntax-highlight fenced code (html only)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -v, --verbose         Log pipeline stages to stderr")
	fmt.Fprintln(w, "  -h, --help            Print usage information")
	fmt.Fprintln(w, "      --version         Print version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDCONV_CONFIG         Config file name or path (like --config)")
	fmt.Fprintln(w, "  MDCONV_FORMAT         Output format")
	fmt.Fprintln(w, "  MDCONV_WIDTH          Wrap width")
	fmt.Fprintln(w, "  MDCONV_OPTIONS        Comma-separated options, e.g. smart,unsafe")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings are applied in order: defaults, config file, environment, flags.")
	fmt.Fprintln(w, "When both --hardbreaks and --nobreaks are given, --hardbreaks wins.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  general error")
	fmt.Fprintln(w, "  2  usage error (flags, format, width, config)")
	fmt.Fprintln(w, "  3  I/O error (unreadable input, unwritable output)")
}

// printVersion prints the program version.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "mdconv %s\n", Version)
}
