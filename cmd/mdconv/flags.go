package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that control the run rather than the output.
type commonFlags struct {
	config  string
	verbose bool
	help    bool
	version bool
}

// renderFlags holds one flag per render option.
type renderFlags struct {
	sourcePos    bool
	hardBreaks   bool
	noBreaks     bool
	unsafe       bool
	smart        bool
	validateUTF8 bool
	highlight    bool
}

// cliFlags holds every flag of the command.
type cliFlags struct {
	common commonFlags
	format string
	width  int
	text   string
	render renderFlags

	// changed records which flags were given explicitly.
	changed map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log pipeline stages to stderr")
	fs.BoolVarP(&f.help, "help", "h", false, "print usage information")
	fs.BoolVar(&f.version, "version", false, "print version")
}

// addRenderFlags adds the render option flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.BoolVar(&f.sourcePos, "sourcepos", false, "include source position attribute")
	fs.BoolVar(&f.hardBreaks, "hardbreaks", false, "treat newlines as hard line breaks")
	fs.BoolVar(&f.noBreaks, "nobreaks", false, "render soft line breaks as spaces")
	fs.BoolVar(&f.unsafe, "unsafe", false, "render raw HTML and dangerous URLs")
	fs.BoolVar(&f.smart, "smart", false, "use smart punctuation")
	fs.BoolVar(&f.validateUTF8, "validate-utf8", false, "replace invalid UTF-8 sequences with U+FFFD")
	fs.BoolVar(&f.highlight, "highlight", false, "syntax-highlight fenced code (html only)")
}

// parseFlags parses the command line (args[0] is the program name) and
// returns the positional input paths.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdconv", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	f := &cliFlags{changed: make(map[string]bool)}

	fs.StringVarP(&f.format, "to", "t", "html", "output format")
	fs.IntVar(&f.width, "width", 0, "wrap width (0 = no wrap)")
	fs.StringVarP(&f.text, "string", "s", "", "convert this text instead of reading input")
	addRenderFlags(fs, &f.render)
	addCommonFlags(fs, &f.common)

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, fs.Args(), nil
}
