package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mdconv "github.com/alnah/go-mdconv"
	"github.com/alnah/go-mdconv/internal/config"
	"github.com/alnah/go-mdconv/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("usage error")
	ErrStringAndFiles = errors.New("--string cannot be combined with input files")
)

// runMain runs the command and returns the process exit code. Errors go to
// stderr only; stdout receives output only on success.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	flags, err := run(ctx, args, env)
	if err != nil {
		configName := ""
		if flags != nil {
			configName = flags.common.config
		}
		fmt.Fprintf(env.Stderr, "mdconv: %v%s\n", err, hintFor(err, configName))
	}
	return exitCodeFor(err)
}

// run parses the command line and performs one conversion. It returns the
// parsed flags, when parsing succeeded, for error reporting.
func run(ctx context.Context, args []string, env *Environment) (*cliFlags, error) {
	flags, paths, err := parseFlags(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if flags.common.help {
		printUsage(env.Stdout)
		return flags, nil
	}
	if flags.common.version {
		printVersion(env.Stdout)
		return flags, nil
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)
	if flags.common.config == "" {
		flags.common.config = envCfg.ConfigPath
	}

	// Every usage error is reported before input is read.
	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return flags, err
	}
	if flags.changed["string"] && len(paths) > 0 {
		return flags, fmt.Errorf("%w: %w", ErrUsage, ErrStringAndFiles)
	}

	log := zap.NewNop()
	if flags.common.verbose {
		log = newLogger(env.Stderr)
	}
	defer func() { _ = log.Sync() }()

	conv, err := mdconv.NewConverter(mdconv.WithConfig(cfg), mdconv.WithLogger(log))
	if err != nil {
		return flags, err
	}

	var source []byte
	if flags.changed["string"] {
		source = []byte(flags.text)
	} else {
		source, err = mdconv.ReadInputs(paths, env.Stdin)
		if err != nil {
			return flags, err
		}
	}
	log.Debug("read input", zap.Int("bytes", len(source)), zap.Int("files", len(paths)))

	w := bufio.NewWriter(env.Stdout)
	if err := conv.ConvertTo(ctx, w, source); err != nil {
		return flags, err
	}
	if err := w.Flush(); err != nil {
		return flags, fmt.Errorf("%w: %w", mdconv.ErrWriteOutput, err)
	}
	return flags, nil
}

// resolveConfig builds the conversion config: defaults, then the config
// file, then environment variables, then flags given on the command line.
func resolveConfig(flags *cliFlags, envCfg *envConfig) (mdconv.Config, error) {
	cfg := mdconv.DefaultConfig()

	if flags.common.config != "" {
		fileCfg, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return cfg, fmt.Errorf("loading config: %w", err)
		}
		if cfg, err = fileCfg.Apply(cfg); err != nil {
			return cfg, fmt.Errorf("loading config: %w", err)
		}
	}

	if err := applyEnvConfig(envCfg, &cfg); err != nil {
		return cfg, err
	}
	if err := mergeFlags(flags, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// mergeFlags applies explicitly given flags onto cfg (CLI wins). Option
// flags only ever add options.
func mergeFlags(flags *cliFlags, cfg *mdconv.Config) error {
	if flags.changed["to"] {
		f, err := mdconv.ParseFormat(flags.format)
		if err != nil {
			return err
		}
		cfg.Format = f
	}
	if flags.changed["width"] {
		cfg.Width = flags.width
	}

	r := flags.render
	for _, o := range []struct {
		set bool
		opt mdconv.Options
	}{
		{r.sourcePos, mdconv.OptSourcePos},
		{r.hardBreaks, mdconv.OptHardBreaks},
		{r.noBreaks, mdconv.OptNoBreaks},
		{r.unsafe, mdconv.OptUnsafe},
		{r.smart, mdconv.OptSmart},
		{r.validateUTF8, mdconv.OptValidateUTF8},
	} {
		if o.set {
			cfg.Options |= o.opt
		}
	}
	if r.highlight {
		cfg.Highlight = true
	}
	return nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, mdconv.ErrUnknownFormat):
		return hints.ForUnknownFormat(mdconv.Formats())
	case errors.Is(err, mdconv.ErrUnknownOption):
		return hints.ForUnknownOption(mdconv.OptionNames())
	case errors.Is(err, mdconv.ErrInvalidWidth):
		return hints.ForInvalidWidth()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	}
	return ""
}

// newLogger returns a console logger writing debug entries to w.
func newLogger(w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core).Named("mdconv")
}
