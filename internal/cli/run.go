package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/filippov-code/jsonconsole/internal/config"
	"github.com/filippov-code/jsonconsole/internal/jsondb"
	"github.com/filippov-code/jsonconsole/internal/models"
	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"
)

type globalFlags struct {
	workDir    string
	configPath string
	file       string
	logLevel   string
	output     string
	help       bool
}

func globalFlagSet(g *globalFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("jsonconsole", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&g.workDir, "cwd", "C", "", "Run as if started in `dir`")
	fs.StringVar(&g.configPath, "config", "", "Use the config `file` instead of "+config.FileName)
	fs.StringVar(&g.file, "file", "", "Employee store `path` (default employees.json)")
	fs.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default warn)")
	fs.StringVar(&g.output, "output", "", "Output format: text, json, yaml (default text)")
	fs.BoolVar(&g.help, "help", false, "Show help")
	return fs
}

// Run is the main entry point. Returns exit code.
//
// args includes the program name. color enables highlighted errors and
// colored logs on errOut.
func Run(out, errOut io.Writer, color bool, args []string, env map[string]string) int {
	o := NewIO(out, errOut, color)
	if len(args) < 2 {
		o.Println(greeting)
		return 0
	}

	var g globalFlags
	fs := globalFlagSet(&g)
	globals, rest := splitGlobalArgs(fs, args[1:])
	if err := fs.Parse(globals); err != nil {
		o.Fail(fmt.Errorf("error: %w", err))
		o.ErrPrintln()
		printUsage(errOut)
		return 1
	}
	if g.help {
		printUsage(out)
		return 0
	}
	if len(rest) == 0 {
		o.Println(greeting)
		return 0
	}

	cfg, err := config.Load(config.Input{
		WorkDir:    g.workDir,
		ConfigPath: g.configPath,
		Overrides:  config.Config{File: g.file, LogLevel: g.logLevel, Output: g.output},
		Env:        env,
	})
	if err != nil {
		o.Fail(fmt.Errorf("error: %w", err))
		return 1
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(newLogger(errOut, level, color))
	slog.Debug("config resolved", "file", cfg.FileAbs, "source", cfg.Source, "output", cfg.Output)

	if err := dispatch(o, cfg, rest); err != nil {
		o.Fail(err)
		return 1
	}
	return 0
}

// dispatch parses the command and its parameters, opens the store when
// needed and runs the command.
func dispatch(o *IO, cfg config.Config, args []string) error {
	c := lookupCommand(args[0])
	if c == nil {
		return unknownCommand(args[0])
	}
	p, err := parseParams(args[1:])
	if err != nil {
		return err
	}
	if c.name == "help" {
		printUsage(o.out)
		return nil
	}

	e := &cmdEnv{io: o, output: cfg.Output}
	if !c.noStore {
		store, err := jsondb.Open[*models.Employee](cfg.FileAbs)
		if err != nil {
			if errors.Is(err, jsondb.ErrMalformedStore) {
				return fmt.Errorf("cannot load %s: %w", cfg.FileAbs, err)
			}
			return err
		}
		e.store = store
	}
	slog.Debug("running command", "command", c.name, "params", len(p))
	return c.exec(e, p)
}

// splitGlobalArgs separates leading global flags from the command and its
// parameters. Commands are written like "-add", so only long flags and -C are
// treated as global flags.
func splitGlobalArgs(fs *flag.FlagSet, args []string) ([]string, []string) {
	i := 0
	for i < len(args) {
		arg := args[i]
		var name string
		hasValue := false
		switch {
		case arg == "--":
			return args[:i], args[i+1:]
		case strings.HasPrefix(arg, "--") && lookupCommand(arg) == nil:
			name, _, hasValue = strings.Cut(arg[2:], "=")
		case arg == "-C":
			name = "cwd"
		case strings.HasPrefix(arg, "-C") && lookupCommand(arg) == nil:
			name, hasValue = "cwd", true
		default:
			return args[:i], args[i:]
		}
		i++
		if f := fs.Lookup(name); f != nil && !hasValue && f.NoOptDefVal == "" && i < len(args) {
			i++
		}
	}
	return args, nil
}

func newLogger(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:    !color,
	}))
}
