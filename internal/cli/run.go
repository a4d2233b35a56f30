package cli

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/lifespace/internal/activity"
	"github.com/calvinalkan/lifespace/internal/config"
	"github.com/calvinalkan/lifespace/internal/fs"
	"github.com/calvinalkan/lifespace/internal/store"
)

// globalFlags holds the parsed global options.
type globalFlags struct {
	set         *flag.FlagSet
	workDir     string
	configPath  string
	dataFile    string
	noColor     bool
	printConfig bool
	help        bool
}

func newGlobalFlags() *globalFlags {
	g := &globalFlags{set: flag.NewFlagSet("lifespace", flag.ContinueOnError)}

	g.set.SetOutput(&strings.Builder{}) // discard pflag output
	g.set.SetInterspersed(false)
	g.set.StringVarP(&g.workDir, "cwd", "C", "", "Run as if started in `dir`")
	g.set.StringVarP(&g.configPath, "config", "c", "", "Use specified config `file`")
	g.set.StringVarP(&g.dataFile, "file", "f", "", "Use activities `file` instead of the configured one")
	g.set.BoolVar(&g.noColor, "no-color", false, "Disable colored output")
	g.set.BoolVar(&g.printConfig, "print-config", false, "Show resolved configuration and exit")
	g.set.BoolVarP(&g.help, "help", "h", false, "Show help")

	return g
}

// Run is the main entry point. Returns exit code.
//
// Without a command the interactive loop starts; otherwise the single
// command in args runs and the collection is saved.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	if len(args) == 0 {
		args = []string{"lifespace"}
	}

	flags := newGlobalFlags()

	err := flags.set.Parse(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, flags.set)

		return 1
	}

	if flags.help {
		printUsage(out, flags.set)

		return 0
	}

	cfg, err := config.Load(config.Input{
		WorkDir:          flags.workDir,
		ConfigPath:       flags.configPath,
		DataFileOverride: flags.dataFile,
		NoColor:          flags.noColor,
		Env:              env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if flags.printConfig {
		printConfig(out, cfg)

		return 0
	}

	o := NewIO(out, errOut)
	fsys := fs.NewReal()

	st, created, err := store.Open(fsys, cfg.DataFile)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if created {
		o.Warn("created empty activities file "+st.Path(), "add activities with 'add'")
	}

	activities, err := st.Load()
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if in == nil {
		in = strings.NewReader("")
	}

	opts := Options{Curve: cfg.Curve(), Color: cfg.Color}
	rest := flags.set.Args()

	// One-shot mode
	if len(rest) > 0 {
		interp := NewInterpreter(o, NewLineReader(in, out), opts)

		res, err := interp.Handle(activities, rest[0], rest[1:])
		if err != nil {
			o.Finish()
			fprintln(errOut, "error:", err)

			return 1
		}

		err = st.Save(res.Activities)
		if err != nil {
			o.Finish()
			fprintln(errOut, "error:", err)

			return 1
		}

		o.Finish()

		return 0
	}

	return runInteractive(in, o, opts, st, activities, cfg.HistoryFile)
}

func runInteractive(in io.Reader, o *IO, opts Options, st *store.Store, activities []activity.Activity, historyPath string) int {
	var input Prompter

	if isTerminalInput(in) {
		term := NewTerminal(fs.NewReal(), historyPath)

		defer func() {
			closeErr := term.Close()
			if closeErr != nil {
				o.Warn(closeErr.Error(), "check history_file in your config")
			}

			o.Finish()
		}()

		input = term
	} else {
		input = NewLineReader(in, o.Out())

		defer o.Finish()
	}

	o.Printf("lifespace: %d activities in %s. Type 'help' for commands.\n", len(activities), st.Path())

	interp := NewInterpreter(o, input, opts)

	err := NewSession(o, input, interp, st).Run(activities)
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}

func printConfig(out io.Writer, cfg config.Config) {
	fprintln(out, config.Format(cfg))
	fprintln(out)
	fprintln(out, "# Sources:")

	if cfg.Sources.Global != "" {
		fprintln(out, "#   global:", cfg.Sources.Global)
	}

	if cfg.Sources.Explicit != "" {
		fprintln(out, "#   explicit:", cfg.Sources.Explicit)
	}

	if cfg.Sources.Env {
		fprintln(out, "#   env:", config.EnvDataFile)
	}

	if cfg.Sources.Global == "" && cfg.Sources.Explicit == "" && !cfg.Sources.Env {
		fprintln(out, "#   (using defaults only)")
	}
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, set *flag.FlagSet) {
	fprintln(w, `lifespace - decide what to work on next

Usage: lifespace [flags] [command [args]]

Without a command, commands are read interactively until 'quit'.

Global flags:`)

	var buf strings.Builder
	set.SetOutput(&buf)
	set.PrintDefaults()
	set.SetOutput(&strings.Builder{})
	fprintln(w, strings.TrimRight(buf.String(), "\n"))

	fprintln(w)
	fprintln(w, "Commands:")

	cmds := commands()
	for _, verb := range Verbs {
		fprintln(w, cmds[verb].HelpLine())
	}
}
