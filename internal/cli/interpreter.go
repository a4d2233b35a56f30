package cli

import (
	"time"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// Options configures an [Interpreter]. Zero fields get defaults.
type Options struct {
	Now      func() time.Time      // clock; time.Now if nil
	Location *time.Location        // zone for dates without offset; time.Local if nil
	Curve    activity.UrgencyCurve // activity.LinearCurve if nil
	Color    bool
}

// Result is the outcome of one handled command.
type Result struct {
	Activities []activity.Activity
	Quit       bool
}

// Interpreter executes verbs against an activity collection. It holds no
// collection itself: each call takes one and returns the next.
type Interpreter struct {
	io       *IO
	prompter Prompter
	scorer   activity.Scorer
	now      func() time.Time
	loc      *time.Location
	fields   []activity.Field
	render   *Renderer
}

// NewInterpreter creates an interpreter writing to o and reading add-flow
// answers from p.
func NewInterpreter(o *IO, p Prompter, opts Options) *Interpreter {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	return &Interpreter{
		io:       o,
		prompter: p,
		scorer:   activity.Scorer{Curve: opts.Curve},
		now:      now,
		loc:      loc,
		fields:   activity.Fields(loc),
		render:   NewRenderer(o.Out(), opts.Color),
	}
}

// commands returns a fresh verb table. Commands carry parsed flag state,
// so every call gets its own.
func commands() map[string]*Command {
	cmds := map[string]*Command{}

	for _, c := range []*Command{
		ViewCmd(),
		ListCmd(),
		EditCmd(),
		DeleteCmd(),
		AddCmd(),
		ReportCmd(),
		HelpCmd(),
		ClearCmd(),
		QuitCmd(),
	} {
		cmds[c.Name()] = c
	}

	return cmds
}

// Handle runs verb with args. verb must be a resolved verb (see
// [ResolveVerb]). On error the returned result carries the unchanged
// collection and the error is meant to be shown to the user.
func (in *Interpreter) Handle(activities []activity.Activity, verb string, args []string) (Result, error) {
	resolved, err := ResolveVerb(verb)
	if err != nil {
		return Result{Activities: activities}, err
	}

	if resolved == VerbQuit {
		return Result{Activities: activities, Quit: true}, nil
	}

	next, err := commands()[resolved].Run(in, activities, args)
	if err != nil {
		return Result{Activities: activities}, err
	}

	return Result{Activities: next}, nil
}

// score evaluates a at the interpreter's clock.
func (in *Interpreter) score(a activity.Activity) activity.Score {
	return in.scorer.Score(a, in.now())
}

func (in *Interpreter) rank(activities []activity.Activity, o activity.Order) []activity.Ranked {
	return in.scorer.Rank(activities, in.now(), o)
}
