package cli

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// AddCmd returns the add command.
func AddCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("add", flag.ContinueOnError),
		Usage: "add",
		Short: "Add an activity, answering one prompt per field",
		Long: `Add an activity. Each field is asked for in turn and asked again
until the answer is valid. Ctrl-C or end of input cancels without
adding anything.

Dates accept 2006-01-02, 2006-01-02 15:04 or RFC 3339.`,
		Exec: execAdd,
	}
}

func execAdd(in *Interpreter, activities []activity.Activity, _ []string) ([]activity.Activity, error) {
	a, err := promptActivity(in)
	if err != nil {
		return activities, err
	}

	in.io.Printf("Added %s.\n", a.Name)

	return activity.Append(activities, a), nil
}

func promptActivity(in *Interpreter) (activity.Activity, error) {
	o, p := in.io, in.prompter

	name, err := collect(o, p, "Activity name", parseName)
	if err != nil {
		return activity.Activity{}, err
	}

	importance, err := collect(o, p, "Importance 0 - 100", activity.ParseImportance)
	if err != nil {
		return activity.Activity{}, err
	}

	effort, err := collect(o, p, fmt.Sprintf("Effort 0 - %d", activity.MaxEffort), activity.ParseEffort)
	if err != nil {
		return activity.Activity{}, err
	}

	pleasure, err := collect(o, p, "Pleasure -100 - 100", activity.ParsePleasure)
	if err != nil {
		return activity.Activity{}, err
	}

	interval, err := collect(o, p, `Urgency dates ("start->due")`, func(s string) (activity.Delta[time.Time], error) {
		return activity.ParseInterval(s, in.loc)
	})
	if err != nil {
		return activity.Activity{}, err
	}

	urgency, err := collect(o, p, `Urgency change ("initial->final")`, activity.ParseUrgencyDelta)
	if err != nil {
		return activity.Activity{}, err
	}

	descriptor := activity.UrgencyDescriptor{Interval: interval, Urgency: urgency}

	return activity.New(name, descriptor, importance, effort, pleasure), nil
}

func parseName(s string) (string, error) {
	s = activity.NormalizeName(s)
	if s == "" {
		return "", activity.ErrNameRequired
	}

	return s, nil
}
