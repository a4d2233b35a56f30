package cli

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// minEditArgs is name, field and at least one word of value.
const minEditArgs = 3

// EditCmd returns the edit command.
func EditCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("edit", flag.ContinueOnError),
		Usage: "edit <name> <field> <value>",
		Short: "Change one field of an activity",
		Long: `Change one field of the activity whose name starts with <name>.
Everything after <field> is the new value, so names may contain spaces.
Without arguments the editable fields are listed.

Pairs are written "start->end", e.g. "edit taxes urgency 20->90" or
"edit taxes urgency-dates 2024-03-01->2024-04-15".`,
		Exec: execEdit,
	}
}

func execEdit(in *Interpreter, activities []activity.Activity, args []string) ([]activity.Activity, error) {
	if len(args) == 0 {
		printFields(in)
		return activities, nil
	}

	if len(args) < minEditArgs {
		return activities, fmt.Errorf("%w: edit <name> <field> <value>", ErrUsage)
	}

	i, err := activity.FindByPrefix(activities, args[0])
	if err != nil {
		return activities, err
	}

	field, err := activity.LookupField(in.fields, strings.ToLower(args[1]))
	if err != nil {
		return activities, err
	}

	edited, err := field.Apply(activities[i], strings.Join(args[2:], " "))
	if err != nil {
		return activities, fmt.Errorf("%s: %w", field.Name, err)
	}

	in.io.Printf("%s", in.render.Activity(edited, in.score(edited)))

	return activity.Replace(activities, i, edited), nil
}

func printFields(in *Interpreter) {
	width := 0
	for _, f := range in.fields {
		width = max(width, len(f.Name))
	}

	in.io.Println("Editable fields:")

	for _, f := range in.fields {
		in.io.Printf("  %-*s  %s\n", width, f.Name, f.Usage)
	}
}
