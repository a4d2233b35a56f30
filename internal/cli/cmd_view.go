package cli

import (
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// ViewCmd returns the view command.
func ViewCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("view", flag.ContinueOnError),
		Usage: "view [name]",
		Short: "Show one activity, or all of them by priority",
		Long: `Show the details of the activity whose name starts with [name]
(case-insensitive). The prefix must match exactly one activity.
Without a name every activity is shown, highest priority first.`,
		Exec: execView,
	}
}

func execView(in *Interpreter, activities []activity.Activity, args []string) ([]activity.Activity, error) {
	if len(args) == 0 {
		for i, r := range in.rank(activities, activity.OrderPriority) {
			if i > 0 {
				in.io.Println()
			}

			in.io.Printf("%s", in.render.Activity(r.Activity, r.Score))
		}

		return activities, nil
	}

	i, err := activity.FindByPrefix(activities, strings.Join(args, " "))
	if err != nil {
		return activities, err
	}

	a := activities[i]
	in.io.Printf("%s", in.render.Activity(a, in.score(a)))

	return activities, nil
}
