package cli

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// DeleteCmd returns the delete command.
func DeleteCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("delete", flag.ContinueOnError),
		Usage: "delete <name>",
		Short: "Delete activities by full name",
		Long: `Delete every activity whose name equals <name>, ignoring case.
Unlike view and edit, a prefix is not enough.`,
		Exec: execDelete,
	}
}

func execDelete(in *Interpreter, activities []activity.Activity, args []string) ([]activity.Activity, error) {
	name := strings.Join(args, " ")
	if name == "" {
		return activities, activity.ErrNameRequired
	}

	kept, removed := activity.DeleteByName(activities, name)
	if removed == 0 {
		return activities, fmt.Errorf("%w: %q", activity.ErrNotFound, name)
	}

	if removed == 1 {
		in.io.Println("Deleted 1 activity.")
	} else {
		in.io.Printf("Deleted %d activities.\n", removed)
	}

	return kept, nil
}
