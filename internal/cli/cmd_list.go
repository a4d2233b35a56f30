package cli

import (
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// ListCmd returns the list command.
func ListCmd() *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.IntP("limit", "n", 0, "Show at most `N` activities (0 = all)")

	return &Command{
		Flags: fs,
		Usage: "list [priority|value|margin|fun]",
		Short: "List activities sorted by a metric",
		Long: `List every activity sorted by one metric:

  priority  urgency and importance against the time left (default)
  value     importance per unit of effort
  margin    days of slack before the deadline, tightest first
  fun       pleasure per unit of effort`,
		Exec: func(in *Interpreter, activities []activity.Activity, args []string) ([]activity.Activity, error) {
			limit, _ := fs.GetInt("limit")
			return execList(in, activities, args, limit)
		},
	}
}

func execList(in *Interpreter, activities []activity.Activity, args []string, limit int) ([]activity.Activity, error) {
	variant := ""
	if len(args) > 0 {
		variant = args[0]
	}

	order, err := activity.ParseOrder(variant)
	if err != nil {
		return activities, err
	}

	ranked := in.rank(activities, order)
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	in.io.Printf("%s", in.render.Listing(order, ranked))

	return activities, nil
}
