package cli

import (
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// Report thresholds.
const (
	highPriority = 2.0  // priority summary above this is reported
	highValue    = 10.0 // value for effort above this is reported
	almostDue    = 2.0  // margin below this is reported
)

// ReportCmd returns the report command.
func ReportCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("report", flag.ContinueOnError),
		Usage: "report",
		Short: "Point out what needs attention",
		Long: `Point out at most three activities:

  the highest priority one, if its priority is above 2
  the best value for effort, if above 10
  the one with the least time margin, if below 2 days of slack

Sections without such an activity are left out.`,
		Exec: execReport,
	}
}

func execReport(in *Interpreter, activities []activity.Activity, _ []string) ([]activity.Activity, error) {
	if len(activities) == 0 {
		in.io.Println("Nothing to report.")
		return activities, nil
	}

	reported := false

	top := in.rank(activities, activity.OrderPriority)[0]
	if top.Score.PrioritySummary > highPriority {
		style := in.render.priorityStyle(top.Score.PrioritySummary)
		in.io.Println(style.Render("High priority: " + top.Activity.Name + " (" + formatMetric(top.Score.PrioritySummary) + ")"))

		reported = true
	}

	best := in.rank(activities, activity.OrderValue)[0]
	if best.Score.ValueForEffort > highValue {
		style := in.render.valueStyle(best.Score.ValueForEffort)
		in.io.Println(style.Render("High value: " + best.Activity.Name + " (" + formatMetric(best.Score.ValueForEffort) + ")"))

		reported = true
	}

	tightest := in.rank(activities, activity.OrderMargin)[0]
	if tightest.Score.Margin < almostDue {
		style := in.render.marginStyle(tightest.Score.Margin)
		in.io.Println(style.Render("Almost due: " + tightest.Activity.Name +
			" (margin " + formatMetric(tightest.Score.Margin) + ", " + dueIn(tightest.Score.DaysUntilDue) + ")"))

		reported = true
	}

	if !reported {
		in.io.Println("Nothing to report.")
	}

	return activities, nil
}

func dueIn(days int) string {
	switch days {
	case 0:
		return "due now"
	case 1:
		return "due in 1 day"
	default:
		return "due in " + strconv.Itoa(days) + " days"
	}
}
