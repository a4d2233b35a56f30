package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/calvinalkan/lifespace/internal/activity"
)

const dateLayout = "2006-01-02"

// ANSI palette indexes.
const (
	colorRed    = "9"
	colorYellow = "3"
	colorGreen  = "10"
	colorBlue   = "12"
)

// Listing headings by order.
var headings = map[activity.Order]string{
	activity.OrderPriority: "Priority listing:",
	activity.OrderValue:    "Low-hanging-fruit listing:",
	activity.OrderMargin:   "Time-margin listing:",
	activity.OrderFun:      "Fun-for-effort listing:",
}

// Renderer formats activities and listings. Colors are dropped when
// disabled or when the output is not a terminal.
type Renderer struct {
	plain  lipgloss.Style
	red    lipgloss.Style
	yellow lipgloss.Style
	green  lipgloss.Style
	blue   lipgloss.Style
}

// NewRenderer creates a renderer for output written to w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lg := lipgloss.NewRenderer(w)

	fg := func(c string) lipgloss.Style {
		if !color {
			return lg.NewStyle()
		}

		return lg.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &Renderer{
		plain:  lg.NewStyle(),
		red:    fg(colorRed),
		yellow: fg(colorYellow),
		green:  fg(colorGreen),
		blue:   fg(colorBlue),
	}
}

// marginStyle is green above 4 days of slack, yellow above 3, red otherwise.
func (r *Renderer) marginStyle(margin float64) lipgloss.Style {
	switch {
	case margin > 4:
		return r.green
	case margin > 3:
		return r.yellow
	default:
		return r.red
	}
}

func (r *Renderer) priorityStyle(priority float64) lipgloss.Style {
	switch {
	case priority > 3:
		return r.red
	case priority > 2:
		return r.yellow
	default:
		return r.plain
	}
}

func (r *Renderer) valueStyle(value float64) lipgloss.Style {
	switch {
	case value > 20:
		return r.green
	case value > 10:
		return r.blue
	default:
		return r.plain
	}
}

func (r *Renderer) styleFor(o activity.Order, v float64) lipgloss.Style {
	switch o {
	case activity.OrderPriority:
		return r.priorityStyle(v)
	case activity.OrderValue:
		return r.valueStyle(v)
	case activity.OrderMargin:
		return r.marginStyle(v)
	default:
		return r.plain
	}
}

// Activity renders the detail view of a.
func (r *Renderer) Activity(a activity.Activity, s activity.Score) string {
	var b strings.Builder

	u := a.Urgency

	b.WriteString(a.Name + "\n")
	fmt.Fprintf(&b, "  Importance: %s\n", a.Importance)
	fmt.Fprintf(&b, "  Effort: %s\n", a.Effort)
	fmt.Fprintf(&b, "  Pleasure: %s\n", a.Pleasure)
	fmt.Fprintf(&b, "  Urgency: %s\n", s.Urgency)
	fmt.Fprintf(&b, "    %s -> %s\n", u.Urgency.Start, u.Urgency.End)
	fmt.Fprintf(&b, "    %s -> %s\n", u.Interval.Start.Format(dateLayout), u.Interval.End.Format(dateLayout))
	b.WriteString(r.marginStyle(s.Margin).Render("  Margin: "+formatMetric(s.Margin)) + "\n")
	b.WriteString(r.priorityStyle(s.PrioritySummary).Render("  Priority Summary: "+formatMetric(s.PrioritySummary)) + "\n")

	return b.String()
}

// Listing renders ranked as "name: metric" lines under the heading of o.
// Metric values are aligned in one column.
func (r *Renderer) Listing(o activity.Order, ranked []activity.Ranked) string {
	var b strings.Builder

	b.WriteString(headings[o] + "\n")

	width := 0
	for _, item := range ranked {
		width = max(width, runewidth.StringWidth(item.Activity.Name))
	}

	for _, item := range ranked {
		v := o.Metric(item.Score)
		label := runewidth.FillRight(item.Activity.Name+":", width+1)
		b.WriteString(r.styleFor(o, v).Render("  "+label+" "+formatMetric(v)) + "\n")
	}

	return b.String()
}

// formatMetric prints the shortest decimal form: 3, 5.5, 2.86.
func formatMetric(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
