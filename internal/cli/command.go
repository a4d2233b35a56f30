package cli

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// Command defines an interpreter verb with unified help generation.
type Command struct {
	// Flags defines verb-specific flags. Flag parsing stops at the first
	// positional argument so values like "-40" reach Exec untouched.
	Flags *flag.FlagSet

	// Usage is the freeform usage string shown in help.
	// Includes the verb and its arguments.
	// Examples: "view [name]", "edit <name> <field> <value>"
	Usage string

	// Short is a one-line description for the help listing.
	Short string

	// Long is the full description shown by "<verb> --help".
	// If empty, Short is used instead.
	Long string

	// Exec runs the verb after flags are parsed. It returns the collection
	// to continue with; on error the caller keeps the previous one.
	Exec func(in *Interpreter, activities []activity.Activity, args []string) ([]activity.Activity, error)
}

// Name returns the verb (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine returns the short help line for the verb listing.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-34s %s", c.Usage, c.Short)
}

// PrintHelp prints the full help output for "<verb> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage:", c.Usage)
	o.Println()

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	o.Println(desc)

	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")

		var buf strings.Builder
		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()
		o.Printf("%s", buf.String())
	}
}

// Run parses flags and executes the verb.
func (c *Command) Run(in *Interpreter, activities []activity.Activity, args []string) ([]activity.Activity, error) {
	c.Flags.SetOutput(&strings.Builder{}) // discard pflag output
	c.Flags.SetInterspersed(false)

	err := c.Flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(in.io)
			return activities, nil
		}

		return activities, fmt.Errorf("%s: %w", c.Name(), err)
	}

	return c.Exec(in, activities, c.Flags.Args())
}
