package cli

import (
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// HelpCmd returns the help command.
func HelpCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("help", flag.ContinueOnError),
		Usage: "help [command]",
		Short: "Show commands, or details for one",
		Exec:  execHelp,
	}
}

func execHelp(in *Interpreter, activities []activity.Activity, args []string) ([]activity.Activity, error) {
	cmds := commands()

	if len(args) > 0 {
		verb, err := ResolveVerb(args[0])
		if err != nil {
			return activities, err
		}

		cmds[verb].PrintHelp(in.io)

		return activities, nil
	}

	in.io.Println("Commands (any unique prefix works, e.g. 'l value'):")

	for _, verb := range Verbs {
		in.io.Println(cmds[verb].HelpLine())
	}

	return activities, nil
}

// ClearCmd returns the clear command.
func ClearCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("clear", flag.ContinueOnError),
		Usage: "clear",
		Short: "Clear the screen",
		Exec: func(in *Interpreter, activities []activity.Activity, _ []string) ([]activity.Activity, error) {
			in.io.Printf("%s", clearScreen)
			return activities, nil
		},
	}
}

// QuitCmd returns the quit command. Its Exec does nothing: [Interpreter.Handle]
// reports quit through [Result.Quit] without running it.
func QuitCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("quit", flag.ContinueOnError),
		Usage: "quit",
		Short: "Save and leave",
		Exec: func(_ *Interpreter, activities []activity.Activity, _ []string) ([]activity.Activity, error) {
			return activities, nil
		},
	}
}
