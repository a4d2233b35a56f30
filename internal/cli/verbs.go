package cli

import (
	"fmt"
	"strings"
)

// Verbs understood by the interpreter, in help order.
const (
	VerbView   = "view"
	VerbList   = "list"
	VerbEdit   = "edit"
	VerbDelete = "delete"
	VerbAdd    = "add"
	VerbReport = "report"
	VerbHelp   = "help"
	VerbClear  = "clear"
	VerbQuit   = "quit"
)

// Verbs lists every verb in help order.
var Verbs = []string{VerbView, VerbList, VerbEdit, VerbDelete, VerbAdd, VerbReport, VerbHelp, VerbClear, VerbQuit}

// aliases maps extra spellings onto verbs.
var aliases = map[string]string{
	"exit": VerbQuit,
	"?":    VerbHelp,
}

// ResolveVerb maps user input to a verb. Matching is case-insensitive and
// any unique prefix of a verb selects it, so "v" is view and "del" is delete.
func ResolveVerb(input string) (string, error) {
	word := strings.ToLower(strings.TrimSpace(input))
	if word == "" {
		return "", ErrUnknownCommand
	}

	if verb, ok := aliases[word]; ok {
		return verb, nil
	}

	var matches []string

	for _, verb := range Verbs {
		if verb == word {
			return verb, nil
		}

		if strings.HasPrefix(verb, word) {
			matches = append(matches, verb)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s (type 'help' for commands)", ErrUnknownCommand, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %s", ErrAmbiguousVerb, input, strings.Join(matches, ", "))
	}
}
