// Package repl is the interactive front end over internal/cli's
// Evaluate/Execute: a go-prompt loop that reads a line, runs it through
// the evaluation core, and prints whatever its stream produces.
package repl

import (
	"context"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/graphshell/gsh/internal/cli"
	"github.com/graphshell/gsh/internal/command"
	"github.com/graphshell/gsh/internal/feedback"
)

var (
	livePrefix = "gsh> "
	registry   *cli.Registry
	baseEnv    = map[string]any{}
)

// executor runs one line of input through the evaluation core and prints
// its results.
func executor(in string) {
	in = strings.TrimSpace(in)
	if in == "" {
		return
	}
	switch strings.ToLower(in) {
	case "exit", "quit":
		feedback.Infof("Bye!")
		os.Exit(0)
		return
	}

	if in == "help" || strings.HasPrefix(in, "help ") {
		arg := strings.TrimSpace(strings.TrimPrefix(in, "help"))
		feedback.Infof("%s", cli.RenderHelp(registry, arg))
		return
	}

	ctx := context.Background()
	lines, err := cli.Evaluate(ctx, in, true, baseEnv, registry)
	if err != nil {
		feedback.Errorf("%v", err)
		return
	}

	for _, line := range lines {
		for item := range line.Stream {
			if item.Err != nil {
				feedback.Errorf("%v", item.Err)
				break
			}
			feedback.Infof("%v", item.Value)
		}
	}
}

func completer(d prompt.Document) []prompt.Suggest {
	suggestions := []prompt.Suggest{
		{Text: "help", Description: "Show help information"},
		{Text: "exit", Description: "Exit the shell"},
		{Text: "quit", Description: "Exit the shell"},
	}
	for _, desc := range registry.All() {
		suggestions = append(suggestions, prompt.Suggest{Text: desc.Name(), Description: desc.Info()})
	}
	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}

// Run starts the interactive REPL, wiring the default command set
// (internal/command) into a fresh Registry.
func Run() {
	registry = cli.NewRegistry(command.Descriptors(), command.Aliases())
	p := prompt.New(
		executor,
		completer,
		prompt.OptionTitle("gsh"),
		prompt.OptionPrefix(livePrefix),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSuggestionTextColor(prompt.White),
		prompt.OptionDescriptionBGColor(prompt.DarkGray),
		prompt.OptionDescriptionTextColor(prompt.White),
		prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
		prompt.OptionSelectedSuggestionTextColor(prompt.Black),
		prompt.OptionSelectedDescriptionBGColor(prompt.LightGray),
		prompt.OptionSelectedDescriptionTextColor(prompt.Black),
		prompt.OptionMaxSuggestion(15),
	)
	feedback.Infof("Welcome to gsh. Type 'help' for assistance or 'exit'/'quit' to quit.")
	p.Run()
}
