package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// RenderHelp produces the help text for arg: an empty arg produces the
// full listing; a known command or alias name produces its own help
// text; anything else produces the "not found" message.
func RenderHelp(reg *Registry, arg string) string {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return renderFullListing(reg)
	}
	if target, isAlias := reg.ResolveAlias(arg); isAlias {
		return fmt.Sprintf("%s is an alias for %s\n\n%s", arg, target, renderKnownCommand(reg, target))
	}
	if d, err := reg.Lookup(arg); err == nil {
		return renderDescriptorHelp(d)
	}
	return fmt.Sprintf("No command found with this name: %s", arg)
}

func renderKnownCommand(reg *Registry, name string) string {
	d, err := reg.Lookup(name)
	if err != nil {
		return fmt.Sprintf("No command found with this name: %s", name)
	}
	return renderDescriptorHelp(d)
}

func renderDescriptorHelp(d Descriptor) string {
	return fmt.Sprintf("%s - %s\n\n%s", d.Name(), d.Info(), d.Help())
}

func renderFullListing(reg *Registry) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, d := range reg.All() {
		fmt.Fprintf(&b, "  %s - %s\n", d.Name(), d.Info())
	}

	aliases := reg.Aliases()
	if len(aliases) > 0 {
		b.WriteString("\nAliases:\n")
		names := make([]string, 0, len(aliases))
		for alias := range aliases {
			names = append(names, alias)
		}
		sort.Strings(names)
		for _, alias := range names {
			target := aliases[alias]
			fmt.Fprintf(&b, "  %s (%s) - %s\n", alias, target, aliasInfo(reg, target))
		}
	}

	b.WriteString("\nPlaceholders (usable as @NAME@):\n  ")
	b.WriteString(strings.Join(PlaceholderNames, ", "))
	b.WriteString("\n")

	b.WriteString("\nChain commands with '|' to build a pipeline; separate independent statements with ';'.\n")
	return b.String()
}

func aliasInfo(reg *Registry, target string) string {
	if d, err := reg.Lookup(target); err == nil {
		return d.Info()
	}
	return ""
}

// HelpSource returns a SourceFunc emitting RenderHelp(reg, arg) as the
// stream's single item, so help output flows through the same stream
// machinery as every other command's.
func HelpSource(reg *Registry, arg string) SourceFunc {
	return func(ctx context.Context) Stream {
		ch := make(chan Item, 1)
		ch <- Item{Value: RenderHelp(reg, arg)}
		close(ch)
		return ch
	}
}
