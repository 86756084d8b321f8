package cli

import (
	"context"
	"sort"

	"github.com/graphshell/gsh/internal/clierr"
)

// Role is a CommandDescriptor's position-typed category. The roles
// QueryAllPart through TailCommand are collectively QueryParts: head and
// tail fold into the query's limit window, so they coalesce exactly like
// the pure query roles.
type Role int

const (
	RoleQueryAllPart Role = iota
	RoleReportedPart
	RoleDesiredPart
	RoleMetadataPart
	RolePredecessor
	RoleSuccessor
	RoleAncestor
	RoleDescendant
	RoleAggregatePart
	RoleMergeAncestorsPart
	RoleCountCommand
	RoleHeadCommand
	RoleTailCommand
	RoleSource
	RoleTransform
	RoleInternal
)

// IsQueryPart reports whether the role participates in query coalescing.
func (r Role) IsQueryPart() bool { return r <= RoleTailCommand }

// Item is one value flowing through a composed stream.
type Item struct {
	Value any
	Err   error
}

// Stream is a channel of Items; a nil error with a closed channel marks
// normal end-of-stream.
type Stream = <-chan Item

// SourceFunc produces a stream given a context; it must be drainable
// exactly once.
type SourceFunc func(ctx context.Context) Stream

// TransformFunc maps an input stream to an output stream.
type TransformFunc func(ctx context.Context, in Stream) Stream

// Bound is what a descriptor's ParseArgs returns: exactly one of Source
// or Transform must be non-nil, matching the descriptor's Role.
type Bound struct {
	Source    SourceFunc
	Transform TransformFunc
}

// Descriptor is the registered contract of one command: its name, role,
// help text, produced media type and argument parser.
type Descriptor interface {
	Name() string
	Role() Role
	Info() string
	Help() string
	ProducesMediaType() string
	ParseArgs(ctx context.Context, raw string, env map[string]any) (Bound, error)
}

// Registry maps command names and aliases to Descriptors.
type Registry struct {
	byName  map[string]Descriptor
	aliases map[string]string // alias -> canonical name
}

// NewRegistry builds a Registry from descs and an alias table. Alias
// targets that don't resolve to a known descriptor are dropped, and an
// alias that collides with an existing canonical name is dropped in
// favor of the canonical.
func NewRegistry(descs []Descriptor, aliasTargets map[string]string) *Registry {
	r := &Registry{byName: map[string]Descriptor{}, aliases: map[string]string{}}
	for _, d := range descs {
		r.byName[d.Name()] = d
	}
	for alias, target := range aliasTargets {
		if _, collides := r.byName[alias]; collides {
			continue
		}
		if _, exists := r.byName[target]; !exists {
			continue
		}
		r.aliases[alias] = target
	}
	return r
}

// Lookup resolves name through the alias table if needed, then the
// descriptor set, returning UnknownCommand if nothing matches.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	if d, ok := r.byName[name]; ok {
		return d, nil
	}
	return nil, &clierr.UnknownCommand{Name: name}
}

// ResolveAlias returns the canonical name an alias points to, and
// whether name is a known alias at all.
func (r *Registry) ResolveAlias(name string) (string, bool) {
	target, ok := r.aliases[name]
	return target, ok
}

// All returns every non-Internal descriptor, sorted by name.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.byName))
	for _, d := range r.byName {
		if d.Role() == RoleInternal {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Aliases returns the alias -> canonical map, excluding any alias that
// points at an Internal descriptor.
func (r *Registry) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for alias, target := range r.aliases {
		if d, ok := r.byName[target]; ok && d.Role() != RoleInternal {
			out[alias] = target
		}
	}
	return out
}
