package cli

import "context"

// ParsedCommandLine is the execution handle of one evaluated statement:
// the resolved environment and parsed statement that produced it, the
// post-coalescing bound pipeline, and its one-shot stream. The stream
// must be consumed at most once.
type ParsedCommandLine struct {
	ResolvedEnv map[string]any
	Statement   ParsedStatement
	Bound       []BoundCommand
	Stream      Stream
}

// Produces returns the media type of the pipeline's last descriptor: a
// caller deciding how to print a result only ever needs the last stage's
// declared type.
func (p *ParsedCommandLine) Produces() string {
	if len(p.Bound) == 0 {
		return ""
	}
	return p.Bound[len(p.Bound)-1].Desc.ProducesMediaType()
}

// ProducesJSON reports whether Produces() is the JSON media type.
func (p *ParsedCommandLine) ProducesJSON() bool { return p.Produces() == "application/json" }

// ProducesBinary reports whether Produces() is an octet-stream media
// type, i.e. a declared type that is neither JSON nor plain text.
func (p *ParsedCommandLine) ProducesBinary() bool {
	switch p.Produces() {
	case "", "application/json", "text/plain":
		return false
	default:
		return true
	}
}

// Evaluate parses input, optionally substitutes placeholders, and binds
// every statement's pipeline, without draining any stream.
//
// Placeholder substitution needs a provisional parse to decide whether
// it even applies: the substituted text is always parsed first, and if
// its first statement's first command is `add_job`,
// the original unsubstituted text is re-parsed and used instead (add_job
// schedules command text for later, which must keep its own placeholders
// literal until run time).
func Evaluate(ctx context.Context, input string, substitutePlaceholders bool, env map[string]any, reg *Registry) ([]*ParsedCommandLine, error) {
	substituted := input
	if substitutePlaceholders {
		substituted = SubstitutePlaceholders(input, env)
	}

	statements, err := Parse(substituted)
	if err != nil {
		return nil, err
	}
	if substitutePlaceholders && isAddJob(statements) {
		statements, err = Parse(input)
		if err != nil {
			return nil, err
		}
	}

	execQuery, err := reg.Lookup("execute_query")
	if err != nil {
		return nil, err
	}
	aggregateToCount, err := reg.Lookup("aggregate_to_count")
	if err != nil {
		return nil, err
	}

	out := make([]*ParsedCommandLine, 0, len(statements))
	for _, stmt := range statements {
		resolvedEnv := mergeEnv(env, stmt.Env)

		named := make([]NamedCommand, 0, len(stmt.Commands))
		for _, pc := range stmt.Commands {
			d, err := reg.Lookup(pc.Name)
			if err != nil {
				return nil, err
			}
			named = append(named, NamedCommand{Desc: d, Raw: rawOf(pc.Args)})
		}

		prefix, rest := SplitQueryPrefix(named)
		coalesced, err := Coalesce(prefix, execQuery, aggregateToCount)
		if err != nil {
			return nil, err
		}
		pipeline := append(coalesced, rest...)

		if err := Validate(pipeline); err != nil {
			return nil, err
		}
		bound, err := Bind(ctx, pipeline, resolvedEnv)
		if err != nil {
			return nil, err
		}

		out = append(out, &ParsedCommandLine{
			ResolvedEnv: resolvedEnv,
			Statement:   stmt,
			Bound:       bound,
			Stream:      Compose(ctx, bound),
		})
	}
	return out, nil
}

// isAddJob reports whether the first command of the first statement is
// named add_job, the trigger for Evaluate's re-parse exception.
func isAddJob(statements []ParsedStatement) bool {
	if len(statements) == 0 || len(statements[0].Commands) == 0 {
		return false
	}
	return statements[0].Commands[0].Name == "add_job"
}

func mergeEnv(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// Execute evaluates input, then drains each ParsedCommandLine's stream
// through sink, returning one sink result per statement.
func Execute[T any](ctx context.Context, input string, sink Sink[T], env map[string]any, reg *Registry) ([]T, error) {
	lines, err := Evaluate(ctx, input, true, env, reg)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(lines))
	for _, line := range lines {
		result, err := sink(ctx, line.Stream)
		if err != nil {
			return nil, err
		}
		out = append(out, result)
	}
	return out, nil
}
