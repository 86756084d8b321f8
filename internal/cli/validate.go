package cli

import "github.com/graphshell/gsh/internal/clierr"

// Validate enforces the pipeline position rule: position 0 must be a
// Source, every later position must be a Transform. Internal descriptors
// (the synthetic commands coalescing produces) are accepted at any
// position. Any other role, a QueryPart left outside the coalesced
// prefix included, is rejected with the "no source data given" detail.
func Validate(cmds []NamedCommand) error {
	for i, c := range cmds {
		role := c.Desc.Role()
		if i == 0 {
			if role != RoleSource && role != RoleInternal {
				return &clierr.IllegalPipeline{Name: c.Desc.Name(), Detail: clierr.DetailNoSourceData}
			}
			continue
		}
		if role == RoleSource {
			return &clierr.IllegalPipeline{Name: c.Desc.Name(), Detail: clierr.DetailMustBeFirst}
		}
		if role != RoleTransform && role != RoleInternal {
			return &clierr.IllegalPipeline{Name: c.Desc.Name(), Detail: clierr.DetailNoSourceData}
		}
	}
	return nil
}
