package command

import (
	"context"
	"encoding/json"

	"sigs.k8s.io/yaml"

	"github.com/graphshell/gsh/internal/cli"
)

// jsonyCommand is a Transform that renders each JSON document as a YAML
// string, using sigs.k8s.io/yaml's JSON-first marshaling (it round-trips
// through encoding/json, which fits the stream's JSON-document model
// better than a native YAML library would).
type jsonyCommand struct{}

// Jsony registers under "jsony".
func Jsony() cli.Descriptor { return jsonyCommand{} }

func (jsonyCommand) Name() string              { return "jsony" }
func (jsonyCommand) Role() cli.Role            { return cli.RoleTransform }
func (jsonyCommand) Info() string              { return "render each document as a YAML string" }
func (jsonyCommand) Help() string              { return "jsony - marshals each document to a YAML string" }
func (jsonyCommand) ProducesMediaType() string { return "text/plain" }

func (jsonyCommand) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	return cli.Bound{Transform: func(ctx context.Context, in cli.Stream) cli.Stream {
		return mapStream(ctx, in, toYAMLString)
	}}, nil
}

func toYAMLString(v Document) (Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out, err := yaml.JSONToYAML(b)
	if err != nil {
		return nil, err
	}
	return string(out), nil
}
