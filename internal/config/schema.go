package config

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"

	"github.com/vovakirdan/chomp/internal/games/chomp/levels/formats"
	"github.com/vovakirdan/chomp/internal/games/chomp/sprites"
)

type schemaSource struct {
	title       string
	description string
	value       any
}

var schemaSources = map[string]schemaSource{
	"config": {
		title:       "chomp configuration",
		description: "Validates chomp.yaml files loaded from ~/.chomp/configs or ./configs",
		value:       new(ChompConfig),
	},
	"level": {
		title:       "chomp level",
		description: "Validates YAML level files in the level directory",
		value:       new(formats.Document),
	},
	"sprites": {
		title:       "chomp sprite sheet",
		description: "Validates sprite sheet YAML files",
		value:       new(sprites.SheetDocument),
	},
}

// SchemaKinds lists the documents a schema can be generated for.
func SchemaKinds() []string {
	kinds := make([]string, 0, len(schemaSources))
	for k := range schemaSources {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Schema builds the JSON Schema for one document kind.
func Schema(kind string) (*jsonschema.Schema, error) {
	src, ok := schemaSources[kind]
	if !ok {
		return nil, fmt.Errorf("config: unknown schema kind %q (have %v)", kind, SchemaKinds())
	}

	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(src.value)
	schema.Title = src.title
	schema.Description = src.description
	return schema, nil
}

// SchemaJSON renders the schema for kind as indented JSON.
func SchemaJSON(kind string) ([]byte, error) {
	schema, err := Schema(kind)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("config: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
