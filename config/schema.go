// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package config

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaID = "https://claims.holomush.dev/schemas/bundle.schema.json"

type schemaState struct {
	once   sync.Once
	schema *jschema.Schema
	err    error
}

var globalSchemaState = &schemaState{}

// GenerateSchema generates the JSON Schema for a Bundle.
func GenerateSchema() ([]byte, error) {
	r := jsonschema.Reflector{DoNotReference: true}
	schema := r.Reflect(&Bundle{})
	schema.ID = jsonschema.ID(schemaID)
	schema.Title = "Claim Bundle"
	schema.Description = "Schema for a subject's permitted/prohibited claim bundle"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.In("config").Hint("failed to marshal schema").Wrap(err)
	}
	return append(data, '\n'), nil
}

// ValidateSchema validates raw YAML bundle data against the generated
// schema, independent of the semver check Load applies after decoding.
func ValidateSchema(data []byte) error {
	if len(data) == 0 {
		return oops.In("config").Code("InvalidArgument").New("bundle data is empty")
	}

	var yamlData any
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return oops.In("config").Code("InvalidArgument").Hint("invalid YAML").Wrap(err)
	}
	jsonData := convertToJSONTypes(yamlData)

	sch, err := getCompiledSchema()
	if err != nil {
		return oops.In("config").Hint("failed to compile schema").Wrap(err)
	}
	if err := sch.Validate(jsonData); err != nil {
		return oops.In("config").Code("InvalidArgument").Hint("schema validation failed").Wrap(err)
	}
	return nil
}

func getCompiledSchema() (*jschema.Schema, error) {
	globalSchemaState.once.Do(func() {
		globalSchemaState.schema, globalSchemaState.err = compileSchema()
	})
	return globalSchemaState.schema, globalSchemaState.err
}

func compileSchema() (*jschema.Schema, error) {
	schemaBytes, err := GenerateSchema()
	if err != nil {
		return nil, err
	}

	var schemaData any
	if err := json.Unmarshal(schemaBytes, &schemaData); err != nil {
		return nil, oops.In("config").Hint("failed to parse generated schema").Wrap(err)
	}

	c := jschema.NewCompiler()
	if err := c.AddResource("bundle.json", schemaData); err != nil {
		return nil, oops.In("config").Hint("failed to add schema resource").Wrap(err)
	}
	return c.Compile("bundle.json")
}

// convertToJSONTypes rebuilds YAML-parsed maps (map[string]any) and
// slices ([]any) recursively for the schema validator. Scalars and any
// other value types are returned unchanged.
func convertToJSONTypes(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v := range val {
			out[k] = convertToJSONTypes(v)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v := range val {
			out[i] = convertToJSONTypes(v)
		}
		return out
	default:
		return val
	}
}

// resetSchemaCache clears the cached compiled schema. Used by tests.
func resetSchemaCache() {
	globalSchemaState = &schemaState{}
}
