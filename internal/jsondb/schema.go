// Describes the backing file format as a JSON Schema.

package jsondb

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of a store file holding records of type T.
//
// Field descriptions come from `jsonschema:"description=..."` struct tags.
func Schema[T any]() ([]byte, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("type must be a struct or pointer to struct, got %s", t.Kind())
	}

	r := jsonschema.Reflector{Anonymous: true, DoNotReference: true}
	items := r.ReflectFromType(t)
	items.Version = ""
	schema := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Type:        "array",
		Title:       t.Name() + " store",
		Description: "JSON array of " + t.Name() + " records with unique positive Id values.",
		Items:       items,
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
