package entity

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
)

// LoadYAML reads and validates a fixture document:
//
//	type: rpminfo
//	contents:
//	- entity: {name: name, datatype: string, value: httpd}
//	- var_ref: oval:org.example:var:1
func LoadYAML(d []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(d, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// JSONSchema returns the JSON schema of fixture documents.
func JSONSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Document{})
	d, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return d, nil
}
