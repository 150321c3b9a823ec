package apiversion

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// timePattern valida HH:MM en 24 horas; JSON Schema no trae un format
// estándar para hora sin segundos.
const timePattern = "^([01][0-9]|2[0-3]):[0-5][0-9]$"

// ExportJSONSchema genera un documento JSON Schema draft-07 equivalente
// al contrato, para que los clientes puedan validar del lado de afuera.
// Los campos computados no se exportan: solo describen respuestas.
func ExportJSONSchema(c *Contract) map[string]any {
	properties := make(map[string]any, len(c.fields))
	required := []string{}

	for _, f := range c.fields {
		prop := map[string]any{}
		switch f.Type {
		case TypeString:
			prop["type"] = "string"
		case TypeInt:
			prop["type"] = "integer"
		case TypeNumber:
			prop["type"] = "number"
		case TypeBool:
			prop["type"] = "boolean"
		case TypeDate:
			prop["type"] = "string"
			prop["format"] = "date"
		case TypeTime:
			prop["type"] = "string"
			prop["pattern"] = timePattern
		case TypeUUID:
			prop["type"] = "string"
			prop["format"] = "uuid"
		case TypeEmail:
			prop["type"] = "string"
			prop["format"] = "email"
		}

		if f.MinLen != nil {
			prop["minLength"] = *f.MinLen
		}
		if f.MaxLen != nil {
			prop["maxLength"] = *f.MaxLen
		}
		if f.Min != nil {
			prop["minimum"] = *f.Min
		}
		if f.Max != nil {
			prop["maximum"] = *f.Max
		}
		if f.Pattern != "" {
			prop["pattern"] = f.Pattern
		}
		if len(f.Enum) > 0 {
			enum := make([]any, len(f.Enum))
			for i, e := range f.Enum {
				enum[i] = e
			}
			prop["enum"] = enum
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}

		properties[f.Name] = prop
		// Un required con default nunca puede faltar; no se exporta como
		// required para no rechazar payloads viejos que lo omiten.
		if f.Required && f.Default == nil {
			required = append(required, f.Name)
		}
	}

	doc := map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"title":                fmt.Sprintf("%s (%s)", c.resource, c.version),
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": !c.strict,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

// CompileSchema compila el documento exportado con el compilador real de
// JSON Schema como self-check: un contrato cuyo export no compila es un
// error de configuración, no de datos.
func CompileSchema(doc map[string]any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	if _, err := compiler.Compile("schema.json"); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	return nil
}
