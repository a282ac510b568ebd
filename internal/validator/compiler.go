// Package validator provides interfaces and types for JSON Schema validation.
package validator

// A JSONDocument is a parsed JSON document, as produced by ParseJSON.
type JSONDocument interface{}

// A JSONSchema is a parsed JSON document representing a JSON Schema.
// A Compiler must compile it before use, which reports any problems with the schema itself.
type JSONSchema JSONDocument

// Validator validates documents against one compiled schema.
type Validator interface {
	// Validate validates a JSON document.
	Validate(v JSONDocument) error
}

// Compiler defines a JSON Schema compiler. Schemas are registered first and
// compiled by ID afterwards.
type Compiler interface {
	// AddSchema registers a JSONSchema with the compiler.
	AddSchema(id string, data JSONSchema) error

	// Compile creates a Validator from the JSONSchema previously added with the given ID.
	Compile(id string) (Validator, error)
}
