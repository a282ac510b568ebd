package validator

import (
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// NewSanthoshCompiler returns a Compiler backed by santhosh-tekuri/jsonschema/v6.
func NewSanthoshCompiler() Compiler {
	return &santhoshCompiler{c: jsonschema.NewCompiler()}
}

// ParseJSON decodes a JSON document using the number representation the
// validator expects.
func ParseJSON(r io.Reader) (JSONDocument, error) {
	return jsonschema.UnmarshalJSON(r)
}

// santhoshValidator wraps jsonschema.Schema to implement Validator.
type santhoshValidator struct {
	v *jsonschema.Schema
}

func (sv *santhoshValidator) Validate(doc JSONDocument) error {
	return sv.v.Validate(doc)
}

// santhoshCompiler wraps jsonschema.Compiler to implement Compiler.
type santhoshCompiler struct {
	mu sync.Mutex
	c  *jsonschema.Compiler
}

func (s *santhoshCompiler) AddSchema(id string, schemaData JSONSchema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.AddResource(id, schemaData)
}

func (s *santhoshCompiler) Compile(id string) (Validator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.c.Compile(id)
	if err != nil {
		return nil, err
	}
	return &santhoshValidator{v: v}, nil
}
