package dataset

import (
	"errors"
	"strings"
)

var ErrEmptySchema = errors.New("schema has no fields")

// Schema is the ordered list of field names of a Record.
// The order determines the column order of the output.
// Duplicates are allowed.
type Schema []string

// DefaultSchema is used if no schema is given.
func DefaultSchema() Schema {
	return Schema{
		"nome", "email", "cpf", "telefone", "endereco", "cidade",
		"estado", "cep", "empresa", "cargo", "data",
	}
}

// ParseSchema parses a comma separated list of field names.
func ParseSchema(fields string) (Schema, error) {
	return NewSchema(strings.Split(fields, ","))
}

// NewSchema trims all fields and drops the ones that are empty afterwards.
// If no field is left, it returns ErrEmptySchema.
func NewSchema(fields []string) (Schema, error) {
	schema := make(Schema, 0, len(fields))

	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			schema = append(schema, f)
		}
	}

	if len(schema) == 0 {
		return nil, ErrEmptySchema
	}

	return schema, nil
}

// String returns the fields comma separated, the inverse of ParseSchema.
func (s Schema) String() string {
	return strings.Join(s, ",")
}
