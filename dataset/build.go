package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCount    = errors.New("invalid row count")
	ErrGeneratorFailed = errors.New("generator failed")
)

// BuildRow resolves each field of schema, left to right, into one Record:
//  1. the generator registered for the field,
//  2. the provider capability with the same name,
//  3. nil.
//
// An unknown field is never an error. A failing generator is.
func BuildRow(reg *Registry, schema Schema) (Record, error) {
	record := NewRecord(len(schema))

	for _, field := range schema {
		field = strings.TrimSpace(field)

		gen, ok := reg.Resolve(field)
		if !ok {
			record.Set(field, nil)

			continue
		}

		val, err := gen()
		if err != nil {
			return Record{}, fmt.Errorf("%w: field %q: %w", ErrGeneratorFailed, field, err)
		}

		record.Set(field, val)
	}

	return record, nil
}

// Build builds count Records, strictly one after the other,
// so a seeded provider always yields the same Dataset.
func Build(reg *Registry, schema Schema, count int) (Dataset, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d, must not be negative", ErrInvalidCount, count)
	}

	ds := make(Dataset, 0, count)

	for i := range count {
		record, err := BuildRow(reg, schema)
		if err != nil {
			return nil, fmt.Errorf("could not build row %d: %w", i+1, err)
		}

		ds = append(ds, record)
	}

	return ds, nil
}

// Unresolved returns the fields of schema neither the registry nor the provider can generate,
// in schema order and without duplicates.
func Unresolved(reg *Registry, schema Schema) []string {
	var (
		unresolved []string
		seen       = map[string]struct{}{}
	)

	for _, field := range schema {
		field = strings.TrimSpace(field)

		if _, done := seen[field]; done {
			continue
		}

		seen[field] = struct{}{}

		if _, ok := reg.Resolve(field); !ok {
			unresolved = append(unresolved, field)
		}
	}

	return unresolved
}
