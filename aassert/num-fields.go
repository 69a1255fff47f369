package aassert

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// NumFields asserts that the struct (or pointer to struct) object
// has the expected number of exported fields.
// Exported fields of nested and embedded structs are counted as well,
// also if they are the elements of a pointer, slice, array, or map.
//
// Use it to guard code mapping one struct to another, e.g. a configuration to a request:
// adding a field breaks the test and points to the mapping that needs an update.
func NumFields(t *testing.T, expected int, object any, msgAndArgs ...any) bool {
	t.Helper()

	typ := reflect.TypeOf(object)
	if typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	if typ == nil || typ.Kind() != reflect.Struct {
		return assert.Fail(t, "invalid argument, it has to be a struct", msgAndArgs...)
	}

	fields := countFields(typ, map[reflect.Type]bool{})
	if fields != expected {
		t.Logf("The number of exported fields of %s changed.", typ)
		t.Logf("Ensure all code mapping this struct is correct, then update the expected count in %s.", t.Name())

		return assert.Fail(t, fmt.Sprintf("struct changed, it has: %d fields, expected: %d", fields, expected), msgAndArgs...)
	}

	return true
}

// countFields counts the exported fields of typ recursively.
// seen contains the struct types of the current path, to stop on recursive types.
func countFields(typ reflect.Type, seen map[reflect.Type]bool) int {
	switch typ.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Map:
		return countFields(typ.Elem(), seen)
	case reflect.Struct:
	default:
		return 0
	}

	if seen[typ] {
		return 0
	}

	seen[typ] = true
	defer delete(seen, typ)

	var fields int

	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		fields += 1 + countFields(field.Type, seen)
	}

	return fields
}
