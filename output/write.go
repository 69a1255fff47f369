package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-arrower/fakedata/dataset"
)

var ErrWriteFailed = errors.New("could not write dataset")

// Write serializes ds into w using the given format.
// The schema determines the column order for CSV and the key order for the other formats.
func Write(w io.Writer, ds dataset.Dataset, schema dataset.Schema, format Format) error {
	var err error

	switch format {
	case CSV:
		err = writeCSV(w, ds, schema)
	case JSON:
		err = writeJSON(w, ds)
	case YAML:
		err = writeYAML(w, ds)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("%w as %s: %w", ErrWriteFailed, format, err)
	}

	return nil
}

func writeCSV(w io.Writer, ds dataset.Dataset, schema dataset.Schema) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(schema); err != nil {
		return err
	}

	row := make([]string, len(schema))
	for _, record := range ds {
		for i, field := range schema {
			val, _ := record.Get(field)
			row[i] = formatValue(val)
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// formatValue renders a value as a CSV field. nil is the empty field.
func formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat writes integral values with a trailing ".0", so 3.0 stays 3.0.
func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.Contains(s, ".") {
		return s
	}

	return s + ".0"
}

// writeJSON writes an indented array of objects with the keys in Record order.
// Non-ASCII and HTML characters are not escaped.
func writeJSON(w io.Writer, ds dataset.Dataset) error {
	var compact bytes.Buffer

	compact.WriteByte('[')

	for i, record := range ds {
		if i > 0 {
			compact.WriteByte(',')
		}

		if err := appendObject(&compact, record); err != nil {
			return err
		}
	}

	compact.WriteByte(']')

	var indented bytes.Buffer
	if err := json.Indent(&indented, compact.Bytes(), "", "  "); err != nil {
		return err
	}

	indented.WriteByte('\n')

	_, err := indented.WriteTo(w)

	return err
}

func appendObject(buf *bytes.Buffer, record dataset.Record) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')

	for i, key := range record.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		val, _ := record.Get(key)

		// Encode appends a newline, json.Indent drops it as insignificant whitespace.
		if err := enc.Encode(key); err != nil {
			return err
		}

		buf.WriteByte(':')

		if err := enc.Encode(val); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}

	buf.WriteByte('}')

	return nil
}

func writeYAML(w io.Writer, ds dataset.Dataset) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(ds) == 0 {
		doc.Style = yaml.FlowStyle
	}

	for _, record := range ds {
		obj := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, key := range record.Keys() {
			val, _ := record.Get(key)

			var valNode yaml.Node
			if err := valNode.Encode(val); err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}

			obj.Content = append(obj.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				&valNode,
			)
		}

		doc.Content = append(doc.Content, obj)
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2) //nolint:mnd // two spaces, same as JSON

	if err := enc.Encode(doc); err != nil {
		return err
	}

	if err := enc.Close(); err != nil {
		return err
	}

	_, err := buf.WriteTo(w)

	return err
}
