// Package output serializes a dataset.Dataset into one of the supported file formats.
package output

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is a serialization format of a Dataset.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{CSV, JSON, YAML}
}

// ParseFormat returns the Format with the given name, case insensitive.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))

	for _, f := range Formats() {
		if f == format {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q, use one of: %s", ErrUnsupportedFormat, name, formatNames())
}

// Extension is the file extension used for the Format, without a dot.
func (f Format) Extension() string {
	return string(f)
}

func (f Format) String() string {
	return string(f)
}

func formatNames() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}

	return strings.Join(names, ", ")
}
