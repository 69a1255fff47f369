// Package secret keeps credentials, like the S3 secret access key,
// from accidentally being printed, logged, or serialized.
package secret

import (
	"encoding/json"
	"log/slog"
)

const mask = "******"

func New(secret string) Secret {
	return Secret{secret: &secret}
}

// Secret masks its value in every output representation.
// The zero value is an empty Secret.
type Secret struct {
	// secret being a pointer makes it harder to reach the value via reflection.
	// It is still possible by directly accessing the memory address.
	secret *string
}

// Secret returns the actual value.
func (s Secret) Secret() string {
	if s.secret == nil {
		return ""
	}

	return *s.secret
}

// IsEmpty reports if no value is set.
func (s Secret) IsEmpty() bool {
	return s.Secret() == ""
}

func (s Secret) String() string {
	return mask
}

func (s Secret) GoString() string {
	return mask
}

func (s Secret) LogValue() slog.Value {
	return slog.StringValue(mask)
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(mask) //nolint:wrapcheck // export the underlying error
}

func (s *Secret) UnmarshalJSON(data []byte) error {
	var des string
	if err := json.Unmarshal(data, &des); err != nil {
		return err //nolint:wrapcheck // export the underlying error
	}

	s.secret = &des

	return nil
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(mask), nil
}

// UnmarshalText is used by the config decoder to read a Secret from a plain string.
func (s *Secret) UnmarshalText(data []byte) error {
	text := string(data)
	s.secret = &text

	return nil
}

// MarshalYAML masks the value when a config is dumped as YAML.
func (s Secret) MarshalYAML() (any, error) {
	return mask, nil
}
