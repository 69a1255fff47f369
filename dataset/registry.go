// Package dataset resolves a Schema of human-friendly field names
// into Records of generated values.
package dataset

import (
	"maps"
	"slices"

	"github.com/go-arrower/fakedata/provider"
)

// FieldGenerator produces one value for a field.
type FieldGenerator func() (any, error)

// CapabilityProvider is the part of provider.Provider the Registry depends on.
type CapabilityProvider interface {
	Capability(name string) (provider.Capability, bool)
}

// canonicalFields maps each canonical field name to the provider capabilities
// able to produce it, in order of preference.
//
//nolint:gochecknoglobals // static lookup table
var canonicalFields = map[string][]string{
	// person
	"nome":            {"name"},
	"primeiro_nome":   {"first_name"},
	"sobrenome":       {"last_name"},
	"email":           {"email"},
	"usuario":         {"user_name"},
	"senha":           {"password"},
	"data_nascimento": {"date_of_birth"},
	"cpf":             {"cpf", "ssn"},
	"cnpj":            {"cnpj", "ein"},
	"rg":              {"rg"},
	"telefone":        {"phone_number"},
	"celular":         {"cellphone_number", "phone_number"},
	"uuid":            {"uuid4"},
	"ulid":            {"ulid"},

	// address
	"endereco": {"street_address"},
	"bairro":   {"bairro", "secondary_address"},
	"cidade":   {"city"},
	"estado":   {"state"},
	"cep":      {"postcode"},
	"pais":     {"country"},

	// company
	"empresa":      {"company"},
	"cargo":        {"job"},
	"cnpj_empresa": {"cnpj", "ein"},

	// internet
	"url":     {"url"},
	"dominio": {"domain_name"},
	"ip":      {"ipv4"},

	// financial
	"preco":          {"price"},
	"moeda":          {"currency_code"},
	"cartao_credito": {"credit_card_number"},

	// date and time
	"data":      {"date"},
	"hora":      {"time"},
	"timestamp": {"date_time"},

	// text
	"frase": {"sentence"},
	"texto": {"text"},
}

// CanonicalFields returns the sorted names of all canonical fields, independent of
// whether a provider can serve them.
func CanonicalFields() []string {
	return slices.Sorted(maps.Keys(canonicalFields))
}

// Registry maps canonical field names to generators bound to one provider.
type Registry struct {
	provider   CapabilityProvider
	generators map[string]FieldGenerator
	resolvedBy map[string]string
}

// NewRegistry binds every canonical field to the first capability of the provider able to serve it.
// Fields no capability can serve are left out of the Registry.
func NewRegistry(p CapabilityProvider) *Registry {
	reg := &Registry{
		provider:   p,
		generators: make(map[string]FieldGenerator, len(canonicalFields)),
		resolvedBy: make(map[string]string, len(canonicalFields)),
	}

	for field, capabilities := range canonicalFields {
		for _, name := range capabilities {
			if c, ok := p.Capability(name); ok {
				reg.generators[field] = FieldGenerator(c)
				reg.resolvedBy[field] = name

				break
			}
		}
	}

	return reg
}

// Lookup returns the generator registered for field.
func (r *Registry) Lookup(field string) (FieldGenerator, bool) {
	gen, ok := r.generators[field]

	return gen, ok
}

// ResolvedBy returns the capability the field is bound to.
func (r *Registry) ResolvedBy(field string) (string, bool) {
	name, ok := r.resolvedBy[field]

	return name, ok
}

// Names returns the sorted names of all registered fields.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.generators))
}

// Resolve returns the generator for field: the registered one or,
// if there is none, a provider capability with exactly the field's name.
func (r *Registry) Resolve(field string) (FieldGenerator, bool) {
	if gen, ok := r.generators[field]; ok {
		return gen, true
	}

	if c, ok := r.provider.Capability(field); ok {
		return FieldGenerator(c), true
	}

	return nil, false
}
