// Package provider is the locale-aware engine producing single fake values.
//
// A Provider is created once per run. All its capabilities share one
// pseudo-random source, so a seeded Provider produces the same sequence of
// values for the same sequence of calls.
package provider

import (
	"errors"
	"fmt"
	"maps"
	"math/rand"
	"slices"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	// ErrMissingDependency is returned if no Provider can be constructed.
	ErrMissingDependency = errors.New("missing dependency")
	// ErrUnsupportedLocale is returned for locales without a locale pack.
	ErrUnsupportedLocale = fmt.Errorf("%w: unsupported locale", ErrMissingDependency)
	// ErrInvocationFailed is returned by a Capability that could not produce a value.
	ErrInvocationFailed = errors.New("provider invocation failed")
)

// Capability produces one value: a string, a number, or nil.
type Capability func() (any, error)

// Option allows to initialise a Provider with custom options.
type Option func(opts *options)

type options struct {
	seed    *int64
	refTime time.Time
}

// WithSeed seeds the pseudo-random source.
// The same seed always results in the same values, including the seed 0.
func WithSeed(seed int64) Option {
	return func(opts *options) {
		opts.seed = &seed
	}
}

// WithReferenceTime sets the instant relative dates, e.g. a date of birth, are computed from.
// By default, it is the start of the current day in UTC, so that seeded runs
// on the same day produce the same output.
func WithReferenceTime(t time.Time) Option {
	return func(opts *options) {
		opts.refTime = t.UTC()
	}
}

// Provider generates fake values for one Locale.
// It is not safe for concurrent use.
type Provider struct {
	locale  Locale
	faker   *gofakeit.Faker
	refTime time.Time

	capabilities map[string]Capability
}

// New returns a Provider for the given locale.
// It fails fast with ErrMissingDependency, if the locale can not be served.
func New(locale string, opts ...Option) (*Provider, error) {
	loc, err := ParseLocale(locale)
	if err != nil {
		return nil, err
	}

	o := &options{
		refTime: time.Now().UTC().Truncate(24 * time.Hour), //nolint:mnd // one day
	}

	for _, opt := range opts {
		opt(o)
	}

	faker := gofakeit.New(0) // seeded from crypto/rand
	if o.seed != nil {
		// gofakeit.New treats 0 as "random", a user given 0 has to be reproducible as well.
		faker = gofakeit.NewCustom(rand.NewSource(*o.seed).(rand.Source64)) //nolint:gosec,forcetypeassert // fake data, rngSource implements Source64
	}

	p := &Provider{
		locale:  loc,
		faker:   faker,
		refTime: o.refTime,
	}

	p.capabilities = p.commonCapabilities()

	var pack map[string]Capability

	switch loc {
	case PtBR:
		pack = p.brazilianCapabilities()
	case EnUS:
		pack = p.americanCapabilities()
	}

	maps.Copy(p.capabilities, pack)

	return p, nil
}

// Locale returns the resolved locale of the Provider.
func (p *Provider) Locale() Locale {
	return p.locale
}

// Capability returns the capability registered under name.
func (p *Provider) Capability(name string) (Capability, bool) {
	c, ok := p.capabilities[name]

	return c, ok
}

// Capabilities returns the sorted names of all capabilities of the Provider.
func (p *Provider) Capabilities() []string {
	return slices.Sorted(maps.Keys(p.capabilities))
}
