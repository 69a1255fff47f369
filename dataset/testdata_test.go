package dataset_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-arrower/fakedata/dataset"
	"github.com/go-arrower/fakedata/provider"
)

var (
	refTime = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	errBroken = errors.New("broken capability")
)

func seededRegistry(t *testing.T, locale string, seed int64) *dataset.Registry {
	t.Helper()

	p, err := provider.New(locale, provider.WithSeed(seed), provider.WithReferenceTime(refTime))
	require.NoError(t, err)

	return dataset.NewRegistry(p)
}

// fakeProvider serves a fixed set of capabilities, each returning its own name
// followed by the number of calls so far.
type fakeProvider struct {
	calls        int
	capabilities map[string]bool
}

func newFakeProvider(names ...string) *fakeProvider {
	p := &fakeProvider{capabilities: map[string]bool{}}
	for _, n := range names {
		p.capabilities[n] = true
	}

	return p
}

func (p *fakeProvider) Capability(name string) (provider.Capability, bool) {
	if name == "broken" && p.capabilities[name] {
		return func() (any, error) { return nil, errBroken }, true
	}

	if !p.capabilities[name] {
		return nil, false
	}

	return func() (any, error) {
		p.calls++

		return name + "-" + string(rune('0'+p.calls%10)), nil
	}, true
}

func toMaps(ds dataset.Dataset) []map[string]any {
	maps := make([]map[string]any, 0, len(ds))
	for _, r := range ds {
		maps = append(maps, r.Map())
	}

	return maps
}
