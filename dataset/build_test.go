package dataset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/fakedata/dataset"
)

func TestBuildRow(t *testing.T) {
	t.Parallel()

	t.Run("resolve fields in schema order", func(t *testing.T) {
		t.Parallel()

		reg := dataset.NewRegistry(newFakeProvider("name", "email"))

		record, err := dataset.BuildRow(reg, dataset.Schema{"email", "nome"})
		require.NoError(t, err)

		assert.Equal(t, []string{"email", "nome"}, record.Keys())

		val, _ := record.Get("email")
		assert.Equal(t, "email-1", val)
		val, _ = record.Get("nome")
		assert.Equal(t, "name-2", val)
	})

	t.Run("fall back to capability of same name", func(t *testing.T) {
		t.Parallel()

		reg := dataset.NewRegistry(newFakeProvider("color"))

		record, err := dataset.BuildRow(reg, dataset.Schema{"color"})
		require.NoError(t, err)

		val, ok := record.Get("color")
		assert.True(t, ok)
		assert.Equal(t, "color-1", val)
	})

	t.Run("unknown field is nil", func(t *testing.T) {
		t.Parallel()

		reg := seededRegistry(t, "pt_BR", 1)

		record, err := dataset.BuildRow(reg, dataset.Schema{"nome", "campo_inexistente"})
		require.NoError(t, err)

		val, ok := record.Get("campo_inexistente")
		assert.True(t, ok, "key is present")
		assert.Nil(t, val)

		val, _ = record.Get("nome")
		assert.NotEmpty(t, val)
	})

	t.Run("duplicate field overwrites the earlier value", func(t *testing.T) {
		t.Parallel()

		reg := dataset.NewRegistry(newFakeProvider("name", "email"))

		record, err := dataset.BuildRow(reg, dataset.Schema{"nome", "email", "nome"})
		require.NoError(t, err)

		assert.Equal(t, 2, record.Len())
		assert.Equal(t, []string{"nome", "email"}, record.Keys(), "keeps first position")

		val, _ := record.Get("nome")
		assert.Equal(t, "name-3", val)
	})

	t.Run("trim field names", func(t *testing.T) {
		t.Parallel()

		reg := dataset.NewRegistry(newFakeProvider("name"))

		record, err := dataset.BuildRow(reg, dataset.Schema{" nome "})
		require.NoError(t, err)

		assert.Equal(t, []string{"nome"}, record.Keys())
	})

	t.Run("failing generator aborts", func(t *testing.T) {
		t.Parallel()

		reg := dataset.NewRegistry(newFakeProvider("broken"))

		_, err := dataset.BuildRow(reg, dataset.Schema{"broken"})
		assert.ErrorIs(t, err, dataset.ErrGeneratorFailed)
		assert.ErrorIs(t, err, errBroken)
		assert.Contains(t, err.Error(), `"broken"`)
	})
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("number of records", func(t *testing.T) {
		t.Parallel()

		for _, rows := range []int{0, 1, 7, 100} {
			ds, err := dataset.Build(seededRegistry(t, "pt_BR", 1), dataset.DefaultSchema(), rows)
			require.NoError(t, err)
			assert.Len(t, ds, rows)
		}
	})

	t.Run("zero rows is an empty dataset", func(t *testing.T) {
		t.Parallel()

		ds, err := dataset.Build(seededRegistry(t, "pt_BR", 1), dataset.DefaultSchema(), 0)
		assert.NoError(t, err)
		assert.NotNil(t, ds)
		assert.Empty(t, ds)
	})

	t.Run("negative rows", func(t *testing.T) {
		t.Parallel()

		_, err := dataset.Build(seededRegistry(t, "pt_BR", 1), dataset.DefaultSchema(), -1)
		assert.ErrorIs(t, err, dataset.ErrInvalidCount)
	})

	t.Run("every record has the keys of the schema", func(t *testing.T) {
		t.Parallel()

		schema := dataset.Schema{"nome", "cpf", "campo_inexistente", "nome", "city"}

		ds, err := dataset.Build(seededRegistry(t, "en_US", 3), schema, 10)
		require.NoError(t, err)

		for _, record := range ds {
			assert.ElementsMatch(t, []string{"nome", "cpf", "campo_inexistente", "city"}, record.Keys())
		}
	})

	t.Run("sequential generation", func(t *testing.T) {
		t.Parallel()

		ds, err := dataset.Build(dataset.NewRegistry(newFakeProvider("name")), dataset.Schema{"nome"}, 3)
		require.NoError(t, err)

		assert.Equal(t, []map[string]any{
			{"nome": "name-1"},
			{"nome": "name-2"},
			{"nome": "name-3"},
		}, toMaps(ds))
	})

	t.Run("failing generator aborts", func(t *testing.T) {
		t.Parallel()

		ds, err := dataset.Build(dataset.NewRegistry(newFakeProvider("broken")), dataset.Schema{"broken"}, 3)
		assert.ErrorIs(t, err, errBroken)
		assert.Nil(t, ds)
	})
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	t.Run("same seed same dataset", func(t *testing.T) {
		t.Parallel()

		schema := dataset.Schema{"nome", "email"}

		ds0, err := dataset.Build(seededRegistry(t, "en_US", 42), schema, 2)
		require.NoError(t, err)
		ds1, err := dataset.Build(seededRegistry(t, "en_US", 42), schema, 2)
		require.NoError(t, err)

		if diff := cmp.Diff(toMaps(ds0), toMaps(ds1)); diff != "" {
			t.Errorf("datasets differ (-first +second):\n%s", diff)
		}

		for _, record := range ds0 {
			assert.Equal(t, []string{"nome", "email"}, record.Keys())

			for _, key := range record.Keys() {
				val, _ := record.Get(key)
				assert.IsType(t, "", val)
				assert.NotEmpty(t, val)
			}
		}
	})

	t.Run("whole registry", func(t *testing.T) {
		t.Parallel()

		schema := dataset.Schema(dataset.CanonicalFields())

		ds0, err := dataset.Build(seededRegistry(t, "pt_BR", 7), schema, 5)
		require.NoError(t, err)
		ds1, err := dataset.Build(seededRegistry(t, "pt_BR", 7), schema, 5)
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(toMaps(ds0), toMaps(ds1)))
	})
}

func TestUnresolved(t *testing.T) {
	t.Parallel()

	reg := dataset.NewRegistry(newFakeProvider("name", "color"))

	unresolved := dataset.Unresolved(reg, dataset.Schema{"nome", "x", "color", "y", "x"})
	assert.Equal(t, []string{"x", "y"}, unresolved)

	assert.Empty(t, dataset.Unresolved(reg, dataset.Schema{"nome"}))
}
