package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/fakedata/dataset"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("bind first available capability", func(t *testing.T) {
		t.Parallel()

		reg := dataset.NewRegistry(newFakeProvider("name", "cellphone_number", "phone_number"))

		by, ok := reg.ResolvedBy("celular")
		assert.True(t, ok)
		assert.Equal(t, "cellphone_number", by)

		by, ok = reg.ResolvedBy("telefone")
		assert.True(t, ok)
		assert.Equal(t, "phone_number", by)
	})

	t.Run("fall back to the next capability", func(t *testing.T) {
		t.Parallel()

		reg := dataset.NewRegistry(newFakeProvider("phone_number"))

		by, ok := reg.ResolvedBy("celular")
		assert.True(t, ok)
		assert.Equal(t, "phone_number", by)
	})

	t.Run("leave out fields no capability serves", func(t *testing.T) {
		t.Parallel()

		reg := dataset.NewRegistry(newFakeProvider("name"))

		assert.Equal(t, []string{"nome"}, reg.Names())

		_, ok := reg.Lookup("cpf")
		assert.False(t, ok)
	})

	t.Run("empty provider", func(t *testing.T) {
		t.Parallel()

		reg := dataset.NewRegistry(newFakeProvider())
		assert.Empty(t, reg.Names())
	})
}

func TestRegistry_Locales(t *testing.T) {
	t.Parallel()

	t.Run("pt_BR serves every canonical field", func(t *testing.T) {
		t.Parallel()

		reg := seededRegistry(t, "pt_BR", 1)
		assert.Equal(t, dataset.CanonicalFields(), reg.Names())

		by, _ := reg.ResolvedBy("cpf")
		assert.Equal(t, "cpf", by)
	})

	t.Run("en_US falls back for brazilian fields", func(t *testing.T) {
		t.Parallel()

		reg := seededRegistry(t, "en_US", 1)

		by, _ := reg.ResolvedBy("cpf")
		assert.Equal(t, "ssn", by)

		by, _ = reg.ResolvedBy("celular")
		assert.Equal(t, "phone_number", by)

		by, _ = reg.ResolvedBy("bairro")
		assert.Equal(t, "secondary_address", by)

		_, ok := reg.Lookup("rg")
		assert.False(t, ok, "rg has no equivalent outside of Brazil")
	})
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	reg := dataset.NewRegistry(newFakeProvider("name", "color"))

	_, ok := reg.Resolve("nome")
	assert.True(t, ok, "registered field")

	_, ok = reg.Resolve("color")
	assert.True(t, ok, "capability with the field's name")

	_, ok = reg.Resolve("campo_inexistente")
	assert.False(t, ok)
}
