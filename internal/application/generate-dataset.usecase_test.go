package application_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/fakedata/alog"
	"github.com/go-arrower/fakedata/dataset"
	"github.com/go-arrower/fakedata/internal/application"
	"github.com/go-arrower/fakedata/output"
	"github.com/go-arrower/fakedata/provider"
)

func TestGenerateDatasetRequestHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("default csv", func(t *testing.T) {
		t.Parallel()

		store := newMemoryStorage()
		handler := application.NewGenerateDatasetRequestHandler(alog.NewNoop(), store, now)

		res, err := handler.H(ctx, application.GenerateDatasetRequest{
			Rows:          100,
			Locale:        "pt_BR",
			Format:        output.CSV,
			Schema:        dataset.DefaultSchema(),
			Seed:          seed(1),
			ReferenceTime: refTime,
		})
		require.NoError(t, err)

		assert.Equal(t, "fake_data_pt_BR_20240315_143005.csv", res.Output)
		assert.Equal(t, provider.PtBR, res.Locale)
		assert.Equal(t, output.CSV, res.Format)
		assert.Equal(t, dataset.DefaultSchema(), res.Fields)
		assert.Equal(t, 100, res.Rows)
		assert.Empty(t, res.Unresolved)

		content, ok := store.file(res.Output)
		require.True(t, ok)

		rows, err := csv.NewReader(strings.NewReader(content)).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 101)
		assert.Equal(t, []string(dataset.DefaultSchema()), rows[0])
	})

	t.Run("json with unknown field", func(t *testing.T) {
		t.Parallel()

		store := newMemoryStorage()
		logger := alog.Test(t)
		handler := application.NewGenerateDatasetRequestHandler(logger, store, now)

		res, err := handler.H(ctx, application.GenerateDatasetRequest{
			Rows:   3,
			Locale: "pt_BR",
			Format: output.JSON,
			Schema: []string{"nome", "campo_inexistente"},
			Output: "dados.json",
		})
		require.NoError(t, err)

		assert.Equal(t, "dados.json", res.Output)
		assert.Equal(t, []string{"campo_inexistente"}, res.Unresolved)
		logger.Contains("campo_inexistente")

		content, _ := store.file("dados.json")

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(content), &got))
		require.Len(t, got, 3)

		for _, obj := range got {
			assert.Contains(t, obj, "campo_inexistente")
			assert.Nil(t, obj["campo_inexistente"])
			assert.NotEmpty(t, obj["nome"])
		}
	})

	t.Run("zero rows", func(t *testing.T) {
		t.Parallel()

		store := newMemoryStorage()
		handler := application.NewGenerateDatasetRequestHandler(alog.NewNoop(), store, now)

		res, err := handler.H(ctx, application.GenerateDatasetRequest{
			Locale: "en_US",
			Format: output.JSON,
			Schema: []string{"nome"},
		})
		require.NoError(t, err)

		assert.Equal(t, 0, res.Rows)
		assert.Equal(t, "fake_data_en_US_20240315_143005.json", res.Output)

		content, _ := store.file(res.Output)
		assert.Equal(t, "[]\n", content)
	})

	t.Run("same seed same output", func(t *testing.T) {
		t.Parallel()

		for _, format := range output.Formats() {
			store := newMemoryStorage()
			handler := application.NewGenerateDatasetRequestHandler(alog.NewNoop(), store, now)

			req := application.GenerateDatasetRequest{
				Rows:          20,
				Locale:        "en_US",
				Format:        format,
				Schema:        []string{"nome", "email", "celular", "preco", "data"},
				Seed:          seed(42),
				ReferenceTime: refTime,
			}

			req.Output = "first"
			_, err := handler.H(ctx, req)
			require.NoError(t, err)

			req.Output = "second"
			_, err = handler.H(ctx, req)
			require.NoError(t, err)

			first, _ := store.file("first")
			second, _ := store.file("second")
			assert.Equal(t, first, second, format)
		}
	})

	t.Run("unsupported locale", func(t *testing.T) {
		t.Parallel()

		store := newMemoryStorage()
		handler := application.NewGenerateDatasetRequestHandler(alog.NewNoop(), store, now)

		_, err := handler.H(ctx, application.GenerateDatasetRequest{
			Rows:   10,
			Locale: "xx_YY",
			Format: output.CSV,
			Schema: []string{"nome"},
		})
		assert.ErrorIs(t, err, application.ErrGenerateFailed)
		assert.ErrorIs(t, err, provider.ErrMissingDependency)
		assert.Equal(t, 0, store.total(), "nothing is written")
	})

	t.Run("locale as given in the file name", func(t *testing.T) {
		t.Parallel()

		store := newMemoryStorage()
		handler := application.NewGenerateDatasetRequestHandler(alog.NewNoop(), store, now)

		res, err := handler.H(ctx, application.GenerateDatasetRequest{
			Locale: " pt-BR ",
			Format: output.JSON,
			Schema: []string{"nome"},
		})
		require.NoError(t, err)

		assert.Equal(t, provider.PtBR, res.Locale)
		assert.Equal(t, "fake_data_pt-BR_20240315_143005.json", res.Output)
	})

	t.Run("locale of another region", func(t *testing.T) {
		t.Parallel()

		store := newMemoryStorage()
		handler := application.NewGenerateDatasetRequestHandler(alog.NewNoop(), store, now)

		for _, locale := range []string{"pt_PT", "en_GB"} {
			_, err := handler.H(ctx, application.GenerateDatasetRequest{
				Rows:   1,
				Locale: locale,
				Format: output.CSV,
				Schema: []string{"nome"},
			})
			assert.ErrorIs(t, err, provider.ErrMissingDependency, locale)
		}

		assert.Equal(t, 0, store.total(), "nothing is written")
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()

		handler := application.NewGenerateDatasetRequestHandler(alog.NewNoop(), newMemoryStorage(), now)

		_, err := handler.H(ctx, application.GenerateDatasetRequest{
			Locale: "pt_BR",
			Format: "xml",
			Schema: []string{"nome"},
		})
		assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
	})

	t.Run("blank schema", func(t *testing.T) {
		t.Parallel()

		handler := application.NewGenerateDatasetRequestHandler(alog.NewNoop(), newMemoryStorage(), now)

		_, err := handler.H(ctx, application.GenerateDatasetRequest{
			Locale: "pt_BR",
			Format: output.CSV,
			Schema: []string{" ", ""},
		})
		assert.ErrorIs(t, err, dataset.ErrEmptySchema)
	})

	t.Run("invalid request", func(t *testing.T) {
		t.Parallel()

		handler := application.NewGenerateDatasetRequestHandler(alog.NewNoop(), newMemoryStorage(), now)

		_, err := handler.H(ctx, application.GenerateDatasetRequest{Rows: -1, Locale: "pt_BR", Format: output.CSV})

		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	})

	t.Run("storage fails", func(t *testing.T) {
		t.Parallel()

		store := newMemoryStorage()
		store.err = errStorage
		handler := application.NewGenerateDatasetRequestHandler(alog.NewNoop(), store, now)

		_, err := handler.H(ctx, application.GenerateDatasetRequest{
			Rows:   1,
			Locale: "pt_BR",
			Format: output.CSV,
			Schema: []string{"nome"},
		})
		assert.ErrorIs(t, err, application.ErrGenerateFailed)
		assert.ErrorIs(t, err, errStorage)
	})
}

func TestDefaultOutputName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fake_data_pt_BR_20240315_143005.csv", application.DefaultOutputName("pt_BR", output.CSV, now()))
	assert.Equal(t, "fake_data_en_US_20240315_143005.yaml", application.DefaultOutputName("en_US", output.YAML, now()))
}
