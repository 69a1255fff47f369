package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-arrower/fakedata/alog"
	"github.com/go-arrower/fakedata/app"
	"github.com/go-arrower/fakedata/dataset"
	"github.com/go-arrower/fakedata/output"
	"github.com/go-arrower/fakedata/provider"
	"github.com/go-arrower/fakedata/storage"
)

var (
	ErrGenerateFailed = errors.New("generate dataset failed")
	ErrNotValidated   = errors.New("request not validated")
)

func NewGenerateDatasetRequestHandler(
	logger alog.Logger,
	store storage.Storage,
	now func() time.Time,
) app.Request[GenerateDatasetRequest, GenerateDatasetResponse] {
	if now == nil {
		now = time.Now
	}

	return app.NewValidatedRequest[GenerateDatasetRequest, GenerateDatasetResponse](nil, &generateDatasetRequestHandler{
		logger: logger,
		store:  store,
		now:    now,
	})
}

type generateDatasetRequestHandler struct {
	logger alog.Logger
	store  storage.Storage
	now    func() time.Time
}

type (
	GenerateDatasetRequest struct {
		Rows   int           `validate:"gte=0"`
		Locale string        `validate:"required"`
		Format output.Format `validate:"required"`
		Schema []string      `validate:"min=1"`
		// Output is the destination path. If empty, DefaultOutputName is used.
		Output string
		// Seed makes the dataset reproducible. nil seeds from a random source.
		Seed *int64
		// ReferenceTime is the upper bound of relative dates. Zero means today.
		ReferenceTime time.Time
	}
	GenerateDatasetResponse struct {
		Output     string
		Locale     provider.Locale
		Format     output.Format
		Fields     dataset.Schema
		Rows       int
		Unresolved []string
	}
)

func (h *generateDatasetRequestHandler) H(ctx context.Context, req GenerateDatasetRequest) (GenerateDatasetResponse, error) {
	if !app.PassedValidation(ctx) {
		return GenerateDatasetResponse{}, fmt.Errorf("%w: %w", ErrGenerateFailed, ErrNotValidated)
	}

	schema, err := dataset.NewSchema(req.Schema)
	if err != nil {
		return GenerateDatasetResponse{}, fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	format, err := output.ParseFormat(string(req.Format))
	if err != nil {
		return GenerateDatasetResponse{}, fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	// fail before any output is written, if the locale is not supported
	p, err := provider.New(req.Locale, providerOptions(req)...)
	if err != nil {
		return GenerateDatasetResponse{}, fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	ctx = alog.AddAttrs(ctx, slog.String("locale", string(p.Locale())), slog.String("format", string(format)))

	reg := dataset.NewRegistry(p)

	unresolved := dataset.Unresolved(reg, schema)
	for _, field := range unresolved {
		h.logger.DebugContext(ctx, "field has no generator and will be empty", slog.String("field", field))
	}

	ds, err := dataset.Build(reg, schema, req.Rows)
	if err != nil {
		return GenerateDatasetResponse{}, fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	var buf bytes.Buffer
	if err = output.Write(&buf, ds, schema, format); err != nil {
		return GenerateDatasetResponse{}, fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	path := req.Output
	if path == "" {
		path = DefaultOutputName(strings.TrimSpace(req.Locale), format, h.now())
	}

	if err = h.store.Save(ctx, path, &buf); err != nil {
		return GenerateDatasetResponse{}, fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	h.logger.DebugContext(ctx, "dataset written", slog.String("output", path), slog.Int("rows", len(ds)))

	return GenerateDatasetResponse{
		Output:     path,
		Locale:     p.Locale(),
		Format:     format,
		Fields:     schema,
		Rows:       len(ds),
		Unresolved: unresolved,
	}, nil
}

func providerOptions(req GenerateDatasetRequest) []provider.Option {
	var opts []provider.Option

	if req.Seed != nil {
		opts = append(opts, provider.WithSeed(*req.Seed))
	}

	if !req.ReferenceTime.IsZero() {
		opts = append(opts, provider.WithReferenceTime(req.ReferenceTime))
	}

	return opts
}

// DefaultOutputName returns the file name used if no output is given:
// fake_data_<locale>_<YYYYmmdd_HHMMSS>.<ext>. The locale is embedded as the user wrote it.
func DefaultOutputName(locale string, format output.Format, t time.Time) string {
	return fmt.Sprintf("fake_data_%s_%s.%s", locale, t.Format("20060102_150405"), format.Extension())
}
