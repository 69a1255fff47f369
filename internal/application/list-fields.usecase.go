package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/fakedata/app"
	"github.com/go-arrower/fakedata/dataset"
	"github.com/go-arrower/fakedata/provider"
)

func NewListFieldsQueryHandler() app.Query[ListFieldsQuery, ListFieldsResponse] {
	return app.NewValidatedQuery[ListFieldsQuery, ListFieldsResponse](nil, &listFieldsQueryHandler{})
}

type listFieldsQueryHandler struct{}

type (
	ListFieldsQuery struct {
		Locale string `validate:"required"`
	}
	ListFieldsResponse struct {
		Locale provider.Locale
		// Fields are all canonical fields, sorted by name.
		Fields []Field
		// Capabilities are all provider capabilities of the locale.
		// Each can be used as a field name directly.
		Capabilities []string
	}

	Field struct {
		Name string
		// Capability is the provider capability generating the field.
		// It is empty, if the locale can not serve the field.
		Capability string
	}
)

func (h *listFieldsQueryHandler) H(_ context.Context, query ListFieldsQuery) (ListFieldsResponse, error) {
	p, err := provider.New(query.Locale)
	if err != nil {
		return ListFieldsResponse{}, fmt.Errorf("could not list fields: %w", err)
	}

	reg := dataset.NewRegistry(p)

	names := dataset.CanonicalFields()
	fields := make([]Field, 0, len(names))

	for _, name := range names {
		capability, _ := reg.ResolvedBy(name)
		fields = append(fields, Field{Name: name, Capability: capability})
	}

	return ListFieldsResponse{
		Locale:       p.Locale(),
		Fields:       fields,
		Capabilities: p.Capabilities(),
	}, nil
}
