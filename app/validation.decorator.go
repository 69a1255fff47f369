package app

import (
	"context"

	"github.com/go-playground/validator/v10"

	ctx2 "github.com/go-arrower/fakedata/ctx"
)

const CtxValidated ctx2.CTXKey = "fakedata.validated"

// PassedValidation is a helper giving you feedback, if a request passed validation of this decorator.
// Use it in case you want to ensure that this decorator was called before continuing with your business logic.
func PassedValidation(ctx context.Context) bool {
	if v, ok := ctx.Value(CtxValidated).(bool); ok {
		return v
	}

	return false
}

func NewValidatedRequest[Req any, Res any](validate *validator.Validate, req Request[Req, Res]) Request[Req, Res] {
	if validate == nil {
		validate = validator.New()
	}

	return &requestValidatingDecorator[Req, Res]{
		validate: validate,
		base:     req,
	}
}

type requestValidatingDecorator[Req any, Res any] struct {
	validate *validator.Validate
	base     Request[Req, Res]
}

func (d *requestValidatingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn,lll // valid use of generics
	err := d.validate.Struct(req)
	if err != nil {
		return *new(Res), err //nolint:wrapcheck // validation error is returned on purpose
	}

	return d.base.H(context.WithValue(ctx, CtxValidated, true), req) //nolint:wrapcheck // decorate but not change anything
}

func NewValidatedQuery[Q any, Res any](validate *validator.Validate, query Query[Q, Res]) Query[Q, Res] {
	if validate == nil {
		validate = validator.New()
	}

	return &queryValidatingDecorator[Q, Res]{
		validate: validate,
		base:     query,
	}
}

type queryValidatingDecorator[Q any, Res any] struct {
	validate *validator.Validate
	base     Query[Q, Res]
}

func (d *queryValidatingDecorator[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn,lll // valid use of generics
	err := d.validate.Struct(query)
	if err != nil {
		return *new(Res), err //nolint:wrapcheck // validation error is returned on purpose
	}

	return d.base.H(context.WithValue(ctx, CtxValidated, true), query) //nolint:wrapcheck,lll // decorate but not change anything
}
