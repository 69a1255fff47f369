package app

import (
	"context"
	"errors"
)

//
// This file contains convenience helpers you can use to easier test
// your calling code relying on this usecase pattern.
//

var ErrUseCaseFailed = errors.New("usecase failed")

// TestRequestHandler turns f into a Request, so a test can inline the behaviour of a use case.
func TestRequestHandler[Req any, Res any](f func(ctx context.Context, req Req) (Res, error)) Request[Req, Res] {
	return requestFunc[Req, Res](f)
}

type requestFunc[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

func (f requestFunc[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	return f(ctx, req)
}

func TestSuccessRequestHandler[Req any, Res any]() Request[Req, Res] {
	return &testSuccessRequestHandler[Req, Res]{}
}

type testSuccessRequestHandler[Req any, Res any] struct{}

func (h *testSuccessRequestHandler[Req, Res]) H(_ context.Context, _ Req) (Res, error) { //nolint:ireturn // valid use of generics
	var result Res

	return result, nil
}

func TestFailureRequestHandler[Req any, Res any]() Request[Req, Res] {
	return &testFailureRequestHandler[Req, Res]{}
}

type testFailureRequestHandler[Req any, Res any] struct{}

func (h *testFailureRequestHandler[Req, Res]) H(_ context.Context, _ Req) (Res, error) { //nolint:ireturn // valid use of generics
	var result Res

	return result, ErrUseCaseFailed
}

// TestQueryHandler turns f into a Query, so a test can inline the behaviour of a use case.
func TestQueryHandler[Q any, Res any](f func(ctx context.Context, query Q) (Res, error)) Query[Q, Res] {
	return queryFunc[Q, Res](f)
}

type queryFunc[Q any, Res any] func(ctx context.Context, query Q) (Res, error)

func (f queryFunc[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn // valid use of generics
	return f(ctx, query)
}

func TestSuccessQueryHandler[Q any, Res any]() Query[Q, Res] {
	return &testSuccessQueryHandler[Q, Res]{}
}

type testSuccessQueryHandler[Q any, Res any] struct{}

func (h *testSuccessQueryHandler[Q, Res]) H(_ context.Context, _ Q) (Res, error) { //nolint:ireturn // valid use of generics
	var result Res

	return result, nil
}
