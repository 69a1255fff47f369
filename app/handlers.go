// Package app provides common decorators for use cases in the application layer.
package app

import (
	"context"
	"fmt"
)

// Request can produce side effects and return data.
type Request[Req any, Res any] interface {
	H(ctx context.Context, req Req) (Res, error)
}

// Query does not produce side effects and returns data.
type Query[Q any, Res any] interface {
	H(ctx context.Context, query Q) (Res, error)
}

// commandName extracts a printable name from cmd in the format of: packageName.structName.
// The use case function can not be used, as it is anonymous / a closure returned by the use case constructor.
func commandName(cmd any) string {
	return fmt.Sprintf("%T", cmd)
}
