package mocks

import (
	"context"
	"trimly/infras/otel"
)

type noopOtel struct{}

func (o *noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// NewOtel returns a tracer whose scopes do nothing, for tests.
func NewOtel() otel.Otel {
	return &noopOtel{}
}
