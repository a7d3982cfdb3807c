package mocks

import (
	"context"
	"sync"

	"cowork/infras/otel"
)

type otelImpl struct {
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

// Recorder keeps every scope it opens so tests can inspect span names and traced errors.
type Recorder struct {
	mu     sync.Mutex
	scopes []*Scope
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	scope := newScope(name)

	r.mu.Lock()
	r.scopes = append(r.scopes, scope)
	r.mu.Unlock()

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the first scope opened with name, or nil.
func (r *Recorder) Scope(name string) *Scope {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, scope := range r.scopes {
		if scope.name == name {
			return scope
		}
	}

	return nil
}
