package mocks

import (
	"sync"

	"cowork/infras/otel"
)

// Scope is a no-op span that remembers what was recorded on it.
type Scope struct {
	mu         sync.Mutex
	name       string
	errors     []error
	attributes map[string]any
	ended      bool
}

// AddEvent implements otel.Scope.
func (s *Scope) AddEvent(_ string) {

}

// End implements otel.Scope.
func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ended = true
}

// SetAttribute implements otel.Scope.
func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attributes[key] = value
}

// SetAttributes implements otel.Scope.
func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

// TraceError implements otel.Scope.
func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = append(s.errors, err)
}

// TraceIfError implements otel.Scope.
func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) Name() string {
	return s.name
}

func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]error(nil), s.errors...)
}

func (s *Scope) Attribute(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attributes[key]
}

func (s *Scope) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}

func NewScope() otel.Scope {
	return newScope("")
}

func newScope(name string) *Scope {
	return &Scope{
		name:       name,
		attributes: map[string]any{},
	}
}
