// Package tracer wraps OpenTelemetry so callers depend on a two-method span API.
package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer starts spans on an OpenTelemetry tracer.
type Tracer struct {
	tracer trace.Tracer
}

// Option configures the Tracer.
type Option func(*Tracer)

// WithTracer injects a pre-configured OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(o *Tracer) {
		o.tracer = t
	}
}

// New uses the global tracer provider unless a tracer is injected.
func New(name string, opts ...Option) *Tracer {
	t := &Tracer{}
	for _, opt := range opts {
		opt(t)
	}
	if t.tracer == nil {
		t.tracer = otel.Tracer(name)
	}
	return t
}

// Start creates a new span with the given name and attributes.
func (t *Tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, *Span) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, &Span{span: span}
}

// Span is an in-flight operation.
type Span struct {
	span trace.Span
}

// End completes the span, recording err when non-nil.
func (s *Span) End(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}

// SetAttributes adds attributes to the span.
func (s *Span) SetAttributes(attrs ...attribute.KeyValue) {
	s.span.SetAttributes(attrs...)
}
