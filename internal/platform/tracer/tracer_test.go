package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestTracerStartAndEnd(t *testing.T) {
	tr := New("test", WithTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), "identity.sign_in", attribute.String("method", "email"))
	assert.NotNil(t, trace.SpanFromContext(ctx))
	span.SetAttributes(attribute.Bool("success", false))
	span.End(errors.New("provider down"))
}

func TestNewDefaultsToGlobalProvider(t *testing.T) {
	tr := New("zergoqrf/identity")
	_, span := tr.Start(context.Background(), "noop")
	span.End(nil)
}
