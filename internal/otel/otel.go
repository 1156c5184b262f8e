// Package otel wires OpenTelemetry tracing to the compiler events.
package otel

import (
	"context"
	"time"

	eventbus "github.com/gravelql/gravel/internal/eventbus"
	events "github.com/gravelql/gravel/internal/events"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := &subscriber{tracer: otel.Tracer("gravel")}
	sub.register()

	return tp.Shutdown, nil
}

type subscriber struct {
	tracer trace.Tracer
}

// Each compiler event describes a completed unit of work, so the span is
// started with the event's own start time and ended immediately.
func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.DocumentParsed) {
		_, span := s.startBack(ctx, "compiler.parse", e.Duration)
		span.SetAttributes(
			attribute.Int("document.source_id", int(e.Source)),
			attribute.Bool("document.library", e.Library),
			attribute.Int("document.definitions", e.Definitions),
			attribute.Int("document.diagnostics", e.Diagnostics),
			attribute.Int("compiler.invalidated", e.Invalidated),
		)
		span.End()
	})

	eventbus.Subscribe(func(ctx context.Context, e events.DocumentRemoved) {
		_, span := s.tracer.Start(ctx, "compiler.remove")
		span.SetAttributes(
			attribute.Int("document.source_id", int(e.Source)),
			attribute.Int("compiler.invalidated", e.Invalidated),
		)
		span.End()
	})

	eventbus.Subscribe(func(ctx context.Context, e events.Rebuilt) {
		_, span := s.startBack(ctx, "compiler.rebuild", e.Duration)
		span.SetAttributes(
			attribute.Int("compiler.documents", e.Documents),
			attribute.Int("compiler.rechecked", e.Rechecked),
		)
		span.End()
	})
}

func (s *subscriber) startBack(ctx context.Context, name string, d time.Duration) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithTimestamp(time.Now().Add(-d)))
}
