// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package tracing records OpenTelemetry spans for batched inserts.
package tracing

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ikmak/bulkinsert/event"
)

// ScopeName is the instrumentation scope of the spans.
const ScopeName = "github.com/ikmak/bulkinsert/tracing"

// Span attribute keys.
const (
	DBSystemKey        = attribute.Key("db.system")
	DBCollectionKey    = attribute.Key("db.collection.name")
	DBOperationKey     = attribute.Key("db.operation.name")
	DocumentCountKey   = attribute.Key("bulkinsert.document_count")
	OrderedKey         = attribute.Key("bulkinsert.ordered")
	AcknowledgedKey    = attribute.Key("bulkinsert.acknowledged")
	InsertedCountKey   = attribute.Key("bulkinsert.inserted_count")
	WriteErrorCountKey = attribute.Key("bulkinsert.write_error_count")
)

// Tracer returns the tracer of this package from tp. A nil tp means the global
// TracerProvider.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(ScopeName)
}

// Start opens the span of a batch. The returned context carries the span, so
// spans started by the target with it become children of the batch span.
func Start(ctx context.Context, tracer trace.Tracer, evt *event.InsertManyStartedEvent) (context.Context, trace.Span) {
	return tracer.Start(ctx, "insertMany "+evt.Collection,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			DBSystemKey.String("bulkinsert"),
			DBCollectionKey.String(evt.Collection),
			DBOperationKey.String("insertMany"),
			DocumentCountKey.Int(evt.DocumentCount),
			OrderedKey.Bool(evt.Ordered),
		),
	)
}

// End records the result counts on span and ends it.
func End(span trace.Span, evt *event.InsertManySucceededEvent) {
	span.SetAttributes(
		AcknowledgedKey.Bool(evt.Acknowledged),
		InsertedCountKey.Int64(evt.InsertedCount),
		WriteErrorCountKey.Int64(evt.WriteErrorCount),
	)
	span.End()
}

// Fail records the failure on span and ends it.
func Fail(span trace.Span, evt *event.InsertManyFailedEvent) {
	span.RecordError(evt.Failure)
	span.SetStatus(codes.Error, evt.Failure.Error())
	span.End()
}

type monitor struct {
	sync.Mutex
	tracer trace.Tracer
	spans  map[int64]trace.Span
}

// NewMonitor returns an event monitor that starts a span when a batch is
// handed to a target and ends it when the target returns. A nil tp means the
// global TracerProvider.
//
// A monitor cannot hand its span to the target, so spans started by the target
// are not children of it. Use options.CollectionOptions.SetTracerProvider for
// that instead.
func NewMonitor(tp trace.TracerProvider) *event.InsertManyMonitor {
	m := &monitor{
		tracer: Tracer(tp),
		spans:  make(map[int64]trace.Span),
	}
	return &event.InsertManyMonitor{
		Started:   m.Started,
		Succeeded: m.Succeeded,
		Failed:    m.Failed,
	}
}

func (m *monitor) Started(ctx context.Context, evt *event.InsertManyStartedEvent) {
	_, span := Start(ctx, m.tracer, evt)

	m.Lock()
	m.spans[evt.RequestID] = span
	m.Unlock()
}

func (m *monitor) Succeeded(_ context.Context, evt *event.InsertManySucceededEvent) {
	if span, ok := m.take(evt.RequestID); ok {
		End(span, evt)
	}
}

func (m *monitor) Failed(_ context.Context, evt *event.InsertManyFailedEvent) {
	if span, ok := m.take(evt.RequestID); ok {
		Fail(span, evt)
	}
}

func (m *monitor) take(requestID int64) (trace.Span, bool) {
	m.Lock()
	defer m.Unlock()
	span, ok := m.spans[requestID]
	if ok {
		delete(m.spans, requestID)
	}
	return span, ok
}
