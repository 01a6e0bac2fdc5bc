// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bulk

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/ikmak/bulkinsert/bulk/options"
	"github.com/ikmak/bulkinsert/event"
	"github.com/ikmak/bulkinsert/idgen"
	"github.com/ikmak/bulkinsert/internal/logger"
	"github.com/ikmak/bulkinsert/tracing"
)

var globalRequestID int64

func nextRequestID() int64 { return atomic.AddInt64(&globalRequestID, 1) }

// Collection is a named handle on a Target. It supplies a default _id
// generator and publishes events and logs for every batch. A Collection is a
// Target itself, so a builder can be executed against it directly.
type Collection struct {
	name    string
	target  Target
	gen     idgen.Generator
	monitor *event.InsertManyMonitor
	logger  *logger.Logger
	tracer  trace.Tracer
}

var _ Target = (*Collection)(nil)

// NewCollection creates a Collection named name that writes through target.
func NewCollection(name string, target Target, opts ...*options.CollectionOptions) *Collection {
	co := options.MergeCollectionOptions(opts...)

	gen := co.IDGenerator
	if gen == nil {
		gen = idgen.Default
	}

	var (
		sink   logger.LogSink
		levels map[logger.Component]logger.Level
	)
	if lo := co.Logger; lo != nil {
		if lo.Sink != nil {
			sink = lo.Sink
		}
		levels = make(map[logger.Component]logger.Level, len(lo.ComponentLevels))
		for component, level := range lo.ComponentLevels {
			levels[logger.Component(component)] = logger.Level(level)
		}
	}

	coll := &Collection{
		name:    name,
		target:  target,
		gen:     gen,
		monitor: co.Monitor,
		logger:  logger.New(sink, levels),
	}
	if co.TracerProvider != nil {
		coll.tracer = tracing.Tracer(co.TracerProvider)
	}
	return coll
}

// Name returns the name of the collection.
func (coll *Collection) Name() string { return coll.name }

// BulkWrite forwards the batch to the underlying target. The target's result
// and error are returned unchanged. With a tracer provider the target receives
// a context carrying the batch span.
func (coll *Collection) BulkWrite(ctx context.Context, models []InsertOneModel, opts *options.BulkWriteOptions) (*BulkWriteResult, error) {
	if coll.target == nil {
		return nil, ErrNilTarget
	}

	requestID := nextRequestID()
	ordered := opts.IsOrdered()
	start := time.Now()

	started := &event.InsertManyStartedEvent{
		RequestID:     requestID,
		Collection:    coll.name,
		DocumentCount: len(models),
		Ordered:       ordered,
	}
	var span trace.Span
	if coll.tracer != nil {
		ctx, span = tracing.Start(ctx, coll.tracer, started)
	}
	if coll.monitor != nil && coll.monitor.Started != nil {
		coll.monitor.Started(ctx, started)
	}
	coll.logger.Print(logger.LevelDebug, logger.ComponentBulkWrite, logger.BulkWriteStarted,
		logger.KeyCollection, coll.name,
		logger.KeyRequestID, requestID,
		logger.KeyDocumentCount, len(models),
		logger.KeyOrdered, ordered,
	)

	res, err := coll.target.BulkWrite(ctx, models, opts)
	finished := event.InsertManyFinishedEvent{
		RequestID:  requestID,
		Collection: coll.name,
		Duration:   time.Since(start),
	}

	if err != nil {
		failed := &event.InsertManyFailedEvent{
			InsertManyFinishedEvent: finished,
			Failure:                 err,
		}
		if span != nil {
			tracing.Fail(span, failed)
		}
		if coll.monitor != nil && coll.monitor.Failed != nil {
			coll.monitor.Failed(ctx, failed)
		}
		coll.logger.Error(err, logger.ComponentBulkWrite, logger.BulkWriteFailed,
			logger.KeyCollection, coll.name,
			logger.KeyRequestID, requestID,
			logger.KeyDurationMS, finished.Duration.Milliseconds(),
		)
		return nil, err
	}

	succeeded := &event.InsertManySucceededEvent{
		InsertManyFinishedEvent: finished,
		Acknowledged:            res != nil,
	}
	if res != nil {
		succeeded.InsertedCount = res.InsertedCount
		succeeded.WriteErrorCount = int64(len(res.WriteErrors))
	}
	if span != nil {
		tracing.End(span, succeeded)
	}
	if coll.monitor != nil && coll.monitor.Succeeded != nil {
		coll.monitor.Succeeded(ctx, succeeded)
	}
	coll.logger.Print(logger.LevelInfo, logger.ComponentBulkWrite, logger.BulkWriteSucceeded,
		logger.KeyCollection, coll.name,
		logger.KeyRequestID, requestID,
		logger.KeyDurationMS, finished.Duration.Milliseconds(),
		logger.KeyAcknowledged, succeeded.Acknowledged,
		logger.KeyInsertedCount, succeeded.InsertedCount,
		logger.KeyWriteErrorCount, succeeded.WriteErrorCount,
	)
	return res, nil
}

// InsertMany inserts documents as a single batch. Unless opts sets a
// generator, the collection's generator supplies missing _ids.
func (coll *Collection) InsertMany(ctx context.Context, documents []interface{},
	opts ...*options.InsertManyOptions) (InsertManyOutcome, error) {

	imOpts := append([]*options.InsertManyOptions{options.InsertMany().SetIDGenerator(coll.gen)}, opts...)
	b, err := NewInsertManyBuilder(imOpts...)
	if err != nil {
		return nil, err
	}
	for _, doc := range documents {
		if err := b.Append(doc); err != nil {
			return nil, err
		}
	}
	return b.Execute(ctx, coll)
}

// InsertOne inserts a single document.
func (coll *Collection) InsertOne(ctx context.Context, document interface{},
	opts ...*options.InsertOneOptions) (InsertOneOutcome, error) {

	imo, err := options.InsertManyFromInsertOne(opts...)
	if err != nil {
		return nil, err
	}
	outcome, err := coll.InsertMany(ctx, []interface{}{document}, imo)
	if err != nil {
		return nil, err
	}

	ack, ok := outcome.(InsertManyAcknowledged)
	if !ok {
		return InsertOneUnacknowledged{}, nil
	}
	return InsertOneAcknowledged{Result: &InsertOneResult{
		Outcome:    ack.Result.Outcome,
		InsertedID: ack.Result.InsertedIDs[0],
	}}, nil
}
