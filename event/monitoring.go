// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package event defines the events published while a batch of inserts is
// handed to a storage target.
package event // import "github.com/ikmak/bulkinsert/event"

import (
	"context"
	"time"
)

// InsertManyStartedEvent represents an event generated when a batch is handed
// to a target.
type InsertManyStartedEvent struct {
	RequestID     int64
	Collection    string
	DocumentCount int
	Ordered       bool
}

// InsertManyFinishedEvent represents a generic batch finishing.
type InsertManyFinishedEvent struct {
	RequestID  int64
	Collection string
	Duration   time.Duration
}

// InsertManySucceededEvent represents an event generated when a target
// returns without error. Acknowledged is false when the write concern did not
// request acknowledgement, in which case the counts are zero.
type InsertManySucceededEvent struct {
	InsertManyFinishedEvent
	Acknowledged    bool
	InsertedCount   int64
	WriteErrorCount int64
}

// InsertManyFailedEvent represents an event generated when a target returns
// an error.
type InsertManyFailedEvent struct {
	InsertManyFinishedEvent
	Failure error
}

// InsertManyMonitor represents a monitor that is triggered for different
// events. Any of its functions may be nil.
type InsertManyMonitor struct {
	Started   func(context.Context, *InsertManyStartedEvent)
	Succeeded func(context.Context, *InsertManySucceededEvent)
	Failed    func(context.Context, *InsertManyFailedEvent)
}

// Combine returns a monitor that forwards every event to each of monitors in
// order. Nil monitors are skipped.
func Combine(monitors ...*InsertManyMonitor) *InsertManyMonitor {
	var ms []*InsertManyMonitor
	for _, m := range monitors {
		if m != nil {
			ms = append(ms, m)
		}
	}
	return &InsertManyMonitor{
		Started: func(ctx context.Context, evt *InsertManyStartedEvent) {
			for _, m := range ms {
				if m.Started != nil {
					m.Started(ctx, evt)
				}
			}
		},
		Succeeded: func(ctx context.Context, evt *InsertManySucceededEvent) {
			for _, m := range ms {
				if m.Succeeded != nil {
					m.Succeeded(ctx, evt)
				}
			}
		},
		Failed: func(ctx context.Context, evt *InsertManyFailedEvent) {
			for _, m := range ms {
				if m.Failed != nil {
					m.Failed(ctx, evt)
				}
			}
		},
	}
}
