// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/ikmak/bulkinsert/event"
	"github.com/ikmak/bulkinsert/idgen"
)

// CollectionOptions represents options that can be used to configure a
// Collection.
type CollectionOptions struct {
	// The generator used for documents without an _id when the insert options
	// do not set one. The default is idgen.Default.
	IDGenerator idgen.Generator

	// The monitor notified of every batch handed to the target.
	Monitor *event.InsertManyMonitor

	// Logger configures structured logging. Logging is off unless levels are
	// set here or in the environment.
	Logger *LoggerOptions

	// TracerProvider, when set, opens a span around every batch and passes
	// its context to the target.
	TracerProvider trace.TracerProvider
}

// Collection creates a new CollectionOptions instance.
func Collection() *CollectionOptions {
	return &CollectionOptions{}
}

// SetIDGenerator sets the value for the IDGenerator field.
func (c *CollectionOptions) SetIDGenerator(gen idgen.Generator) *CollectionOptions {
	c.IDGenerator = gen
	return c
}

// SetMonitor sets the value for the Monitor field.
func (c *CollectionOptions) SetMonitor(m *event.InsertManyMonitor) *CollectionOptions {
	c.Monitor = m
	return c
}

// SetLoggerOptions sets the value for the Logger field.
func (c *CollectionOptions) SetLoggerOptions(lo *LoggerOptions) *CollectionOptions {
	c.Logger = lo
	return c
}

// SetTracerProvider sets the value for the TracerProvider field.
func (c *CollectionOptions) SetTracerProvider(tp trace.TracerProvider) *CollectionOptions {
	c.TracerProvider = tp
	return c
}

// MergeCollectionOptions combines the given *CollectionOptions into a single
// *CollectionOptions in a last one wins fashion.
func MergeCollectionOptions(opts ...*CollectionOptions) *CollectionOptions {
	c := Collection()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.IDGenerator != nil {
			c.IDGenerator = opt.IDGenerator
		}
		if opt.Monitor != nil {
			c.Monitor = opt.Monitor
		}
		if opt.Logger != nil {
			c.Logger = opt.Logger
		}
		if opt.TracerProvider != nil {
			c.TracerProvider = opt.TracerProvider
		}
	}
	return c
}
