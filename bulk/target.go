// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bulk

import (
	"context"

	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/ikmak/bulkinsert/bulk/options"
)

// InsertOneModel is a single insert in a batch. Document always has an _id.
type InsertOneModel struct {
	Document bsoncore.Document
}

// Target executes a batch of inserts against a store.
//
// BulkWrite returns a non-nil result when the store acknowledged the batch.
// It returns a nil result and a nil error when opts carries a write concern
// that does not request acknowledgement. Failures of individual writes are
// reported in the result's WriteErrors. An error is returned only when the
// batch as a whole could not be executed.
type Target interface {
	BulkWrite(ctx context.Context, models []InsertOneModel, opts *options.BulkWriteOptions) (*BulkWriteResult, error)
}

// TargetFunc adapts an ordinary function to a Target.
type TargetFunc func(context.Context, []InsertOneModel, *options.BulkWriteOptions) (*BulkWriteResult, error)

// BulkWrite calls f.
func (f TargetFunc) BulkWrite(ctx context.Context, models []InsertOneModel, opts *options.BulkWriteOptions) (*BulkWriteResult, error) {
	return f(ctx, models, opts)
}
