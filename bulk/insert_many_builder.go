// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bulk

import (
	"context"

	"github.com/ikmak/bulkinsert/bulk/options"
	"github.com/ikmak/bulkinsert/idgen"
)

// InsertManyBuilder accumulates documents for a single batched insert.
//
// The insert models and the inserted _ids are kept in two lists that always
// have the same length. A builder can be executed once; after that Append and
// Execute return ErrBuilderConsumed. An InsertManyBuilder is not safe for
// concurrent use.
type InsertManyBuilder struct {
	opts        *options.BulkWriteOptions
	gen         idgen.Generator
	models      []InsertOneModel
	insertedIDs []interface{}
	consumed    bool
}

// NewInsertManyBuilder creates a builder from the given insert options. Ordered
// defaults to true. The write concern, bypassDocumentValidation and comment
// are forwarded to the target only when set.
func NewInsertManyBuilder(opts ...*options.InsertManyOptions) (*InsertManyBuilder, error) {
	args, err := options.MergeInsertManyOptions(opts...)
	if err != nil {
		return nil, err
	}

	gen := args.IDGenerator
	if gen == nil {
		gen = idgen.Default
	}

	return &InsertManyBuilder{
		opts: options.BulkWriteFromInsertMany(args),
		gen:  gen,
	}, nil
}

// Append adds a copy of doc to the batch. If doc has no _id, a generated one
// is added to the copy. doc may be reused by the caller once Append returns.
// On error the batch is left unchanged.
func (b *InsertManyBuilder) Append(doc interface{}) error {
	if b.consumed {
		return ErrBuilderConsumed
	}

	raw, err := transformBsoncoreDocument(doc)
	if err != nil {
		return err
	}
	withID, id, err := ensureID(raw, b.gen)
	if err != nil {
		return err
	}

	b.models = append(b.models, InsertOneModel{Document: withID})
	b.insertedIDs = append(b.insertedIDs, id)
	return nil
}

// Len returns the number of appended documents.
func (b *InsertManyBuilder) Len() int { return len(b.insertedIDs) }

// InsertedIDs returns a copy of the _ids appended so far.
func (b *InsertManyBuilder) InsertedIDs() []interface{} {
	return append([]interface{}(nil), b.insertedIDs...)
}

// Models returns a copy of the insert models appended so far.
func (b *InsertManyBuilder) Models() []InsertOneModel {
	return append([]InsertOneModel(nil), b.models...)
}

// BulkWriteOptions returns the options that Execute passes to the target.
func (b *InsertManyBuilder) BulkWriteOptions() *options.BulkWriteOptions { return b.opts }

// Execute hands the batch to target.
//
// If the target returns a result, Execute returns an InsertManyAcknowledged
// whose InsertedIDs hold every appended _id in order. If the target returns
// no result, the write was unacknowledged and Execute returns an
// InsertManyUnacknowledged. An error from the target is returned as is.
//
// The builder is consumed whatever the outcome.
func (b *InsertManyBuilder) Execute(ctx context.Context, target Target) (InsertManyOutcome, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	if target == nil {
		return nil, ErrNilTarget
	}
	if ctx == nil {
		ctx = context.Background()
	}

	b.consumed = true
	models, insertedIDs := b.models, b.insertedIDs
	b.models, b.insertedIDs = nil, nil

	res, err := target.BulkWrite(ctx, models, b.opts)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return InsertManyUnacknowledged{}, nil
	}

	return InsertManyAcknowledged{Result: &InsertManyResult{
		Outcome:     *res,
		InsertedIDs: insertedIDs,
	}}, nil
}
