// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bulk

// BulkWriteResult is the outcome a target reports for an acknowledged batch.
type BulkWriteResult struct {
	// The number of documents inserted.
	InsertedCount int64

	// The number of documents matched by filters in update and replace operations.
	MatchedCount int64

	// The number of documents modified by update and replace operations.
	ModifiedCount int64

	// The number of documents deleted.
	DeletedCount int64

	// The number of documents upserted by update and replace operations.
	UpsertedCount int64

	// A map of operation index to the _id of each upserted document.
	UpsertedIDs map[int64]interface{}

	// Per-write failures, in the order the target reported them.
	WriteErrors WriteErrors

	// The write concern failure, if any.
	WriteConcernError *WriteConcernError
}

// HasWriteErrors reports whether any write in the batch failed or the write
// concern could not be satisfied.
func (r *BulkWriteResult) HasWriteErrors() bool {
	return r != nil && (len(r.WriteErrors) > 0 || r.WriteConcernError != nil)
}

// InsertManyResult is the result of an acknowledged InsertMany.
type InsertManyResult struct {
	// The outcome reported by the target.
	Outcome BulkWriteResult

	// The _id of every appended document, in append order. Documents the target
	// failed to write are included.
	InsertedIDs []interface{}
}

// InsertOneResult is the result of an acknowledged InsertOne.
type InsertOneResult struct {
	// The outcome reported by the target.
	Outcome BulkWriteResult

	// The _id of the document.
	InsertedID interface{}
}

// InsertManyOutcome is returned by a successful Execute. It is either an
// InsertManyAcknowledged or an InsertManyUnacknowledged.
type InsertManyOutcome interface {
	Acknowledged() bool
	insertManyOutcome()
}

// InsertManyAcknowledged holds the result of a batch the target acknowledged.
type InsertManyAcknowledged struct {
	Result *InsertManyResult
}

// InsertManyUnacknowledged is returned when the write concern did not request
// acknowledgement, so the target produced no result.
type InsertManyUnacknowledged struct{}

// Acknowledged returns true.
func (InsertManyAcknowledged) Acknowledged() bool { return true }
func (InsertManyAcknowledged) insertManyOutcome() {}

// Acknowledged returns false.
func (InsertManyUnacknowledged) Acknowledged() bool { return false }
func (InsertManyUnacknowledged) insertManyOutcome() {}

// InsertOneOutcome is returned by a successful InsertOne. It is either an
// InsertOneAcknowledged or an InsertOneUnacknowledged.
type InsertOneOutcome interface {
	Acknowledged() bool
	insertOneOutcome()
}

// InsertOneAcknowledged holds the result of an insert the target acknowledged.
type InsertOneAcknowledged struct {
	Result *InsertOneResult
}

// InsertOneUnacknowledged is returned when the write concern did not request
// acknowledgement.
type InsertOneUnacknowledged struct{}

// Acknowledged returns true.
func (InsertOneAcknowledged) Acknowledged() bool { return true }
func (InsertOneAcknowledged) insertOneOutcome()  {}

// Acknowledged returns false.
func (InsertOneUnacknowledged) Acknowledged() bool { return false }
func (InsertOneUnacknowledged) insertOneOutcome()  {}
