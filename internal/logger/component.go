// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package logger

import "os"

// Keys shared by log messages.
const (
	KeyMessage         = "message"
	KeyCollection      = "collection"
	KeyRequestID       = "requestId"
	KeyDocumentCount   = "documentCount"
	KeyOrdered         = "ordered"
	KeyDurationMS      = "durationMS"
	KeyAcknowledged    = "acknowledged"
	KeyInsertedCount   = "insertedCount"
	KeyWriteErrorCount = "writeErrorCount"
	KeyFailure         = "failure"
)

// Messages logged by the bulk write component.
const (
	BulkWriteStarted   = "Bulk write started"
	BulkWriteSucceeded = "Bulk write succeeded"
	BulkWriteFailed    = "Bulk write failed"
)

// Component is an enumeration representing the "components" which can be
// logged against. A Level can be configured on a per-component basis.
type Component int

const (
	// ComponentAll enables logging for all components.
	ComponentAll Component = iota

	// ComponentBulkWrite enables bulk write logging.
	ComponentBulkWrite
)

const (
	envVarAll       = "BULKINSERT_LOG_ALL"
	envVarBulkWrite = "BULKINSERT_LOG_BULK_WRITE"
)

// componentLevelsFromEnv reads component levels from the environment. A level
// set for ComponentAll applies to every component that has no level of its own.
func componentLevelsFromEnv() map[Component]Level {
	levels := make(map[Component]Level)
	if v, ok := os.LookupEnv(envVarBulkWrite); ok {
		levels[ComponentBulkWrite] = ParseLevel(v)
	}
	if v, ok := os.LookupEnv(envVarAll); ok {
		all := ParseLevel(v)
		levels[ComponentAll] = all
		if _, ok := levels[ComponentBulkWrite]; !ok {
			levels[ComponentBulkWrite] = all
		}
	}
	return levels
}
