// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bulk

import (
	"bytes"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNilDocument is returned when a nil document is appended.
var ErrNilDocument = errors.New("document is nil")

// ErrBuilderConsumed is returned when an InsertManyBuilder is used after
// Execute has been called on it.
var ErrBuilderConsumed = errors.New("insert many builder has already been executed")

// ErrNilTarget is returned when Execute is called without a target.
var ErrNilTarget = errors.New("target is nil")

// BulkWriteError is a non-write concern failure of a single write in a batch.
// Index is the position of the write in the batch.
type BulkWriteError struct {
	Index   int
	Code    int
	Message string
	Details bson.Raw
}

func (bwe BulkWriteError) Error() string {
	return fmt.Sprintf("write error at index %d: (%d) %s", bwe.Index, bwe.Code, bwe.Message)
}

// WriteConcernError is a write concern failure that occurred as a result of a
// write operation.
type WriteConcernError struct {
	Name    string
	Code    int
	Message string
	Details bson.Raw
}

func (wce WriteConcernError) Error() string {
	if wce.Name != "" {
		return fmt.Sprintf("(%v) %v", wce.Name, wce.Message)
	}
	return wce.Message
}

// WriteErrors is a group of per-write failures.
type WriteErrors []BulkWriteError

func (we WriteErrors) Error() string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "write errors: [")
	for idx, err := range we {
		if idx != 0 {
			fmt.Fprintf(&buf, ", ")
		}
		fmt.Fprintf(&buf, "{%s}", err)
	}
	fmt.Fprint(&buf, "]")
	return buf.String()
}

// Server error codes for per-write failures reported by the targets.
const (
	DuplicateKeyCode       = 11000
	FailedValidationCode   = 121
	duplicateKeyLegacyCode = 11001
	duplicateKeyCappedCode = 12582
)

// IsDuplicateKeyError reports whether bwe was caused by an _id or unique index
// that already holds the value.
func IsDuplicateKeyError(bwe BulkWriteError) bool {
	switch bwe.Code {
	case DuplicateKeyCode, duplicateKeyLegacyCode, duplicateKeyCappedCode:
		return true
	}
	return false
}
