// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// DefaultOrdered is the default value for the Ordered option.
var DefaultOrdered = true

// BulkWriteOptions is the configuration a target receives with a batch.
// Ordered is always set. The other fields are nil unless the caller set them,
// in which case the target applies its own default.
type BulkWriteOptions struct {
	Ordered                  *bool
	WriteConcern             *writeconcern.WriteConcern
	BypassDocumentValidation *bool
	Comment                  interface{}
}

// BulkWriteFromInsertMany derives the BulkWriteOptions for a batch of inserts.
func BulkWriteFromInsertMany(args *InsertManyArgs) *BulkWriteOptions {
	ordered := DefaultOrdered
	if args != nil && args.Ordered != nil {
		ordered = *args.Ordered
	}
	bwo := &BulkWriteOptions{Ordered: &ordered}
	if args == nil {
		return bwo
	}
	if args.WriteConcern != nil {
		bwo.WriteConcern = args.WriteConcern
	}
	if args.BypassDocumentValidation != nil {
		bypass := *args.BypassDocumentValidation
		bwo.BypassDocumentValidation = &bypass
	}
	if args.Comment != nil {
		bwo.Comment = args.Comment
	}
	return bwo
}

// IsOrdered reports whether the batch stops at the first failed write.
func (bwo *BulkWriteOptions) IsOrdered() bool {
	if bwo == nil || bwo.Ordered == nil {
		return DefaultOrdered
	}
	return *bwo.Ordered
}

// Acknowledged reports whether the write concern requests acknowledgement. An
// unset write concern is acknowledged.
func (bwo *BulkWriteOptions) Acknowledged() bool {
	if bwo == nil || bwo.WriteConcern == nil {
		return true
	}
	return bwo.WriteConcern.Acknowledged()
}

// Bypass reports whether document validation should be skipped.
func (bwo *BulkWriteOptions) Bypass() bool {
	return bwo != nil && bwo.BypassDocumentValidation != nil && *bwo.BypassDocumentValidation
}
