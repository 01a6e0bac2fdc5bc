// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bulk turns an ordered list of documents into a single batched
// insert and reports the _id of every document in input order.
//
// An InsertManyBuilder is created from insert options, fed documents with
// Append and consumed by Execute:
//
//	b, err := bulk.NewInsertManyBuilder(options.InsertMany().SetOrdered(false))
//	if err != nil { return err }
//	for _, doc := range docs {
//		if err := b.Append(doc); err != nil { return err }
//	}
//	outcome, err := b.Execute(ctx, target)
//	if err != nil { return err }
//	switch o := outcome.(type) {
//	case bulk.InsertManyAcknowledged:
//		log.Println(o.Result.InsertedIDs, o.Result.Outcome.InsertedCount)
//	case bulk.InsertManyUnacknowledged:
//		log.Println("write was not acknowledged")
//	}
//
// Documents without an _id are given one by an idgen.Generator. The
// generated value is both written into the document sent to the target and
// reported in InsertedIDs. Documents that carry an _id keep it.
//
// The target decides how the batch reaches storage. Its per-write failures,
// such as duplicate keys, are reported inside the BulkWriteResult and never
// shorten InsertedIDs. Errors returned by the target are returned unchanged.
// The package retries nothing and sets no timeouts.
package bulk
