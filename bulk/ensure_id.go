// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bulk

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/ikmak/bulkinsert/idgen"
)

// transformBsoncoreDocument returns doc as BSON in a buffer owned by the
// caller. Documents that are already BSON are validated and copied, so a
// caller may reuse its buffer after Append. Anything else is marshaled into a
// new buffer.
func transformBsoncoreDocument(doc interface{}) (bsoncore.Document, error) {
	var raw bsoncore.Document
	switch d := doc.(type) {
	case nil:
		return nil, ErrNilDocument
	case bsoncore.Document:
		raw = d
	case bson.Raw:
		raw = bsoncore.Document(d)
	case []byte:
		raw = bsoncore.Document(d)
	default:
		b, err := bson.Marshal(doc)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	if err := raw.Validate(); err != nil {
		return nil, err
	}
	return append(bsoncore.Document(nil), raw...), nil
}

// ensureID returns a document that has an _id together with that _id.
//
// If doc has an _id, doc is returned as is and the _id is decoded into an
// interface{}. Otherwise gen produces a new _id and a new document is built
// with the _id as its first element. doc itself is never modified.
func ensureID(doc bsoncore.Document, gen idgen.Generator) (bsoncore.Document, interface{}, error) {
	val, err := doc.LookupErr("_id")
	switch {
	case err == nil:
		var id interface{}
		if err := (bson.RawValue{Type: val.Type, Value: val.Data}).Unmarshal(&id); err != nil {
			return nil, nil, err
		}
		return doc, id, nil
	case errors.Is(err, bsoncore.ErrElementNotFound):
	default:
		return nil, nil, err
	}

	if gen == nil {
		gen = idgen.Default
	}
	id := gen.Generate()
	t, data, err := bson.MarshalValue(id)
	if err != nil {
		return nil, nil, err
	}

	idx, dst := bsoncore.AppendDocumentStart(make([]byte, 0, len(doc)+len(data)+len("_id")+2))
	dst = bsoncore.AppendValueElement(dst, "_id", bsoncore.Value{Type: t, Data: data})
	// Copy the elements of doc, skipping its length prefix and terminating null.
	dst = append(dst, doc[4:len(doc)-1]...)
	dst, err = bsoncore.AppendDocumentEnd(dst, idx)
	if err != nil {
		return nil, nil, err
	}
	return dst, id, nil
}
