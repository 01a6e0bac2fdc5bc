// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bulk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/ikmak/bulkinsert/idgen"
)

func TestTransformBsoncoreDocument(t *testing.T) {
	raw, err := bson.Marshal(bson.D{{Key: "x", Value: int32(1)}})
	require.NoError(t, err)

	testCases := []struct {
		name    string
		doc     interface{}
		wantErr error
	}{
		{"bson.D", bson.D{{Key: "x", Value: int32(1)}}, nil},
		{"bson.M", bson.M{"x": int32(1)}, nil},
		{"struct", struct {
			X int32 `bson:"x"`
		}{1}, nil},
		{"bson.Raw", bson.Raw(raw), nil},
		{"bsoncore.Document", bsoncore.Document(raw), nil},
		{"[]byte", raw, nil},
		{"nil", nil, ErrNilDocument},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := transformBsoncoreDocument(tc.doc)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, bytes.Equal(raw, got), "expected %v, got %v", bson.Raw(raw), bson.Raw(got))
		})
	}

	t.Run("caller buffer reuse", func(t *testing.T) {
		buf := append([]byte(nil), raw...)
		got, err := transformBsoncoreDocument(bson.Raw(buf))
		require.NoError(t, err)
		for i := range buf {
			buf[i] = 0
		}
		assert.True(t, bytes.Equal(raw, got), "expected %v, got %v", bson.Raw(raw), bson.Raw(got))
	})
	t.Run("invalid bytes", func(t *testing.T) {
		_, err := transformBsoncoreDocument([]byte{0x05, 0x00})
		assert.Error(t, err)
	})
	t.Run("unmarshalable", func(t *testing.T) {
		_, err := transformBsoncoreDocument(make(chan int))
		assert.Error(t, err)
	})
}

func TestEnsureID(t *testing.T) {
	t.Run("existing _id is kept", func(t *testing.T) {
		oid := primitive.NewObjectID()
		testCases := []struct {
			name string
			id   interface{}
		}{
			{"string", "a"},
			{"objectid", oid},
			{"int64", int64(42)},
			{"bool", true},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				doc, err := bson.Marshal(bson.D{{Key: "x", Value: int32(2)}, {Key: "_id", Value: tc.id}})
				require.NoError(t, err)

				got, id, err := ensureID(doc, idgen.GeneratorFunc(func() interface{} {
					t.Fatal("generator called for document with an _id")
					return nil
				}))
				require.NoError(t, err)
				assert.Equal(t, tc.id, id)
				assert.True(t, bytes.Equal(doc, got), "document with _id was changed")
			})
		}
	})

	t.Run("missing _id is generated first", func(t *testing.T) {
		doc, err := bson.Marshal(bson.D{{Key: "x", Value: int32(1)}, {Key: "y", Value: "z"}})
		require.NoError(t, err)
		orig := append([]byte(nil), doc...)

		got, id, err := ensureID(doc, idgen.Default)
		require.NoError(t, err)

		oid, ok := id.(primitive.ObjectID)
		require.True(t, ok, "expected primitive.ObjectID, got %T", id)
		assert.False(t, oid.IsZero())
		assert.Equal(t, orig, []byte(doc), "input document was modified")

		elems, err := got.Elements()
		require.NoError(t, err)
		require.Len(t, elems, 3)
		assert.Equal(t, "_id", elems[0].Key())
		assert.Equal(t, oid, elems[0].Value().ObjectID())
		assert.Equal(t, "x", elems[1].Key())
		assert.Equal(t, "y", elems[2].Key())
	})

	t.Run("string generator", func(t *testing.T) {
		doc, err := bson.Marshal(bson.D{{Key: "x", Value: int32(1)}})
		require.NoError(t, err)

		got, id, err := ensureID(doc, idgen.GeneratorFunc(func() interface{} { return "custom-1" }))
		require.NoError(t, err)
		assert.Equal(t, "custom-1", id)
		assert.Equal(t, "custom-1", got.Lookup("_id").StringValue())
	})

	t.Run("empty document", func(t *testing.T) {
		doc, err := bson.Marshal(bson.D{})
		require.NoError(t, err)

		got, id, err := ensureID(doc, nil)
		require.NoError(t, err)
		require.NoError(t, got.Validate())
		assert.Equal(t, id, got.Lookup("_id").ObjectID())
	})

	t.Run("unmarshalable generated id", func(t *testing.T) {
		doc, err := bson.Marshal(bson.D{})
		require.NoError(t, err)

		_, _, err = ensureID(doc, idgen.GeneratorFunc(func() interface{} { return make(chan int) }))
		assert.Error(t, err)
	})
}
