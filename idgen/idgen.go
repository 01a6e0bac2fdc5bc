// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package idgen provides generators for the _id values given to documents
// inserted without one.
//
// Every generator returns a fixed-width value that compares with == and is
// unique across processes. The default generator produces BSON ObjectIDs.
package idgen

import (
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Generator produces identifiers for documents that do not carry an _id.
type Generator interface {
	Generate() interface{}
}

// GeneratorFunc adapts an ordinary function to a Generator.
type GeneratorFunc func() interface{}

// Generate calls f.
func (f GeneratorFunc) Generate() interface{} { return f() }

// ObjectID returns a Generator of primitive.ObjectID values. An ObjectID is a
// 4 byte timestamp, a 5 byte process-unique value and a 3 byte counter that
// starts at a random value and wraps around.
func ObjectID() Generator {
	return GeneratorFunc(func() interface{} { return primitive.NewObjectID() })
}

// UUIDv7 returns a Generator of version 7 UUIDs in their canonical 36
// character string form. Version 7 UUIDs sort by creation time.
func UUIDv7() Generator {
	return GeneratorFunc(func() interface{} {
		id, err := uuid.NewV7()
		if err != nil {
			// NewV7 only fails when the random source does.
			return uuid.NewString()
		}
		return id.String()
	})
}

// KSUID returns a Generator of K-Sortable Unique IDentifiers in their 27
// character base62 string form.
func KSUID() Generator {
	return GeneratorFunc(func() interface{} { return ksuid.New().String() })
}

// Default is the Generator used when none is configured.
var Default = ObjectID()

// Named returns the Generator registered under name. The empty string maps to
// the default generator.
func Named(name string) (Generator, bool) {
	switch name {
	case "", "objectid":
		return ObjectID(), true
	case "uuid", "uuidv7":
		return UUIDv7(), true
	case "ksuid":
		return KSUID(), true
	}
	return nil, false
}
