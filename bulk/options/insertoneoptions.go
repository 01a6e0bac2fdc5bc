// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/ikmak/bulkinsert/idgen"
)

// InsertOneArgs represents arguments that can be used to configure an
// InsertOne operation.
type InsertOneArgs struct {
	WriteConcern             *writeconcern.WriteConcern
	BypassDocumentValidation *bool
	Comment                  interface{}
	IDGenerator              idgen.Generator
}

// InsertOneOptions represents functional options that configure an
// InsertOneArgs.
type InsertOneOptions struct {
	Opts []func(*InsertOneArgs) error
}

// InsertOne creates a new InsertOneOptions instance.
func InsertOne() *InsertOneOptions {
	return &InsertOneOptions{}
}

// ArgsSetters returns a list of InsertOneArgs setter functions.
func (ioo *InsertOneOptions) ArgsSetters() []func(*InsertOneArgs) error {
	return ioo.Opts
}

// SetWriteConcern sets the value for the WriteConcern field.
func (ioo *InsertOneOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *InsertOneOptions {
	ioo.Opts = append(ioo.Opts, func(args *InsertOneArgs) error {
		args.WriteConcern = wc
		return nil
	})
	return ioo
}

// SetBypassDocumentValidation sets the value for the BypassDocumentValidation field.
func (ioo *InsertOneOptions) SetBypassDocumentValidation(b bool) *InsertOneOptions {
	ioo.Opts = append(ioo.Opts, func(args *InsertOneArgs) error {
		args.BypassDocumentValidation = &b
		return nil
	})
	return ioo
}

// SetComment sets the value for the Comment field.
func (ioo *InsertOneOptions) SetComment(comment interface{}) *InsertOneOptions {
	ioo.Opts = append(ioo.Opts, func(args *InsertOneArgs) error {
		args.Comment = comment
		return nil
	})
	return ioo
}

// SetIDGenerator sets the value for the IDGenerator field.
func (ioo *InsertOneOptions) SetIDGenerator(gen idgen.Generator) *InsertOneOptions {
	ioo.Opts = append(ioo.Opts, func(args *InsertOneArgs) error {
		args.IDGenerator = gen
		return nil
	})
	return ioo
}

// InsertManyFromInsertOne converts InsertOne options into the equivalent
// InsertMany options for a batch of one document.
func InsertManyFromInsertOne(opts ...*InsertOneOptions) (*InsertManyOptions, error) {
	args := &InsertOneArgs{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		for _, setArgs := range opt.Opts {
			if setArgs == nil {
				continue
			}
			if err := setArgs(args); err != nil {
				return nil, err
			}
		}
	}

	imo := InsertMany()
	if args.WriteConcern != nil {
		imo.SetWriteConcern(args.WriteConcern)
	}
	if args.BypassDocumentValidation != nil {
		imo.SetBypassDocumentValidation(*args.BypassDocumentValidation)
	}
	if args.Comment != nil {
		imo.SetComment(args.Comment)
	}
	if args.IDGenerator != nil {
		imo.SetIDGenerator(args.IDGenerator)
	}
	return imo, nil
}
