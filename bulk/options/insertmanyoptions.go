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

// InsertManyArgs represents arguments that can be used to configure an
// InsertMany operation. A nil field means the option was not set.
type InsertManyArgs struct {
	// If true, no writes will be executed after one fails. The default value is true.
	Ordered *bool

	// The write concern to use for the batch. The default is the target's write
	// concern. An unacknowledged write concern produces no result.
	WriteConcern *writeconcern.WriteConcern

	// If true, writes executed as part of the operation will opt out of
	// document-level validation. The default is the target's behavior.
	BypassDocumentValidation *bool

	// A string or document that will be included in server logs, profiling
	// logs, and currentOp queries to help trace the operation.
	Comment interface{}

	// The generator used for documents that do not have an _id.
	IDGenerator idgen.Generator
}

// InsertManyOptions contains options to configure insert operations. Each
// option can be set through setter functions. See documentation for each setter
// function for an explanation of the option.
type InsertManyOptions struct {
	Opts []func(*InsertManyArgs) error
}

// InsertMany creates a new InsertManyOptions instance.
func InsertMany() *InsertManyOptions {
	return &InsertManyOptions{}
}

// ArgsSetters returns a list of InsertManyArgs setter functions.
func (imo *InsertManyOptions) ArgsSetters() []func(*InsertManyArgs) error {
	return imo.Opts
}

// SetOrdered sets the value for the Ordered field.
func (imo *InsertManyOptions) SetOrdered(b bool) *InsertManyOptions {
	imo.Opts = append(imo.Opts, func(args *InsertManyArgs) error {
		args.Ordered = &b

		return nil
	})

	return imo
}

// SetWriteConcern sets the value for the WriteConcern field.
func (imo *InsertManyOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *InsertManyOptions {
	imo.Opts = append(imo.Opts, func(args *InsertManyArgs) error {
		args.WriteConcern = wc

		return nil
	})

	return imo
}

// SetBypassDocumentValidation sets the value for the BypassDocumentValidation field.
func (imo *InsertManyOptions) SetBypassDocumentValidation(b bool) *InsertManyOptions {
	imo.Opts = append(imo.Opts, func(args *InsertManyArgs) error {
		args.BypassDocumentValidation = &b

		return nil
	})

	return imo
}

// SetComment sets the value for the Comment field.
func (imo *InsertManyOptions) SetComment(comment interface{}) *InsertManyOptions {
	imo.Opts = append(imo.Opts, func(args *InsertManyArgs) error {
		args.Comment = comment

		return nil
	})

	return imo
}

// SetIDGenerator sets the value for the IDGenerator field.
func (imo *InsertManyOptions) SetIDGenerator(gen idgen.Generator) *InsertManyOptions {
	imo.Opts = append(imo.Opts, func(args *InsertManyArgs) error {
		args.IDGenerator = gen

		return nil
	})

	return imo
}

// MergeInsertManyOptions applies the setters of every opts in order. Later
// values win. Nil options are skipped.
func MergeInsertManyOptions(opts ...*InsertManyOptions) (*InsertManyArgs, error) {
	args := &InsertManyArgs{}
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
	return args, nil
}
