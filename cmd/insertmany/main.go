// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Command insertmany reads extended JSON documents, one per line, and inserts
// them as a single batch into a memory, MongoDB or Redis target.
//
//	insertmany --target=mongo --uri=mongodb://localhost:27017 --database=db --collection=c docs.json
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/ikmak/bulkinsert/bulk"
	"github.com/ikmak/bulkinsert/bulk/options"
	"github.com/ikmak/bulkinsert/idgen"
	"github.com/ikmak/bulkinsert/internal/logger"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errWriteErrors = errors.New("batch completed with write errors")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	level := logger.ParseLevel(cfg.LogLevel)
	if level >= logger.LevelDebug {
		log.SetLevel(logrus.DebugLevel)
	}

	gen, ok := idgen.Named(cfg.ID)
	if !ok {
		return errors.Errorf("unknown id generator %q", cfg.ID)
	}
	wc, err := cfg.writeConcern()
	if err != nil {
		return err
	}

	docs, err := readInputs(cfg.files, stdin)
	if err != nil {
		return err
	}

	target, closeTarget, err := openTarget(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeTarget(context.Background()); cerr != nil {
			log.WithError(cerr).Warn("closing target")
		}
	}()

	coll := bulk.NewCollection(cfg.Collection, target, options.Collection().
		SetIDGenerator(gen).
		SetLoggerOptions(options.Logger().
			SetComponentLevel(options.LogComponentBulkWrite, options.LogLevel(level)).
			SetSink(logger.NewLogrusSink(log))))

	imo := options.InsertMany().SetOrdered(cfg.Ordered)
	if cfg.bypassSet {
		imo.SetBypassDocumentValidation(cfg.BypassValidation)
	}
	if wc != nil {
		imo.SetWriteConcern(wc)
	}

	outcome, err := coll.InsertMany(ctx, docs, imo)
	if err != nil {
		return errors.Wrap(err, "insert failed")
	}
	return report(stdout, stderr, len(docs), outcome)
}

// report prints one line per document id followed by a summary. It returns
// errWriteErrors when any document failed.
func report(stdout, stderr io.Writer, total int, outcome bulk.InsertManyOutcome) error {
	switch o := outcome.(type) {
	case bulk.InsertManyUnacknowledged:
		fmt.Fprintf(stdout, "sent %d documents (unacknowledged)\n", total)
		return nil
	case bulk.InsertManyAcknowledged:
		for i, id := range o.Result.InsertedIDs {
			fmt.Fprintf(stdout, "%d\t%s\n", i, formatID(id))
		}
		res := o.Result.Outcome
		for _, we := range res.WriteErrors {
			fmt.Fprintln(stderr, we.Error())
		}
		if res.WriteConcernError != nil {
			fmt.Fprintln(stderr, res.WriteConcernError.Error())
		}
		fmt.Fprintf(stdout, "inserted %d of %d documents, %d write errors\n",
			res.InsertedCount, total, len(res.WriteErrors))
		if res.HasWriteErrors() {
			return errWriteErrors
		}
		return nil
	default:
		return errors.Errorf("unexpected outcome %T", outcome)
	}
}

func formatID(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
