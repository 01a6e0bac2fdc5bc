// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"
)

// readDocuments parses one extended JSON object per line. Blank lines are
// skipped.
func readDocuments(r io.Reader, name string) ([]interface{}, error) {
	var docs []interface{}

	lineNumber := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		var d bson.D
		if err := bson.UnmarshalExtJSON([]byte(line), false, &d); err != nil {
			return nil, errors.Wrapf(err, "error parsing %s line %d", name, lineNumber)
		}
		raw, err := bson.Marshal(d)
		if err != nil {
			return nil, errors.Wrapf(err, "error encoding %s line %d", name, lineNumber)
		}
		docs = append(docs, bson.Raw(raw))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "error reading %s", name)
	}
	return docs, nil
}

// readInputs reads every named file concurrently and returns their documents
// in argument order. No names, or "-", reads stdin. "-" may appear once.
func readInputs(files []string, stdin io.Reader) ([]interface{}, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	stdinSeen := false
	for _, name := range files {
		if name != "-" {
			continue
		}
		if stdinSeen {
			return nil, errors.New("stdin (-) given more than once")
		}
		stdinSeen = true
	}

	batches := make([][]interface{}, len(files))
	var g errgroup.Group
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if name == "-" {
				d, err := readDocuments(stdin, "stdin")
				batches[i] = d
				return err
			}

			f, err := os.Open(name)
			if err != nil {
				return errors.Wrapf(err, "cannot open file %s", name)
			}
			defer f.Close()
			d, err := readDocuments(f, name)
			batches[i] = d
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []interface{}
	for _, b := range batches {
		docs = append(docs, b...)
	}
	return docs, nil
}
