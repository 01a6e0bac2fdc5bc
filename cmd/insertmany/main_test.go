// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, "memory", cfg.Target)
		assert.Equal(t, "documents", cfg.Collection)
		assert.True(t, cfg.Ordered)
		assert.False(t, cfg.bypassSet)
		assert.Equal(t, "objectid", cfg.ID)
		assert.Empty(t, cfg.files)
	})
	t.Run("flags and files", func(t *testing.T) {
		cfg, err := loadConfig([]string{"--ordered=false", "--bypass-validation", "--id=ksuid", "a.json", "b.json"})
		require.NoError(t, err)
		assert.False(t, cfg.Ordered)
		assert.True(t, cfg.BypassValidation)
		assert.True(t, cfg.bypassSet)
		assert.Equal(t, "ksuid", cfg.ID)
		assert.Equal(t, []string{"a.json", "b.json"}, cfg.files)
	})
	t.Run("layering", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "insertmany.yaml")
		yml := "collection: fromfile\ndatabase: fromfile\nordered: false\nw: 2\n"
		require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
		t.Setenv("INSERTMANY_DATABASE", "fromenv")
		t.Setenv("INSERTMANY_BYPASS_VALIDATION", "false")

		cfg, err := loadConfig([]string{"--config", path, "--w=majority"})
		require.NoError(t, err)
		assert.Equal(t, "fromfile", cfg.Collection)
		assert.Equal(t, "fromenv", cfg.Database)
		assert.False(t, cfg.Ordered)
		assert.Equal(t, "majority", cfg.W)
		assert.True(t, cfg.bypassSet)
		assert.False(t, cfg.BypassValidation)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
	})
	t.Run("unknown flag", func(t *testing.T) {
		_, err := loadConfig([]string{"--nope"})
		require.Error(t, err)
	})
}

func TestWriteConcern(t *testing.T) {
	j := true
	testCases := []struct {
		name    string
		w       string
		journal bool
		want    *writeconcern.WriteConcern
	}{
		{"unset", "", false, nil},
		{"unacknowledged", "0", false, &writeconcern.WriteConcern{W: 0}},
		{"numeric", "2", false, &writeconcern.WriteConcern{W: 2}},
		{"majority", "majority", false, &writeconcern.WriteConcern{W: "majority"}},
		{"tag", "dc1", true, &writeconcern.WriteConcern{W: "dc1", Journal: &j}},
		{"journal only", "", true, &writeconcern.WriteConcern{Journal: &j}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config{W: tc.w, Journal: tc.journal}
			wc, err := cfg.writeConcern()
			require.NoError(t, err)
			assert.Equal(t, tc.want, wc)
		})
	}

	_, err := (&config{W: "-1"}).writeConcern()
	require.Error(t, err)
}

func TestReadDocuments(t *testing.T) {
	in := "{\"_id\": \"a\", \"n\": 1}\n\n  {\"n\": {\"$numberLong\": \"2\"}}  \n"
	docs, err := readDocuments(strings.NewReader(in), "stdin")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	first := docs[0].(bson.Raw)
	assert.Equal(t, "a", first.Lookup("_id").StringValue())
	second := docs[1].(bson.Raw)
	assert.Equal(t, int64(2), second.Lookup("n").Int64())

	_, err = readDocuments(strings.NewReader("{\"n\": 1}\n{not json}\n"), "input.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input.json line 2")
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.json")
	require.NoError(t, os.WriteFile(path, []byte("{\"_id\": 1}\n{\"_id\": 2}\n"), 0o600))

	docs, err := readInputs([]string{path, "-"}, strings.NewReader("{\"_id\": 3}\n"))
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	_, err = readInputs([]string{filepath.Join(dir, "missing.json")}, nil)
	require.Error(t, err)

	_, err = readInputs([]string{"-", path, "-"}, strings.NewReader("{\"_id\": 3}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")
}

func TestRun(t *testing.T) {
	t.Run("acknowledged", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		in := strings.NewReader("{\"x\": 1}\n{\"_id\": \"a\", \"x\": 2}\n")
		err := run(context.Background(), []string{"--log-level=info"}, in, &stdout, &stderr)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "0\t"))
		assert.Len(t, strings.TrimPrefix(lines[0], "0\t"), 24)
		assert.Equal(t, "1\ta", lines[1])
		assert.Equal(t, "inserted 2 of 2 documents, 0 write errors", lines[2])
		assert.Contains(t, stderr.String(), "Bulk write succeeded")
	})
	t.Run("write errors", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		in := strings.NewReader("{\"_id\": 1}\n{\"_id\": 1}\n{\"_id\": 2}\n")
		err := run(context.Background(), []string{"--ordered=false"}, in, &stdout, &stderr)
		require.True(t, errors.Is(err, errWriteErrors), "expected write errors, got %v", err)
		assert.Contains(t, stdout.String(), "inserted 2 of 3 documents, 1 write errors")
		assert.Contains(t, stderr.String(), "write error at index 1")
	})
	t.Run("unacknowledged", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		in := strings.NewReader("{\"x\": 1}\n{\"x\": 2}\n")
		err := run(context.Background(), []string{"--w=0"}, in, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, "sent 2 documents (unacknowledged)\n", stdout.String())
	})
	t.Run("unknown generator", func(t *testing.T) {
		err := run(context.Background(), []string{"--id=snowflake"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
	})
	t.Run("unknown target", func(t *testing.T) {
		err := run(context.Background(), []string{"--target=cassandra"}, strings.NewReader("{}\n"), &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown target")
	})
}
