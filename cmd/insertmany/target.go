// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"context"

	"github.com/ikmak/bulkinsert/bulk"
	"github.com/ikmak/bulkinsert/target/memtarget"
	"github.com/ikmak/bulkinsert/target/mongotarget"
	"github.com/ikmak/bulkinsert/target/redistarget"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	targetMemory = "memory"
	targetMongo  = "mongo"
	targetRedis  = "redis"
)

func noopClose(context.Context) error { return nil }

// openTarget connects to the store named by cfg.Target. The returned function
// releases the connection.
func openTarget(ctx context.Context, cfg *config) (bulk.Target, func(context.Context) error, error) {
	switch cfg.Target {
	case "", targetMemory:
		return memtarget.New(cfg.Collection), noopClose, nil
	case targetMongo:
		uri := cfg.URI
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		return mongotarget.Connect(ctx, uri, cfg.Database, cfg.Collection)
	case targetRedis:
		ropts := &redis.Options{Addr: "localhost:6379"}
		if cfg.URI != "" {
			var err error
			if ropts, err = redis.ParseURL(cfg.URI); err != nil {
				return nil, nil, errors.Wrap(err, "parsing redis uri")
			}
		}
		client := redis.NewClient(ropts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, errors.Wrap(err, "pinging redis")
		}
		prefix := cfg.Prefix
		if prefix == "" {
			prefix = redistarget.DefaultPrefix
		}
		return redistarget.New(client, prefix, cfg.Collection), func(context.Context) error {
			return client.Close()
		}, nil
	default:
		return nil, nil, errors.Errorf("unknown target %q", cfg.Target)
	}
}
