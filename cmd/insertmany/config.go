// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"strconv"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const envPrefix = "INSERTMANY_"

type config struct {
	Target           string `koanf:"target"`
	URI              string `koanf:"uri"`
	Database         string `koanf:"database"`
	Collection       string `koanf:"collection"`
	Prefix           string `koanf:"prefix"`
	Ordered          bool   `koanf:"ordered"`
	BypassValidation bool   `koanf:"bypass-validation"`
	W                string `koanf:"w"`
	Journal          bool   `koanf:"journal"`
	ID               string `koanf:"id"`
	LogLevel         string `koanf:"log-level"`

	// Whether bypass-validation was given explicitly.
	bypassSet bool
	// Input files. Empty means stdin.
	files []string
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("insertmany", pflag.ContinueOnError)
	fs.String("config", "", "YAML configuration file")
	fs.String("target", "memory", "target store: memory, mongo or redis")
	fs.String("uri", "", "connection string of the target")
	fs.String("database", "test", "database name (mongo)")
	fs.String("collection", "documents", "collection name")
	fs.String("prefix", "", "key prefix (redis)")
	fs.Bool("ordered", true, "stop at the first failed insert")
	fs.Bool("bypass-validation", false, "skip document validation")
	fs.String("w", "", "write concern: a number, \"majority\" or a tag set name")
	fs.Bool("journal", false, "request journal acknowledgement")
	fs.String("id", "objectid", "generator for missing _id values: objectid, uuid or ksuid")
	fs.String("log-level", "off", "log level: off, info or debug")
	return fs
}

// loadConfig layers the YAML file named by --config, INSERTMANY_* environment
// variables and command line flags, in increasing order of precedence.
func loadConfig(args []string) (*config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if path, _ := fs.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "loading %s", path)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}
	bypassSet := k.Exists("bypass-validation") || fs.Changed("bypass-validation")

	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, errors.Wrap(err, "loading flags")
	}

	cfg := &config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	cfg.bypassSet = bypassSet
	cfg.files = fs.Args()
	return cfg, nil
}

// writeConcern returns the write concern described by W and Journal, or nil
// when neither is set.
func (cfg *config) writeConcern() (*writeconcern.WriteConcern, error) {
	if cfg.W == "" && !cfg.Journal {
		return nil, nil
	}

	wc := &writeconcern.WriteConcern{}
	switch {
	case cfg.W == "":
	case cfg.W == "majority":
		wc.W = "majority"
	default:
		if n, err := strconv.Atoi(cfg.W); err == nil {
			if n < 0 {
				return nil, errors.Errorf("invalid write concern w=%d", n)
			}
			wc.W = n
		} else {
			wc.W = cfg.W
		}
	}
	if cfg.Journal {
		j := true
		wc.Journal = &j
	}
	return wc, nil
}
