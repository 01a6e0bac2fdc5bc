// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package logger

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		literal string
		want    Level
	}{
		{"off", LevelOff},
		{"", LevelOff},
		{"bogus", LevelOff},
		{"error", LevelInfo},
		{"WARN", LevelInfo},
		{"info", LevelInfo},
		{" debug ", LevelDebug},
		{"trace", LevelDebug},
	}
	for _, tc := range testCases {
		t.Run(tc.literal, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLevel(tc.literal))
		})
	}
}

func TestNewComponentLevels(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		t.Setenv(envVarAll, "debug")
		l := New(NewLogrusSink(logrus.New()), nil)
		assert.Equal(t, LevelDebug, l.ComponentLevels[ComponentBulkWrite])
	})
	t.Run("component overrides all", func(t *testing.T) {
		t.Setenv(envVarAll, "debug")
		t.Setenv(envVarBulkWrite, "info")
		l := New(NewLogrusSink(logrus.New()), nil)
		assert.Equal(t, LevelInfo, l.ComponentLevels[ComponentBulkWrite])
	})
	t.Run("arguments override environment", func(t *testing.T) {
		t.Setenv(envVarBulkWrite, "debug")
		l := New(NewLogrusSink(logrus.New()), map[Component]Level{ComponentAll: LevelOff})
		assert.Equal(t, LevelOff, l.ComponentLevels[ComponentBulkWrite])
	})
	t.Run("nil sink falls back to logrus", func(t *testing.T) {
		l := New(nil, nil)
		require.NotNil(t, l.Sink)
	})
}

func TestLoggerPrint(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	l := New(NewLogrusSink(log), map[Component]Level{ComponentBulkWrite: LevelInfo})

	l.Print(LevelDebug, ComponentBulkWrite, BulkWriteStarted, KeyCollection, "people")
	assert.Empty(t, hook.AllEntries(), "debug message printed at info level")

	l.Print(LevelInfo, ComponentBulkWrite, BulkWriteSucceeded, KeyCollection, "people", KeyInsertedCount, int64(3))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, BulkWriteSucceeded, entry.Message)
	assert.Equal(t, "people", entry.Data[KeyCollection])
	assert.Equal(t, int64(3), entry.Data[KeyInsertedCount])

	l.ComponentLevels[ComponentBulkWrite] = LevelDebug
	l.Print(LevelDebug, ComponentBulkWrite, BulkWriteStarted)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	failure := errors.New("connection reset")
	l.Error(failure, ComponentBulkWrite, BulkWriteFailed, KeyCollection, "people")
	entry = hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, failure, entry.Data[logrus.ErrorKey])
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	assert.False(t, l.LevelComponentEnabled(LevelInfo, ComponentBulkWrite))
	l.Print(LevelInfo, ComponentBulkWrite, "ignored")
	l.Error(errors.New("ignored"), ComponentBulkWrite, "ignored")
}
