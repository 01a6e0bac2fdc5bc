// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package logger is the structured logger used by bulk inserts. Messages are
// filtered by component and level before they reach a LogSink.
package logger

import (
	"github.com/sirupsen/logrus"
)

// LogSink is an interface that can be implemented to provide a custom sink for
// log messages. The level passed to Info is zero for LevelInfo.
type LogSink interface {
	Info(level int, message string, keysAndValues ...interface{})
	Error(err error, message string, keysAndValues ...interface{})
}

// Logger filters messages by component level and hands them to a LogSink.
type Logger struct {
	ComponentLevels map[Component]Level
	Sink            LogSink
}

// New constructs a Logger. Levels read from the environment are overridden by
// componentLevels. If sink is nil, messages go to the logrus standard logger.
func New(sink LogSink, componentLevels map[Component]Level) *Logger {
	levels := componentLevelsFromEnv()
	for component, level := range componentLevels {
		levels[component] = level
	}
	if all, ok := componentLevels[ComponentAll]; ok {
		if _, set := componentLevels[ComponentBulkWrite]; !set {
			levels[ComponentBulkWrite] = all
		}
	}

	if sink == nil {
		sink = NewLogrusSink(logrus.StandardLogger())
	}

	return &Logger{
		ComponentLevels: levels,
		Sink:            sink,
	}
}

// LevelComponentEnabled reports whether messages at level are printed for
// component. A nil Logger prints nothing.
func (logger *Logger) LevelComponentEnabled(level Level, component Component) bool {
	if logger == nil || logger.Sink == nil || level == LevelOff {
		return false
	}
	return logger.ComponentLevels[component] >= level
}

// Print logs msg with the given key-value pairs if the level is enabled for
// the component.
func (logger *Logger) Print(level Level, component Component, msg string, keysAndValues ...interface{}) {
	if !logger.LevelComponentEnabled(level, component) {
		return
	}
	logger.Sink.Info(int(level)-DiffToInfo, msg, keysAndValues...)
}

// Error logs err. Errors are printed whenever the component is enabled at any
// level.
func (logger *Logger) Error(err error, component Component, msg string, keysAndValues ...interface{}) {
	if !logger.LevelComponentEnabled(LevelInfo, component) {
		return
	}
	logger.Sink.Error(err, msg, keysAndValues...)
}
