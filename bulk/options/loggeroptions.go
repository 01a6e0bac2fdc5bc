// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"github.com/ikmak/bulkinsert/internal/logger"
)

// LogLevel is an enumeration representing the supported log severity levels.
type LogLevel int

const (
	// OffLogLevel disables logging.
	OffLogLevel LogLevel = LogLevel(logger.LevelOff)

	// InfoLogLevel enables logging of informational messages, such as a batch
	// completing.
	InfoLogLevel LogLevel = LogLevel(logger.LevelInfo)

	// DebugLogLevel enables logging of debug messages, such as a batch being
	// handed to the target.
	DebugLogLevel LogLevel = LogLevel(logger.LevelDebug)
)

// LogComponent is an enumeration representing the "components" which can be
// logged against. A LogLevel can be configured on a per-component basis.
type LogComponent int

const (
	// LogComponentAll enables logging for all components.
	LogComponentAll LogComponent = LogComponent(logger.ComponentAll)

	// LogComponentBulkWrite enables bulk write logging.
	LogComponentBulkWrite LogComponent = LogComponent(logger.ComponentBulkWrite)
)

// LogSink is an interface that can be implemented to provide a custom sink for
// log messages.
type LogSink interface {
	// Info logs a non-error message. level is 0 for InfoLogLevel and grows
	// with verbosity.
	Info(level int, message string, keysAndValues ...interface{})

	// Error logs an error message with the given key-value pairs.
	Error(err error, message string, keysAndValues ...interface{})
}

// LoggerOptions represent options used to configure logging.
type LoggerOptions struct {
	ComponentLevels map[LogComponent]LogLevel

	// Sink is the LogSink that will be used to log messages. If this is nil,
	// messages go to the logrus standard logger.
	Sink LogSink
}

// Logger creates a new LoggerOptions instance.
func Logger() *LoggerOptions {
	return &LoggerOptions{
		ComponentLevels: map[LogComponent]LogLevel{},
	}
}

// SetComponentLevel sets the LogLevel value for a LogComponent.
func (opts *LoggerOptions) SetComponentLevel(component LogComponent, level LogLevel) *LoggerOptions {
	opts.ComponentLevels[component] = level
	return opts
}

// SetSink sets the LogSink to use for logging.
func (opts *LoggerOptions) SetSink(sink LogSink) *LoggerOptions {
	opts.Sink = sink
	return opts
}
