// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LogrusSink writes log messages to a logrus.FieldLogger. Key-value pairs
// become logrus fields.
type LogrusSink struct {
	log logrus.FieldLogger
}

var _ LogSink = &LogrusSink{}

// NewLogrusSink creates a LogrusSink that writes to log.
func NewLogrusSink(log logrus.FieldLogger) *LogrusSink {
	return &LogrusSink{log: log}
}

// Info logs msg at logrus' info level for level 0 and debug level otherwise.
func (s *LogrusSink) Info(level int, msg string, keysAndValues ...interface{}) {
	entry := s.log.WithFields(fields(keysAndValues))
	if level <= 0 {
		entry.Info(msg)
		return
	}
	entry.Debug(msg)
}

// Error logs msg and err at logrus' error level.
func (s *LogrusSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.log.WithFields(fields(keysAndValues)).WithError(err).Error(msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		f[key] = keysAndValues[i+1]
	}
	return f
}
