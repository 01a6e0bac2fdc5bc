// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package logger

import "strings"

// DiffToInfo is the number of levels that come before LevelInfo. Subtracting it
// from a Level gives the verbosity passed to a LogSink, so that LevelInfo is 0.
const DiffToInfo = 1

// Level is an enumeration representing the supported log severity levels.
type Level int

const (
	// LevelOff suppresses logging.
	LevelOff Level = iota

	// LevelInfo enables logging of informational messages, such as a bulk
	// write completing.
	LevelInfo

	// LevelDebug enables logging of debug messages, such as a bulk write
	// starting.
	LevelDebug
)

// ParseLevel maps a syslog-style level literal onto a Level. Unknown literals
// map to LevelOff.
func ParseLevel(str string) Level {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "emergency", "alert", "critical", "error", "warn", "warning", "notice", "info":
		return LevelInfo
	case "debug", "trace":
		return LevelDebug
	default:
		return LevelOff
	}
}

func (level Level) String() string {
	switch level {
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "off"
	}
}
