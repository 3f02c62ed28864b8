// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

// Package xlog supports switchable verbose output. The standard log
// package cannot be disabled per call site; Printf accepts a Logger
// interface value and does nothing, including the formatting, when it is
// nil. The log.Logger type satisfies the interface.
package xlog

import "fmt"

// Logger is the minimal interface Printf requires. It is satisfied by
// *log.Logger.
type Logger interface {
	Output(calldepth int, s string) error
}

// Printf prints the arguments using the format string. If the logger
// argument is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}
