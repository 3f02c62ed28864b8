// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

package xlog

import (
	"bytes"
	"log"
	"testing"
)

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, "test: ", 0)
	Printf(l, "value %d", 42)
	if s := buf.String(); s != "test: value 42\n" {
		t.Errorf("Printf wrote %q; want %q", s, "test: value 42\n")
	}
}

func TestPrintfNilLogger(t *testing.T) {
	// must not panic and must not format anything
	Printf(nil, "value %d", 42)
}
