// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	Space

	// Detect reads the first line and detects tabs or commas.
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// OpenCSV reads a block model from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg). The first
// row must be the column header.
func OpenCSV(filename string, delim Delims) (*Dataset, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), delim)
}

// ReadCSV reads a block model from a comma-separated-values (CSV)
// stream (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official
// CSV standard. The first record is the column header; every following
// record becomes one [Row] keyed by those headers.
func ReadCSV(r io.Reader, delim Delims) (*Dataset, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(bytes.NewReader(b))
	cr.Comma = delim.Rune()
	if delim == Detect {
		cr.Comma = detectDelim(b)
	}
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return New(nil, nil), nil
	}
	fields := make([]string, len(rec[0]))
	for j, hd := range rec[0] {
		fields[j] = strings.TrimSpace(hd)
	}
	rows := make([]Row, 0, len(rec)-1)
	for _, line := range rec[1:] {
		row := make(Row, len(fields))
		for j, f := range fields {
			if j < len(line) {
				row[f] = strings.TrimSpace(line[j])
			}
		}
		rows = append(rows, row)
	}
	return New(fields, rows), nil
}

// detectDelim inspects the first line: a tab anywhere in it wins,
// otherwise comma.
func detectDelim(b []byte) rune {
	line := b
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		line = b[:i]
	}
	if bytes.ContainsRune(line, '\t') {
		return '\t'
	}
	return ','
}
