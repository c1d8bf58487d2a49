// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides the tabular block model data: an ordered
// sequence of rows paired with a columnar numeric view of the same
// values, plus column statistics computed over the columnar view.
package dataset

import "strconv"

// Row is one block model record, mapping column name to the raw
// string-encoded value as it came from the source file.
type Row map[string]string

// Dataset is an ordered sequence of [Row] records together with a
// columnar numeric view of the same values in the same order.
// Row 0 defines the spatial origin for instancing. A Dataset is
// immutable once constructed: loading new data replaces it wholesale.
type Dataset struct {

	// Rows are the records in source order.
	Rows []Row

	// Fields are the column names in source order.
	Fields []string

	// columns caches the numeric coercion of each column, with NaN
	// for cells that do not parse. Parsed once at construction.
	columns map[string][]float64
}

// New returns a Dataset built from the given field names and rows,
// parsing the columnar numeric view from the row data.
func New(fields []string, rows []Row) *Dataset {
	ds := &Dataset{Rows: rows, Fields: fields}
	ds.parseColumns()
	return ds
}

// parseColumns coerces every column to float64, NaN where a cell
// does not parse as a number.
func (ds *Dataset) parseColumns() {
	ds.columns = make(map[string][]float64, len(ds.Fields))
	for _, f := range ds.Fields {
		col := make([]float64, len(ds.Rows))
		for i, row := range ds.Rows {
			col[i] = Float(row[f])
		}
		ds.columns[f] = col
	}
}

// NumRows returns the number of rows.
func (ds *Dataset) NumRows() int {
	if ds == nil {
		return 0
	}
	return len(ds.Rows)
}

// HasColumn returns whether the named column exists.
func (ds *Dataset) HasColumn(name string) bool {
	_, ok := ds.columns[name]
	return ok
}

// Column returns the numeric coercion of the named column, with NaN
// for cells that did not parse. Returns nil if the column is absent.
// The returned slice is shared and must not be modified.
func (ds *Dataset) Column(name string) []float64 {
	if ds == nil {
		return nil
	}
	return ds.columns[name]
}

// Float coerces a raw cell value to float64, NaN if it does not parse.
func Float(val string) float64 {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nan
	}
	return f
}
