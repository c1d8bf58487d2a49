// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundTrip(t *testing.T) {
	fields := []string{"x", "y", "v"}
	rows := []Row{
		{"x": "0", "y": "1", "v": "10"},
		{"x": "5", "y": "2", "v": "20"},
	}
	ds := New(fields, rows)
	require.Equal(t, 2, ds.NumRows())
	require.Equal(t, fields, ds.Fields)

	// columnar view holds the same values in the same order as the rows
	assert.Equal(t, []float64{0, 5}, ds.Column("x"))
	assert.Equal(t, []float64{1, 2}, ds.Column("y"))
	assert.Equal(t, []float64{10, 20}, ds.Column("v"))
}

func TestColumnCoercion(t *testing.T) {
	ds := New([]string{"v"}, []Row{{"v": "1.5"}, {"v": "oops"}, {}})
	col := ds.Column("v")
	require.Len(t, col, 3)
	assert.Equal(t, 1.5, col[0])
	assert.True(t, math.IsNaN(col[1]))
	assert.True(t, math.IsNaN(col[2])) // missing cell coerces like non-numeric

	assert.Nil(t, ds.Column("nosuch"))
	assert.True(t, ds.HasColumn("v"))
	assert.False(t, ds.HasColumn("nosuch"))
}
