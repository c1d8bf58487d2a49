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

func valueDataset(column string, vals ...string) *Dataset {
	rows := make([]Row, len(vals))
	for i, v := range vals {
		rows[i] = Row{column: v}
	}
	return New([]string{column}, rows)
}

func TestColumnStats(t *testing.T) {
	ds := valueDataset("v", "10", "20")
	st := ColumnStats(ds, "v")
	require.NotNil(t, st)
	assert.Equal(t, 10.0, st.Min)
	assert.Equal(t, 20.0, st.Max)
	assert.Equal(t, 10.0, st.Range)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, 30.0, st.Sum)
	assert.Equal(t, 15.0, st.Mean)
	assert.Equal(t, 15.0, st.Median)
	assert.Equal(t, 5.0, st.StdDev) // population: sqrt(((10-15)^2+(20-15)^2)/2)
}

func TestColumnStatsMedian(t *testing.T) {
	odd := valueDataset("v", "5", "1", "3")
	require.NotNil(t, ColumnStats(odd, "v"))
	assert.Equal(t, 3.0, ColumnStats(odd, "v").Median)

	even := valueDataset("v", "4", "1", "3", "2")
	require.NotNil(t, ColumnStats(even, "v"))
	assert.Equal(t, 2.5, ColumnStats(even, "v").Median)
}

func TestColumnStatsMissing(t *testing.T) {
	ds := valueDataset("v", "1", "2")
	assert.Nil(t, ColumnStats(ds, "nosuch"))

	empty := New([]string{"v"}, nil)
	assert.Nil(t, ColumnStats(empty, "v"))

	nonnum := valueDataset("v", "a", "b")
	assert.Nil(t, ColumnStats(nonnum, "v"))

	var nilds *Dataset
	assert.Nil(t, ColumnStats(nilds, "v"))
}

func TestColumnStatsSkipsNonNumeric(t *testing.T) {
	ds := valueDataset("v", "1", "bad", "3")
	st := ColumnStats(ds, "v")
	require.NotNil(t, st)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, 1.0, st.Min)
	assert.Equal(t, 3.0, st.Max)
	assert.Equal(t, 2.0, st.Range)
}

func TestColumnStatsPure(t *testing.T) {
	ds := valueDataset("v", "2", "7", "4")
	a := ColumnStats(ds, "v")
	b := ColumnStats(ds, "v")
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, *a, *b)
	assert.False(t, math.IsNaN(a.StdDev))
}
