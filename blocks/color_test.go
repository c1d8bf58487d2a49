// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocks

import (
	"testing"

	"github.com/cogentcore/blockview/dataset"
	"github.com/stretchr/testify/assert"
)

func colorDataset(vals ...string) *dataset.Dataset {
	rows := make([]dataset.Row, len(vals))
	for i, v := range vals {
		rows[i] = dataset.Row{"v": v}
	}
	return dataset.New([]string{"v"}, rows)
}

func TestColorFuncIdempotent(t *testing.T) {
	ds := colorDataset("0", "10")
	a := ColorFunc(ds, "v", DefaultColorMap)
	b := ColorFunc(ds, "v", DefaultColorMap)
	for _, v := range []float64{0, 2.5, 5, 7.5, 10} {
		assert.Equal(t, a(v), b(v))
	}
}

func TestColorFuncClamp(t *testing.T) {
	ds := colorDataset("0", "10")
	fn := ColorFunc(ds, "v", DefaultColorMap)
	assert.Equal(t, fn(0), fn(-5))
	assert.Equal(t, fn(10), fn(15))
	assert.NotEqual(t, fn(0), fn(10))
}

func TestColorFuncFallback(t *testing.T) {
	ds := colorDataset("1", "2")
	// no attribute selected
	fn := ColorFunc(ds, "", DefaultColorMap)
	assert.Equal(t, NoDataColor, fn(1))
	assert.Equal(t, NoDataColor, fn(99))

	// column with no usable statistics
	fn = ColorFunc(ds, "nosuch", DefaultColorMap)
	assert.Equal(t, NoDataColor, fn(1))

	// the fallback is distinct from the background slot color
	assert.NotEqual(t, NoDataColor, BackgroundColor)
}

func TestColorFuncUnknownMap(t *testing.T) {
	ds := colorDataset("0", "10")
	fn := ColorFunc(ds, "v", "NoSuchMap")
	want := ColorFunc(ds, "v", DefaultColorMap)
	assert.Equal(t, want(5), fn(5))
}
