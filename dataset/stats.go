// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"slices"

	"cogentcore.org/core/math32/minmax"
)

var nan = math.NaN()

// Stats holds summary statistics for one numeric column.
type Stats struct {

	// Min and Max are the extreme values.
	Min, Max float64

	// Range is Max - Min.
	Range float64

	// Count is the number of cells that parsed as numbers.
	Count int

	// Sum is the total over counted cells.
	Sum float64

	// Mean is Sum / Count.
	Mean float64

	// Median is the middle order statistic, averaging the two central
	// values for even counts.
	Median float64

	// StdDev is the population standard deviation (divides by Count).
	StdDev float64
}

// ColumnStats computes summary statistics for the named column of the
// dataset, skipping cells that do not parse as numbers. It returns nil
// when the column is absent or contains no numeric values: callers must
// treat that as "no usable data", not an error. It is a pure function
// of its inputs and cheap enough to call on every selection change.
func ColumnStats(ds *Dataset, column string) *Stats {
	col := ds.Column(column)
	if col == nil {
		return nil
	}
	vals := make([]float64, 0, len(col))
	rng := minmax.F64{}
	rng.SetInfinity()
	sum := 0.0
	for _, v := range col {
		if math.IsNaN(v) {
			continue
		}
		rng.FitValInRange(v)
		sum += v
		vals = append(vals, v)
	}
	n := len(vals)
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	vr := 0.0
	for _, v := range vals {
		dv := v - mean
		vr += dv * dv
	}
	vr /= float64(n) // population variance
	slices.Sort(vals)
	var med float64
	if n%2 == 1 {
		med = vals[n/2]
	} else {
		med = 0.5 * (vals[n/2-1] + vals[n/2])
	}
	return &Stats{
		Min:    rng.Min,
		Max:    rng.Max,
		Range:  rng.Range(),
		Count:  n,
		Sum:    sum,
		Mean:   mean,
		Median: med,
		StdDev: math.Sqrt(vr),
	}
}
