// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocks

import (
	"image/color"
	"math"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/blockview/dataset"
)

// BackgroundIndex is the reserved instance slot that carries the
// background color and no geometry. Data rows occupy instance indexes
// 1..N, so instance i corresponds to row i-1. Picking must never
// resolve this slot to a row.
const BackgroundIndex = 0

// Instances holds the per-instance render buffers for one dataset +
// mapping snapshot. Transforms and colors are always built together
// from the same snapshot and replaced wholesale on any change; there
// is no partial-update path.
type Instances struct {

	// Data is the dataset snapshot these buffers were built from.
	Data *dataset.Dataset

	// Map is the mapping snapshot these buffers were built from.
	Map Mapping

	// Origin is the data-space origin: row 0 coordinates + 1 per axis.
	// It also supplies the start values for the clip plane equations.
	Origin math32.Vector3

	// Matrices has one transform per instance, in instance order,
	// with the reserved background slot at index 0. ZScale is not
	// baked in; see [Instances.GroupScale].
	Matrices []math32.Matrix4

	// Positions and Scales are the origin-relative position and
	// anisotropic scale per instance, before ZScale.
	Positions []math32.Vector3
	Scales    []math32.Vector3

	// Boxes are the collection-local bounding boxes per instance,
	// used for picking. The background slot is an empty box.
	Boxes []math32.Box3

	// Colors is the tightly packed RGB buffer, 3 floats per instance,
	// with the background gray at index 0.
	Colors []float32
}

// Build constructs the instance buffers for the given dataset, mapping,
// selected attribute, and color map name. An empty dataset or a mapping
// with unset coordinate columns yields zero instances (nil buffers),
// not an error. Missing or non-numeric coordinate and dimension values
// propagate as NaN, degenerating those instances visually instead of
// failing the build.
func Build(ds *dataset.Dataset, mp *Mapping, attribute, colorMap string) *Instances {
	in := &Instances{Data: ds, Map: *mp}
	n := ds.NumRows()
	if n == 0 || !mp.Valid() {
		return in
	}
	xs := ds.Column(mp.X)
	ys := ds.Column(mp.Y)
	zs := ds.Column(mp.Z)

	// origin is row 0 + 1 per axis; the +1 keeps the origin distinct
	// from a zero first coordinate and is canceled below so that the
	// row 0 instance sits exactly at the local origin.
	in.Origin = math32.Vec3(
		float32(colValue(xs, 0))+1,
		float32(colValue(ys, 0))+1,
		float32(colValue(zs, 0))+1,
	)

	var dxs, dys, dzs []float64
	if mp.UseDimColumns {
		dxs = ds.Column(mp.DimX)
		dys = ds.Column(mp.DimY)
		dzs = ds.Column(mp.DimZ)
	}

	in.Matrices = make([]math32.Matrix4, n+1)
	in.Positions = make([]math32.Vector3, n+1)
	in.Scales = make([]math32.Vector3, n+1)
	in.Boxes = make([]math32.Box3, n+1)
	in.Matrices[BackgroundIndex].SetIdentity()
	in.Boxes[BackgroundIndex].SetEmpty()

	var quat math32.Quat
	quat.SetIdentity()
	for i := 0; i < n; i++ {
		lx := float32(colValue(xs, i)) - in.Origin.X + 1
		ly := float32(colValue(ys, i)) - in.Origin.Y + 1
		lz := float32(colValue(zs, i)) - in.Origin.Z + 1

		// data Z is render up; data Y is negated onto render depth
		pos := math32.Vec3(lx, lz, -ly)
		var scale math32.Vector3
		if mp.UseDimColumns {
			scale = math32.Vec3(
				float32(colValue(dxs, i)),
				float32(colValue(dzs, i)),
				float32(colValue(dys, i)),
			)
		} else {
			scale = math32.Vec3(mp.BlockDim.X, mp.BlockDim.Z, mp.BlockDim.Y)
		}
		idx := i + 1
		in.Positions[idx] = pos
		in.Scales[idx] = scale
		in.Matrices[idx].SetTransform(pos, quat, scale)
		in.Boxes[idx].SetFromCenterAndSize(pos, scale)
	}
	in.buildColors(attribute, colorMap)
	return in
}

// buildColors fills the packed RGB buffer from the same snapshot the
// transforms were built from.
func (in *Instances) buildColors(attribute, colorMap string) {
	n := in.Data.NumRows()
	fn := ColorFunc(in.Data, attribute, colorMap)
	vals := in.Data.Column(attribute)
	in.Colors = make([]float32, 3*(n+1))
	setColor(in.Colors, BackgroundIndex, BackgroundColor)
	for i := 0; i < n; i++ {
		setColor(in.Colors, i+1, fn(colValue(vals, i)))
	}
}

// NumBlocks returns the number of data instances (excluding the
// reserved background slot).
func (in *Instances) NumBlocks() int {
	if len(in.Matrices) == 0 {
		return 0
	}
	return len(in.Matrices) - 1
}

// GroupScale returns the collection-level scale that applies the
// vertical exaggeration to the whole instanced collection.
func (in *Instances) GroupScale() math32.Vector3 {
	return math32.Vec3(1, in.Map.ZScale, 1)
}

// Row resolves an instance index back to its source row. The reserved
// background slot and out-of-range indexes resolve to nil, false.
func (in *Instances) Row(idx int) (dataset.Row, bool) {
	if idx <= BackgroundIndex || idx > in.NumBlocks() {
		return nil, false
	}
	return in.Data.Rows[idx-1], true
}

// Bounds returns the collection-local bounding box spanning all data
// instances, before ZScale. Empty when there are no instances.
func (in *Instances) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for i := BackgroundIndex + 1; i < len(in.Boxes); i++ {
		bb.ExpandByBox(in.Boxes[i])
	}
	return bb
}

// Color returns the color of the given instance slot as RGBA.
func (in *Instances) Color(idx int) color.RGBA {
	return color.RGBA{
		R: uint8(in.Colors[3*idx]*255 + 0.5),
		G: uint8(in.Colors[3*idx+1]*255 + 0.5),
		B: uint8(in.Colors[3*idx+2]*255 + 0.5),
		A: 255,
	}
}

// colValue reads column value i, NaN when the column is absent.
func colValue(col []float64, i int) float64 {
	if col == nil {
		return math.NaN()
	}
	return col[i]
}
