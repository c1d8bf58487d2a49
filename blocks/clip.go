// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocks

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"github.com/cogentcore/blockview/dataset"
)

// DegeneratePlaneOffset replaces a clip plane offset that evaluates to
// exactly zero, which would otherwise produce an all-zero plane.
const DegeneratePlaneOffset = 0.5

// Clip is the axis-aligned clipping state. Inactive means no plane is
// supplied to the renderer and nothing is clipped; active supplies
// exactly one plane. Transitions are driven solely by user input.
type Clip struct {

	// Active turns clipping on.
	Active bool

	// Axis is the data axis being clipped.
	Axis math32.Dims

	// Pos is the slider position along Axis, in data coordinates.
	Pos float32
}

// Plane returns the render-space clip plane for the current state,
// given the instance origin (row 0 coordinates + 1 per axis, the
// "start" values). The second return is false when clipping is
// inactive. The per-axis sign conventions mirror the coordinate remap
// of the transform builder; an offset of exactly zero is replaced by
// [DegeneratePlaneOffset].
func (cl *Clip) Plane(origin math32.Vector3) (math32.Plane, bool) {
	if !cl.Active {
		return math32.Plane{}, false
	}
	var pl math32.Plane
	switch cl.Axis {
	case math32.X:
		pl.Norm = math32.Vec3(-1, 0, 0)
		pl.Off = origin.X - cl.Pos + 1
	case math32.Y:
		pl.Norm = math32.Vec3(0, 0, 1)
		pl.Off = cl.Pos - origin.Y - 1
	default:
		pl.Norm = math32.Vec3(0, -1, 0)
		pl.Off = cl.Pos - origin.Z - 1
	}
	if pl.Off == 0 {
		pl.Off = DegeneratePlaneOffset
	}
	return pl, true
}

// Cut reports whether a block at the given render-space position is
// removed by the current clip state: it lies on the negative side of
// the clip plane. Always false while clipping is inactive.
func (cl *Clip) Cut(pos, origin math32.Vector3) bool {
	pl, ok := cl.Plane(origin)
	if !ok {
		return false
	}
	return pl.DistanceToPoint(pos) < 0
}

// HelperPlane describes the placement of the translucent plane that
// visualizes where the clip currently cuts through the data, for a
// ground-plane primitive whose default normal is render +Y.
type HelperPlane struct {

	// Size is the plane width and height, taken from the data extents
	// of the two axes other than the clip axis.
	Size math32.Vector2

	// Pos is the plane center in render space, sitting at the current
	// slider offset along the clip axis.
	Pos math32.Vector3

	// Euler is the rotation in degrees that turns the primitive to
	// face along the clip axis.
	Euler math32.Vector3
}

// Helper returns the helper plane for the current clip state and the
// given dataset + mapping. The second return is false when clipping is
// inactive or the coordinate columns have no usable bounds.
func (cl *Clip) Helper(ds *dataset.Dataset, mp *Mapping) (HelperPlane, bool) {
	if !cl.Active {
		return HelperPlane{}, false
	}
	stx := dataset.ColumnStats(ds, mp.X)
	sty := dataset.ColumnStats(ds, mp.Y)
	stz := dataset.ColumnStats(ds, mp.Z)
	if stx == nil || sty == nil || stz == nil {
		return HelperPlane{}, false
	}
	ext := math32.Vec3(float32(stx.Range), float32(sty.Range), float32(stz.Range))
	center := math32.Vec3(
		float32(0.5*(stx.Min+stx.Max)),
		float32(0.5*(sty.Min+sty.Max)),
		float32(0.5*(stz.Min+stz.Max)),
	)

	hp := HelperPlane{}
	data := center
	switch cl.Axis {
	case math32.X:
		hp.Size = math32.Vec2(ext.Y, ext.Z)
		hp.Euler = math32.Vec3(0, 0, 90)
		data.X = cl.Pos
	case math32.Y:
		hp.Size = math32.Vec2(ext.X, ext.Z)
		hp.Euler = math32.Vec3(90, 0, 0)
		data.Y = cl.Pos
	default:
		hp.Size = math32.Vec2(ext.X, ext.Y)
		hp.Euler = math32.Vec3(0, 0, 0)
		data.Z = cl.Pos
	}
	hp.Pos = renderPoint(data, originFor(ds, mp))
	return hp, true
}

// SliderRange returns the control range for the clip position slider
// on the given axis: [floor(min)-1, ceil(max)+1] of that coordinate
// column. The Z axis slider is intentionally unbounded (bounded is
// false) and callers must not enforce a range on it; the asymmetry
// with X/Y is preserved from the product behavior.
func SliderRange(ds *dataset.Dataset, mp *Mapping, axis math32.Dims) (rng minmax.F32, bounded bool) {
	st := dataset.ColumnStats(ds, mp.CoordColumn(axis))
	if st == nil {
		return rng, false
	}
	rng.Set(math32.Floor(float32(st.Min))-1, math32.Ceil(float32(st.Max))+1)
	if axis == math32.Z {
		return rng, false
	}
	return rng, true
}

// originFor computes the instance origin (row 0 coordinates + 1) for
// the given dataset and mapping, matching [Build].
func originFor(ds *dataset.Dataset, mp *Mapping) math32.Vector3 {
	if ds.NumRows() == 0 {
		return math32.Vector3{}
	}
	return math32.Vec3(
		float32(colValue(ds.Column(mp.X), 0))+1,
		float32(colValue(ds.Column(mp.Y), 0))+1,
		float32(colValue(ds.Column(mp.Z), 0))+1,
	)
}

// renderPoint maps a data-space point into render space with the same
// axis remap the transform builder applies to instance positions.
func renderPoint(data, origin math32.Vector3) math32.Vector3 {
	return math32.Vec3(
		data.X-origin.X+1,
		data.Z-origin.Z+1,
		-(data.Y - origin.Y + 1),
	)
}
