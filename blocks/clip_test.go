// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocks

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/blockview/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clipDataset() *dataset.Dataset {
	return dataset.New([]string{"x", "y", "z"}, []dataset.Row{
		{"x": "0", "y": "0", "z": "0"},
		{"x": "10", "y": "4", "z": "2"},
	})
}

func TestClipInactive(t *testing.T) {
	cl := &Clip{}
	_, ok := cl.Plane(math32.Vec3(1, 1, 1))
	assert.False(t, ok)
	_, ok = cl.Helper(clipDataset(), testMapping())
	assert.False(t, ok)
}

func TestClipPlaneOffsets(t *testing.T) {
	origin := math32.Vec3(1, 1, 1) // data starting at 0 on each axis

	cl := &Clip{Active: true, Axis: math32.X, Pos: 5}
	pl, ok := cl.Plane(origin)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(-1, 0, 0), pl.Norm)
	assert.Equal(t, float32(-3), pl.Off) // 1 - 5 + 1

	cl = &Clip{Active: true, Axis: math32.Y, Pos: 5}
	pl, ok = cl.Plane(origin)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(0, 0, 1), pl.Norm)
	assert.Equal(t, float32(3), pl.Off) // 5 - 1 - 1

	cl = &Clip{Active: true, Axis: math32.Z, Pos: 5}
	pl, ok = cl.Plane(origin)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(0, -1, 0), pl.Norm)
	assert.Equal(t, float32(3), pl.Off)
}

func TestClipPlaneDegenerate(t *testing.T) {
	// start_x = slider_x - 1 makes the X offset evaluate to exactly 0
	cl := &Clip{Active: true, Axis: math32.X, Pos: 3}
	pl, ok := cl.Plane(math32.Vec3(2, 0, 0))
	require.True(t, ok)
	assert.Equal(t, float32(DegeneratePlaneOffset), pl.Off)

	cl = &Clip{Active: true, Axis: math32.Z, Pos: 1}
	pl, ok = cl.Plane(math32.Vec3(0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, float32(DegeneratePlaneOffset), pl.Off)
}

func TestCut(t *testing.T) {
	origin := math32.Vec3(1, 1, 1)

	cl := &Clip{}
	assert.False(t, cl.Cut(math32.Vec3(100, 100, 100), origin))

	// axis Y at Pos 5: plane (0,0,1) offset 3, removing render z < -3
	cl = &Clip{Active: true, Axis: math32.Y, Pos: 5}
	assert.True(t, cl.Cut(math32.Vec3(0, 0, -5), origin))
	assert.False(t, cl.Cut(math32.Vec3(0, 0, 0), origin))
}

func TestHelperPlaneSizes(t *testing.T) {
	ds := clipDataset()
	mp := testMapping()

	// clipping on Z sizes the helper plane by the X and Y extents
	cl := &Clip{Active: true, Axis: math32.Z, Pos: 1}
	hp, ok := cl.Helper(ds, mp)
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(10, 4), hp.Size)

	cl = &Clip{Active: true, Axis: math32.X, Pos: 5}
	hp, ok = cl.Helper(ds, mp)
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(4, 2), hp.Size)

	cl = &Clip{Active: true, Axis: math32.Y, Pos: 2}
	hp, ok = cl.Helper(ds, mp)
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(10, 2), hp.Size)
}

func TestHelperPlanePosition(t *testing.T) {
	ds := clipDataset()
	mp := testMapping()
	cl := &Clip{Active: true, Axis: math32.X, Pos: 5}
	hp, ok := cl.Helper(ds, mp)
	require.True(t, ok)
	// sits at the slider offset along the clip axis in render space
	assert.Equal(t, float32(5), hp.Pos.X)
	assert.Equal(t, float32(1), hp.Pos.Y)  // data z center
	assert.Equal(t, float32(-2), hp.Pos.Z) // negated data y center
}

func TestSliderRange(t *testing.T) {
	ds := dataset.New([]string{"x", "y", "z"}, []dataset.Row{
		{"x": "0.5", "y": "0", "z": "0"},
		{"x": "9.5", "y": "4", "z": "2"},
	})
	mp := testMapping()
	rng, bounded := SliderRange(ds, mp, math32.X)
	assert.True(t, bounded)
	assert.Equal(t, float32(-1), rng.Min) // floor(0.5) - 1
	assert.Equal(t, float32(11), rng.Max) // ceil(9.5) + 1

	rng, bounded = SliderRange(ds, mp, math32.Y)
	assert.True(t, bounded)
	assert.Equal(t, float32(-1), rng.Min)
	assert.Equal(t, float32(5), rng.Max)
}

// TestSliderRangeZUnbounded flags the intentional asymmetry: the Z
// slider is not bounds-clamped while X and Y are.
func TestSliderRangeZUnbounded(t *testing.T) {
	_, bounded := SliderRange(clipDataset(), testMapping(), math32.Z)
	assert.False(t, bounded)
}
