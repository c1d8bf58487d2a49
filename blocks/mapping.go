// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blocks turns block model rows into renderable instances:
// one transform and one color per row, an optional axis-aligned clip
// plane, and the helper plane that visualizes the cut.
package blocks

import "cogentcore.org/core/math32"

// Mapping configures how dataset columns map onto block geometry.
type Mapping struct {

	// X, Y, Z are the coordinate column names. All three must be set
	// before any instances are built.
	X, Y, Z string

	// UseDimColumns reads per-row block sizes from DimX, DimY, DimZ
	// instead of the fixed BlockDim.
	UseDimColumns bool

	// DimX, DimY, DimZ are the dimension column names, used when
	// UseDimColumns is set.
	DimX, DimY, DimZ string

	// BlockDim is the fixed block size used when UseDimColumns is off.
	BlockDim math32.Vector3

	// ZScale is a vertical exaggeration factor applied to the whole
	// collection, not per block.
	ZScale float32 `default:"1"`

	// ShowEdges renders a wireframe box around each block, sharing the
	// block transforms.
	ShowEdges bool

	// Hidden hides the block collection entirely.
	Hidden bool
}

// Defaults sets default mapping values: unit blocks, no exaggeration.
func (mp *Mapping) Defaults() {
	mp.X, mp.Y, mp.Z = "x", "y", "z"
	mp.BlockDim.SetScalar(1)
	mp.ZScale = 1
}

// Valid returns whether all three coordinate columns are set.
// Instancing does not proceed on an invalid mapping.
func (mp *Mapping) Valid() bool {
	return mp.X != "" && mp.Y != "" && mp.Z != ""
}

// CoordColumn returns the coordinate column name for the given axis.
func (mp *Mapping) CoordColumn(axis math32.Dims) string {
	switch axis {
	case math32.X:
		return mp.X
	case math32.Y:
		return mp.Y
	default:
		return mp.Z
	}
}
