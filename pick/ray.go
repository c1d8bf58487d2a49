// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"image"
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// PointerRay converts a pointer position in scene pixels into a ray in
// the local space of the block collection. pos is relative to the scene
// viewport of the given size; group is the world matrix of the
// collection group, so the returned ray can be tested directly against
// the local bounding boxes of the instances. A degenerate ray (zero
// direction) is returned if a matrix cannot be inverted.
func PointerRay(pos, size image.Point, cam *xyz.Camera, group *math32.Matrix4) math32.Ray {
	sz := math32.Vec2(float32(size.X), float32(size.Y))
	fpos := math32.Vec2(float32(pos.X), float32(pos.Y))
	ndc := fpos.WindowToNDC(sz, math32.Vector2{}, true)
	ndc.Z = -1 // near plane
	invP, err := cam.ProjectionMatrix.Inverse()
	if err != nil {
		slog.Error("pick.PointerRay: projection matrix not invertible", "err", err)
		return math32.Ray{}
	}
	cdir := math32.Vector4{X: ndc.X, Y: ndc.Y, Z: ndc.Z, W: 1}.MulMatrix4(invP)
	cdir.Z = -1
	cdir.W = 0
	// camera pose matrix is the inverse of the view matrix
	wdir := cdir.MulMatrix4(&cam.Pose.Matrix)
	wpos := cam.Pose.Pos

	invG, err := group.Inverse()
	if err != nil {
		slog.Error("pick.PointerRay: group matrix not invertible", "err", err)
		return math32.Ray{}
	}
	lpos := math32.Vector4{X: wpos.X, Y: wpos.Y, Z: wpos.Z, W: 1}.MulMatrix4(invG)
	ldir := wdir.MulMatrix4(invG)
	dir := math32.Vec3(ldir.X, ldir.Y, ldir.Z).Normal()
	return math32.Ray{Origin: math32.Vec3(lpos.X, lpos.Y, lpos.Z), Dir: dir}
}
