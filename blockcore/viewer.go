// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockcore provides the interactive block model viewer: a
// 3D scene of instanced blocks built from tabular data, with column
// mapping and color controls, axis-aligned clipping, and hover + copy
// picking.
package blockcore

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/cogentcore/blockview/blocks"
	"github.com/cogentcore/blockview/dataset"
	"github.com/cogentcore/blockview/pick"
)

// mesh and node names within the scene
const (
	blockMeshName = "blockBox"
	planeMeshName = "clipPlane"
	blocksGroupNm = "blocks"
	helperPlaneNm = "clip-helper"
	edgeLineWidth = 0.02
)

// Viewer is the top-level block model viewer state. All updates run on
// the GUI event goroutine and rebuild the scene wholesale from the
// current dataset, mapping, and clip state; there is no incremental
// update path.
type Viewer struct { //types:add

	// Data is the current dataset.
	Data *dataset.Dataset `display:"-"`

	// Map configures how dataset columns map onto block geometry.
	Map blocks.Mapping `display:"add-fields"`

	// Attribute is the column coloring the blocks; empty colors all
	// blocks uniformly.
	Attribute string

	// ColorMap is the color map stretched over the attribute range.
	ColorMap core.ColorMapName

	// Clip is the axis-aligned clipping state.
	Clip blocks.Clip `display:"add-fields"`

	// Tooltips enables the hover readout and click-to-copy.
	Tooltips bool

	// Blocks holds the instance buffers built from the current state.
	Blocks *blocks.Instances `display:"-"`

	// Picker resolves pointer events against Blocks.
	Picker *pick.Picker `display:"-"`

	// SceneEditor is the 3D view.
	SceneEditor *xyzcore.SceneEditor `display:"-"`

	group     *xyz.Group
	status    *core.Text
	clipCtrl  *core.Frame
	moveWired bool
}

// NewViewer returns a Viewer on the given dataset with default
// mapping, color map, and tooltips enabled.
func NewViewer(ds *dataset.Dataset) *Viewer {
	v := &Viewer{}
	v.Defaults()
	v.SetData(ds)
	return v
}

// Defaults sets default viewer settings.
func (v *Viewer) Defaults() {
	v.Map.Defaults()
	v.ColorMap = core.ColorMapName(blocks.DefaultColorMap)
	v.Tooltips = true
}

// SetData replaces the dataset and picks a default attribute: the
// first field that is not a coordinate or dimension column.
func (v *Viewer) SetData(ds *dataset.Dataset) {
	v.Data = ds
	v.Attribute = ""
	for _, f := range ds.Fields {
		switch f {
		case v.Map.X, v.Map.Y, v.Map.Z, v.Map.DimX, v.Map.DimY, v.Map.DimZ:
		default:
			v.Attribute = f
		}
		if v.Attribute != "" {
			break
		}
	}
}

// ConfigGUI constructs the viewer GUI: settings form on the left, the
// 3D scene with clip controls and a status line on the right, and the
// main toolbar. The scene is populated from the current state.
func (v *Viewer) ConfigGUI() *core.Body {
	b := core.NewBody("blockview").SetTitle("Block Model Viewer")
	split := core.NewSplits(b)

	sv := core.NewForm(split).SetStruct(v)
	scfr := core.NewFrame(split)
	split.SetSplits(.25, .75)

	scfr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
	})

	sv.OnChange(func(e events.Event) {
		v.UpdateBlocks()
	})

	v.SceneEditor = xyzcore.NewSceneEditor(scfr)
	v.SceneEditor.UpdateWidget()
	sc := v.SceneEditor.SceneXYZ()
	v.makeScene(sc)

	v.clipCtrl = core.NewFrame(scfr)
	v.clipCtrl.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Grow.Set(1, 0)
	})

	v.status = core.NewText(scfr).SetText("")

	v.Picker = pick.NewPicker(v.Blocks)
	v.Picker.OnExpire = func(gen int) {
		// fires on the ack timer goroutine; all picker state changes
		// happen under the GUI lock
		v.status.AsyncLock()
		if v.Picker.ClearAck(gen) {
			v.updateStatus()
		}
		v.status.AsyncUnlock()
	}
	v.handleEvents()

	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(v.MakeToolbar)
	})
	v.UpdateBlocks()
	return b
}

// MakeToolbar adds the viewer actions to the main toolbar.
func (v *Viewer) MakeToolbar(p *tree.Plan) {
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(v.OpenCSV).SetText("Open").SetIcon(icons.Open)
	})
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(v.UpdateBlocks).SetText("Update").SetIcon(icons.Update)
	})
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(v.FrameCamera).SetText("Frame").SetIcon(icons.ZoomInMap)
	})
}

// OpenCSV loads a new dataset from the given tabular file (comma or
// tab delimited, detected from the contents) and rebuilds the scene.
func (v *Viewer) OpenCSV(fname core.Filename) error { //types:add
	ds, err := dataset.OpenCSV(string(fname), dataset.Detect)
	if err != nil {
		return err
	}
	v.SetData(ds)
	v.UpdateBlocks()
	v.FrameCamera()
	return nil
}

// makeScene sets up the static scene: lighting, shared meshes, and
// the group holding the block solids.
func (v *Viewer) makeScene(sc *xyz.Scene) {
	sc.Background = colors.Scheme.Select.Container
	xyz.NewAmbient(sc, "ambient", 0.3, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "dir", 1, xyz.DirectSun)
	dir.Pos.Set(0, 2, 1)

	xyz.NewBox(sc, blockMeshName, 1, 1, 1)
	xyz.NewPlane(sc, planeMeshName, 1, 1)

	v.group = xyz.NewGroup(sc)
	v.group.SetName(blocksGroupNm)

	sc.Camera.Pose.Pos = math32.Vec3(0, 10, 20)
	sc.Camera.LookAt(math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")
}

// UpdateBlocks rebuilds the instance buffers and the scene from the
// current dataset, mapping, attribute, color map, and clip state.
// Everything is replaced wholesale from one snapshot.
func (v *Viewer) UpdateBlocks() { //types:add
	sc := v.SceneEditor.SceneXYZ()
	in := blocks.Build(v.Data, &v.Map, v.Attribute, string(v.ColorMap))
	v.Blocks = in
	if v.Picker != nil {
		v.Picker.Blocks = in
		v.Picker.Disabled = v.Map.Hidden || !v.Tooltips
		v.Picker.Reset()
	}
	v.wireMoveEvents()

	v.group.DeleteChildren()
	sc.DeleteUnusedMeshes()

	if !v.Map.Hidden {
		for i := blocks.BackgroundIndex + 1; i < len(in.Positions); i++ {
			if v.Clip.Cut(in.Positions[i], in.Origin) {
				continue
			}
			blockMesh, _ := sc.MeshByName(blockMeshName)
			sld := xyz.NewSolid(v.group).SetMesh(blockMesh)
			sld.SetName(fmt.Sprintf("block-%d", i))
			sld.Pose.Pos = in.Positions[i]
			sld.Pose.Scale = in.Scales[i]
			sld.Material.Color = in.Color(i)
			if v.Map.ShowEdges {
				enm := fmt.Sprintf("edge-%d", i)
				xyz.NewLineBox(sc, v.group, enm, enm, in.Boxes[i],
					edgeLineWidth, colors.FromRGB(0, 0, 0), xyz.Inactive)
			}
		}
	}
	if hp, ok := v.Clip.Helper(v.Data, &v.Map); ok {
		planeMesh, _ := sc.MeshByName(planeMeshName)
		psld := xyz.NewSolid(v.group).SetMesh(planeMesh)
		psld.SetName(helperPlaneNm)
		psld.Pose.Pos = hp.Pos
		psld.Pose.Scale = math32.Vec3(hp.Size.X, 1, hp.Size.Y)
		psld.SetEulerRotation(hp.Euler.X, hp.Euler.Y, hp.Euler.Z)
		psld.Material.Color = color.RGBA{200, 200, 60, 128}
		psld.Material.CullBack = false
	}
	v.group.Pose.Scale = in.GroupScale()

	v.updateControls()
	v.updateStatus()
	sc.SetNeedsUpdate()
	v.SceneEditor.NeedsRender()
}

// FrameCamera points the camera at the center of the block collection
// from a distance proportional to its extents.
func (v *Viewer) FrameCamera() { //types:add
	if v.Blocks == nil || v.Blocks.NumBlocks() == 0 {
		return
	}
	sc := v.SceneEditor.SceneXYZ()
	bb := v.Blocks.Bounds()
	ctr := bb.Min.Add(bb.Max).MulScalar(0.5).Mul(v.Blocks.GroupScale())
	sz := bb.Size().Mul(v.Blocks.GroupScale())
	dist := math32.Max(sz.Length(), 1)
	sc.Camera.Pose.Pos = ctr.Add(math32.Vec3(0, 0.5*dist, dist))
	sc.Camera.LookAt(ctr, math32.Vec3(0, 1, 0))
	sc.SetNeedsUpdate()
	v.SceneEditor.NeedsRender()
}

// handleEvents wires pointer events on the scene widget into the
// picker: moves update the hover readout, clicks copy the hovered row.
func (v *Viewer) handleEvents() {
	sw := v.SceneEditor.SceneWidget()
	sw.On(events.Click, func(e events.Event) {
		if v.Picker == nil {
			return
		}
		if v.Picker.Click(sw.Clipboard()) {
			e.SetHandled()
			v.updateStatus()
		}
	})
	v.wireMoveEvents()
}

// wireMoveEvents installs the pointer-move listener the first time
// tooltips are enabled; with tooltips off from the start no move
// listener exists and no per-event ray casting happens. Listeners
// cannot be removed, so after a later toggle off the Picker.Disabled
// guard keeps the installed handler inert.
func (v *Viewer) wireMoveEvents() {
	if !v.Tooltips || v.moveWired || v.SceneEditor == nil {
		return
	}
	v.moveWired = true
	sw := v.SceneEditor.SceneWidget()
	sw.On(events.MouseMove, func(e events.Event) {
		if v.Picker == nil || v.Picker.Disabled || v.Blocks == nil {
			return
		}
		pos := e.Pos().Sub(sw.Geom.ContentBBox.Min)
		ray := v.pointerRay(pos)
		v.Picker.MoveEvent(pos, ray)
		v.updateStatus()
	})
}

// pointerRay builds the collection-local ray for a scene-relative
// pointer position.
func (v *Viewer) pointerRay(pos image.Point) math32.Ray {
	sc := v.SceneEditor.SceneXYZ()
	return pick.PointerRay(pos, sc.Geom.Size, &sc.Camera, &v.group.Pose.WorldMatrix)
}

// updateControls rebuilds the controls row under the scene: the
// attribute chooser over the current fields, and the clip position
// control for the current axis — a slider clamped to
// floor(min)-1 .. ceil(max)+1 for the horizontal axes, an unclamped
// spinner for the vertical axis.
func (v *Viewer) updateControls() {
	if v.clipCtrl == nil {
		return
	}
	v.clipCtrl.DeleteChildren()

	core.NewText(v.clipCtrl).SetText("Attribute:")
	ch := core.NewChooser(v.clipCtrl).SetStrings(v.Data.Fields...)
	ch.SetCurrentValue(v.Attribute)
	ch.OnChange(func(e events.Event) {
		v.Attribute, _ = ch.CurrentItem.Value.(string)
		v.UpdateBlocks()
	})

	core.NewText(v.clipCtrl).SetText(fmt.Sprintf("Clip %v:", v.Clip.Axis))
	rng, bounded := blocks.SliderRange(v.Data, &v.Map, v.Clip.Axis)
	if bounded {
		sr := core.NewSlider(v.clipCtrl).SetMin(rng.Min).SetMax(rng.Max).SetValue(v.Clip.Pos)
		sr.OnChange(func(e events.Event) {
			v.Clip.Pos = sr.Value
			v.UpdateBlocks()
		})
	} else {
		sp := core.NewSpinner(v.clipCtrl).SetValue(v.Clip.Pos)
		sp.OnChange(func(e events.Event) {
			v.Clip.Pos = sp.Value
			v.UpdateBlocks()
		})
	}
	v.clipCtrl.Update()
}

// updateStatus refreshes the status line under the scene: the copy
// acknowledgment while active, the hovered row otherwise.
func (v *Viewer) updateStatus() {
	if v.status == nil {
		return
	}
	text := ""
	switch {
	case v.Picker == nil || !v.Tooltips:
	case v.Picker.Copied:
		text = "Copied to clipboard"
	case v.Picker.Hover.Row != nil:
		text = pick.FormatRow(v.Picker.Hover.Row, v.Data.Fields)
	}
	v.status.SetText(text)
	v.status.NeedsRender()
}
