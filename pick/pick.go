// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick resolves pointer positions to block instances: it casts
// rays into the collection, maintains the hover state for the tooltip,
// and copies the hovered row to the clipboard on click.
package pick

import (
	"image"
	"log/slog"
	"strings"
	"time"

	"cogentcore.org/core/base/fileinfo/mimedata"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/blockview/blocks"
	"github.com/cogentcore/blockview/dataset"
)

// AckDuration is the default time the copied acknowledgment stays
// visible after a click before the display reverts to the plain row.
const AckDuration = 800 * time.Millisecond

// NoIndex is the instance index reported when nothing is hovered.
const NoIndex = -1

// Clipboard is the writable clipboard a click copies to, satisfied by
// the system clipboard of a scene widget.
type Clipboard interface {
	Write(data mimedata.Mimes) error
}

// Hover is the current hover target. A zero Row with Index == NoIndex
// means nothing is hovered.
type Hover struct {

	// Row is the source row of the hovered block, nil when none.
	Row dataset.Row

	// Index is the instance index of the hovered block, NoIndex when none.
	Index int

	// Point is the ray intersection point in collection-local space.
	Point math32.Vector3
}

// Picker turns pointer events into hover state and clipboard copies
// for a block collection. All methods are called from the single event
// goroutine; the acknowledgment timer only notifies OnExpire, and the
// owner calls [Picker.ClearAck] back on the event goroutine to do the
// actual clear, so no Picker state is touched off it.
type Picker struct {

	// Blocks is the collection being picked against.
	Blocks *blocks.Instances

	// Disabled suppresses all picking; the hover state stays empty.
	Disabled bool

	// Excludes are viewport rectangles (overlaid UI controls) within
	// which pointer positions are ignored, taking precedence over any
	// block behind them. Widget-scoped event delivery already keeps
	// pointer events over sibling widgets away from the scene, so this
	// only matters for overlays drawn inside the scene viewport itself;
	// it is empty in the normal viewer layout.
	Excludes []image.Rectangle

	// Hover is the current hover target, replaced wholesale on every
	// pointer move.
	Hover Hover

	// Copied reports that a click copy is being acknowledged; the
	// tooltip shows the acknowledgment instead of the row while set.
	Copied bool

	// AckDur is how long Copied stays set after a click.
	AckDur time.Duration

	// OnExpire is called (on the timer goroutine) when an
	// acknowledgment period elapses, passing the generation of the
	// click it belongs to. The owner must get back onto the event
	// goroutine and call [Picker.ClearAck] with that generation.
	OnExpire func(gen int)

	// ackGen numbers the clicks; a timer firing for an older
	// generation must not clear a newer acknowledgment.
	ackGen int

	ackTimer *time.Timer
}

// NewPicker returns a Picker for the given collection with the default
// acknowledgment duration and an empty hover state.
func NewPicker(bl *blocks.Instances) *Picker {
	pk := &Picker{Blocks: bl, AckDur: AckDuration}
	pk.Reset()
	return pk
}

// Reset clears the hover state.
func (pk *Picker) Reset() {
	pk.Hover = Hover{Index: NoIndex}
}

// Pick casts the given collection-local ray against all block bounding
// boxes and returns the index and intersection point of the closest
// hit. The reserved background slot is never a candidate. ok is false
// when the ray misses everything.
func (pk *Picker) Pick(ray math32.Ray) (idx int, pt math32.Vector3, ok bool) {
	idx = NoIndex
	best := math32.Infinity
	for i := range pk.Blocks.Boxes {
		if i == blocks.BackgroundIndex {
			continue
		}
		ipt, has := ray.IntersectBox(pk.Blocks.Boxes[i])
		if !has {
			continue
		}
		d := ipt.DistanceTo(ray.Origin)
		if d < best {
			best = d
			idx = i
			pt = ipt
		}
	}
	return idx, pt, idx != NoIndex
}

// MoveEvent handles a pointer move at the given viewport position with
// its corresponding local-space ray, replacing the hover state. It
// returns true if a block is hovered afterwards. Positions inside an
// excluded rectangle never hover, regardless of what lies behind them.
func (pk *Picker) MoveEvent(pos image.Point, ray math32.Ray) bool {
	if pk.Disabled {
		pk.Reset()
		return false
	}
	for _, ex := range pk.Excludes {
		if pos.In(ex) {
			pk.Reset()
			return false
		}
	}
	idx, pt, ok := pk.Pick(ray)
	if !ok {
		pk.Reset()
		return false
	}
	row, has := pk.Blocks.Row(idx)
	if !has {
		pk.Reset()
		return false
	}
	pk.Hover = Hover{Row: row, Index: idx, Point: pt}
	return true
}

// Click copies the hovered row to the given clipboard and starts the
// acknowledgment period. Clicking again while acknowledged restarts
// the period. It returns true if a copy happened; with no hover it is
// a no-op.
func (pk *Picker) Click(cb Clipboard) bool {
	if pk.Hover.Row == nil {
		return false
	}
	text := FormatRow(pk.Hover.Row, pk.Blocks.Data.Fields)
	if err := cb.Write(mimedata.NewText(text)); err != nil {
		slog.Error("pick.Click: clipboard write failed", "err", err)
		return false
	}
	pk.Copied = true
	pk.ackGen++
	gen := pk.ackGen
	if pk.ackTimer != nil {
		pk.ackTimer.Stop()
	}
	pk.ackTimer = time.AfterFunc(pk.AckDur, func() {
		if pk.OnExpire != nil {
			pk.OnExpire(gen)
		}
	})
	return true
}

// ClearAck ends the acknowledgment started by the click of the given
// generation. A stale generation is ignored: a timer that fired for an
// earlier click, even right after a newer one restarted the period,
// cannot clear the newer acknowledgment. Returns whether the display
// state changed. Must be called on the event goroutine.
func (pk *Picker) ClearAck(gen int) bool {
	if gen != pk.ackGen || !pk.Copied {
		return false
	}
	pk.Copied = false
	pk.ackTimer = nil
	return true
}

// FormatRow renders a row as one "field: value" line per field, in the
// given field order. This is both the tooltip body and the text placed
// on the clipboard.
func FormatRow(row dataset.Row, fields []string) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(row[f])
	}
	return b.String()
}
