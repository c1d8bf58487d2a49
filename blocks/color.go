// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocks

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32/minmax"
	"github.com/cogentcore/blockview/dataset"
)

// DefaultColorMap is the color map used when the requested name is
// not in [colormap.AvailableMaps].
const DefaultColorMap = "ColdHot"

var (
	// BackgroundColor is the color of the reserved background slot.
	BackgroundColor = colors.FromRGB(128, 128, 128)

	// NoDataColor is the constant block color used when no attribute
	// is selected or the selected column has no usable statistics.
	// Distinct from [BackgroundColor] so the reserved slot is never
	// mistaken for data.
	NoDataColor = colors.FromRGB(70, 130, 180)
)

// ColorFunc returns a function mapping attribute values to colors.
// When attribute is empty, or its column yields no statistics, the
// returned function is a constant [NoDataColor]. Otherwise the named
// color map is stretched over the column's [min, max] domain and
// values outside the domain clamp to the nearest endpoint. The
// function is re-derived, never mutated, when any input changes.
func ColorFunc(ds *dataset.Dataset, attribute, mapName string) func(val float64) color.RGBA {
	if attribute == "" {
		return noData
	}
	st := dataset.ColumnStats(ds, attribute)
	if st == nil {
		return noData
	}
	cm, ok := colormap.AvailableMaps[mapName]
	if !ok {
		slog.Debug("blocks.ColorFunc: unknown color map, using default", "map", mapName)
		cm = colormap.AvailableMaps[DefaultColorMap]
	}
	rng := minmax.F64{Min: st.Min, Max: st.Max}
	return func(val float64) color.RGBA {
		return cm.Map(float32(rng.ClipNormValue(val)))
	}
}

func noData(val float64) color.RGBA {
	return NoDataColor
}

// setColor writes an RGB triple into the packed color buffer at the
// given instance index.
func setColor(buf []float32, idx int, clr color.RGBA) {
	buf[3*idx] = float32(clr.R) / 255
	buf[3*idx+1] = float32(clr.G) / 255
	buf[3*idx+2] = float32(clr.B) / 255
}
