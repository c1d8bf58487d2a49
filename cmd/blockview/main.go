// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command blockview opens an interactive 3D viewer on a tabular block
// model file:
//
//	blockview [data.csv|data.tsv] [config.toml]
//
// The optional TOML config sets the column mapping, color attribute,
// and color map; everything can also be changed from the GUI.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"github.com/cogentcore/blockview/blockcore"
	"github.com/cogentcore/blockview/blocks"
	"github.com/cogentcore/blockview/dataset"
)

// Config holds the startup settings.
type Config struct {

	// Data is the tabular data file to load on startup.
	Data string

	// Attribute is the column coloring the blocks; when empty the
	// first non-coordinate column is used.
	Attribute string

	// ColorMap is the name of the color map.
	ColorMap string `default:"ColdHot"`

	// Tooltips enables the hover readout and click-to-copy.
	Tooltips bool `default:"true"`

	// Map configures how columns map onto block geometry.
	Map blocks.Mapping
}

func (cfg *Config) Defaults() {
	errors.Log(cli.SetFromDefaults(cfg))
	cfg.Map.Defaults()
}

func main() {
	cfg := &Config{}
	cfg.Defaults()
	args := os.Args[1:]
	if len(args) > 1 {
		if err := tomlx.Open(cfg, args[1]); err != nil {
			slog.Error("config file not usable", "file", args[1], "err", err)
			os.Exit(1)
		}
	}
	if len(args) > 0 {
		cfg.Data = args[0]
	}

	ds := dataset.New(nil, nil)
	if cfg.Data != "" {
		var err error
		ds, err = dataset.OpenCSV(cfg.Data, dataset.Detect)
		if err != nil {
			slog.Error("data file not usable", "file", cfg.Data, "err", err)
			os.Exit(1)
		}
	}

	v := &blockcore.Viewer{}
	v.Defaults()
	v.Map = cfg.Map
	v.ColorMap = core.ColorMapName(cfg.ColorMap)
	v.Tooltips = cfg.Tooltips
	v.SetData(ds)
	if cfg.Attribute != "" {
		v.Attribute = cfg.Attribute
	}

	b := v.ConfigGUI()
	v.FrameCamera()
	b.RunMainWindow()
}
