// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DefaultDPI is the resolution of raster images when Canvas.DPI is zero.
const DefaultDPI = 300

// A Canvas describes the image a Chart is encoded to.
type Canvas struct {
	// Format is one of "png", "jpg", "tif", "svg", or "pdf".
	Format string

	Width, Height vg.Length

	// DPI is the resolution of raster formats. Vector formats
	// ignore it.
	DPI int
}

// FormatOf returns the image format implied by the extension of path.
// A path with no extension is PNG.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "", "png":
		return "png", nil
	case "jpg", "jpeg":
		return "jpg", nil
	case "tif", "tiff":
		return "tif", nil
	case "svg", "pdf":
		return ext, nil
	}
	return "", fmt.Errorf("%s: unsupported image format %q", path, ext)
}

func (cv Canvas) new() (vg.CanvasWriterTo, error) {
	if cv.Width <= 0 || cv.Height <= 0 {
		return nil, fmt.Errorf("bad canvas size %v x %v", cv.Width, cv.Height)
	}
	dpi := cv.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}
	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(cv.Width, cv.Height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	}

	switch cv.Format {
	case "", "png":
		return vgimg.PngCanvas{Canvas: raster()}, nil
	case "jpg":
		return vgimg.JpegCanvas{Canvas: raster()}, nil
	case "tif":
		return vgimg.TiffCanvas{Canvas: raster()}, nil
	case "svg":
		return vgsvg.New(cv.Width, cv.Height), nil
	case "pdf":
		return vgpdf.New(cv.Width, cv.Height), nil
	}
	return nil, fmt.Errorf("unsupported image format %q", cv.Format)
}
