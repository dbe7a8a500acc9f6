// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders meander patterns to bitmaps with gogpu/gg.
//
// The path and both frame shapes are stroked with the same style; nothing
// is filled. Import github.com/gogpu/gg/gpu in the main package to let gg
// use GPU acceleration where available.
package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/meander"
)

// Ext is the file extension appended by SavePNG.
const Ext = ".png"

// ErrEmptyCanvas is returned when the scaled canvas has no pixels.
var ErrEmptyCanvas = errors.New("raster: empty canvas")

// PixelSize returns the image dimensions for a canvas of w by h units at
// the given scale, rounding partial pixels up.
func PixelSize(w, h, scale float64) (int, int) {
	return int(math.Ceil(w * scale)), int(math.Ceil(h * scale))
}

// Render draws p with style st and returns the image.
func Render(p meander.Pattern, st meander.Style, opts ...Option) (image.Image, error) {
	dc, err := draw(p, st, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG renders p and writes it to basename + ".png".
// It returns the file name.
func SavePNG(basename string, p meander.Pattern, st meander.Style, opts ...Option) (string, error) {
	dc, err := draw(p, st, opts)
	if err != nil {
		return "", err
	}

	filename := basename + Ext
	if err := dc.SavePNG(filename); err != nil {
		return "", fmt.Errorf("raster: %w", err)
	}

	meander.Logger().Info("png written", "file", filename, "width", dc.Width(), "height", dc.Height())
	return filename, nil
}

// draw strokes the meander and its frames on a fresh context.
func draw(p meander.Pattern, st meander.Style, opts []Option) (*gg.Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stroke, err := st.StrokeColor()
	if err != nil {
		return nil, err
	}
	if st.Width < 0 {
		return nil, fmt.Errorf("raster: negative stroke width %v", st.Width)
	}

	cw, ch := p.CanvasSize()
	w, h := PixelSize(cw, ch, o.scale)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyCanvas, w, h)
	}

	meander.Logger().Debug("raster canvas", "width", w, "height", h, "scale", o.scale)

	dc := gg.NewContext(w, h)
	if o.background != nil {
		dc.ClearWithColor(gg.FromColor(o.background))
	}

	dc.SetColor(stroke)
	dc.SetLineWidth(st.Width * o.scale)
	dc.SetLineJoin(gg.LineJoinMiter)
	dc.SetLineCap(gg.LineCapButt)

	s := o.scale
	for _, e := range p.Path().Elements() {
		switch e := e.(type) {
		case meander.MoveTo:
			dc.MoveTo(e.Point.X*s, e.Point.Y*s)
		case meander.LineTo:
			dc.LineTo(e.Point.X*s, e.Point.Y*s)
		case meander.LineBy:
			dc.LineTo(e.Point.X*s, e.Point.Y*s)
		case meander.Close:
			dc.ClosePath()
		}
	}
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("raster: stroke path: %w", err)
	}

	outer, inner := p.FrameShapes()
	for _, shape := range []meander.Shape{outer, inner} {
		switch f := shape.(type) {
		case meander.Rect:
			dc.DrawRectangle(f.X*s, f.Y*s, f.W*s, f.H*s)
		case meander.Circle:
			dc.DrawCircle(f.Center.X*s, f.Center.Y*s, f.R*s)
		default:
			return nil, fmt.Errorf("raster: unknown shape %T", shape)
		}
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("raster: stroke frame: %w", err)
		}
	}

	return dc, nil
}
