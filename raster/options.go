// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image/color"

// Option configures a render.
//
// Example:
//
//	// Default: 1 pixel per canvas unit, transparent background
//	img, err := raster.Render(cfg, style)
//
//	// Double resolution on white
//	img, err := raster.Render(cfg, style,
//	    raster.WithScale(2),
//	    raster.WithBackground(color.White))
type Option func(*options)

// options holds optional configuration for a render.
type options struct {
	scale      float64
	background color.Color
}

// defaultOptions returns the default render options.
func defaultOptions() options {
	return options{
		scale:      1,
		background: nil, // transparent
	}
}

// WithScale sets the number of pixels per canvas unit.
// Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithBackground fills the image with c before drawing.
// The default background is transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
