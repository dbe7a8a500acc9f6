// Package meander generates procedural Greek key (meander) line patterns.
//
// # Overview
//
// meander turns a handful of numeric parameters into an exact, closed,
// non-self-intersecting path describing a meander band and the pair of
// frame shapes that enclose it. Two topologies are supported:
//
//   - Rectangular: a bordered tiling walked clockwise around four sides.
//   - Circular: a radial tiling spread over seven concentric radii.
//
// # Quick Start
//
//	import "github.com/gogpu/meander"
//
//	cfg := meander.NewRectConfig(25, 16, 9, 10, 6)
//	path := cfg.Path()
//	outer, inner := cfg.FrameShapes()
//
//	circle, err := meander.NewCircleConfig(400, 24, 10, 6)
//	if err != nil {
//	    // too few repeats to fit the motif around the circle
//	}
//
// # Output
//
// The core produces geometry only. Package svg serializes a [Pattern] to an
// SVG document and package raster renders it to PNG using gogpu/gg.
//
// # Coordinate System
//
// Same as SVG and gg:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians measured with atan2 in these coordinates
//
// # Determinism
//
// Every generator is a pure function of its configuration. Two calls with
// the same parameters yield bit-identical paths.
package meander
