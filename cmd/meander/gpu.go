//go:build gpu

package main

// Build with -tags gpu to let gg rasterize on the GPU when a device is
// available; it falls back to the CPU otherwise.
import _ "github.com/gogpu/gg/gpu"
