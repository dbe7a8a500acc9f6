// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/meander"
	"github.com/gogpu/meander/raster"
)

var red = meander.Style{Color: "#ff0000", Width: 2, Opacity: 1}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestPixelSize(t *testing.T) {
	tests := []struct {
		w, h, scale float64
		wantW       int
		wantH       int
	}{
		{2064, 1189, 1, 2064, 1189},
		{100, 50, 2, 200, 100},
		{10.2, 10.8, 1, 11, 11},
		{0, 0, 1, 0, 0},
	}
	for _, tt := range tests {
		w, h := raster.PixelSize(tt.w, tt.h, tt.scale)
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}

func TestRender_Rect(t *testing.T) {
	cfg := meander.NewRectConfig(10, 3, 3, 2, 2)

	img, err := raster.Render(cfg, red)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 178, 178), img.Bounds())

	// First horizontal run of the top motif: (14,14) to (54,14).
	assert.NotZero(t, alphaAt(img, 34, 14))
	r, g, b, _ := img.At(34, 14).RGBA()
	assert.Greater(t, r, g)
	assert.Greater(t, r, b)

	// Margin corner stays transparent.
	assert.Zero(t, alphaAt(img, 0, 0))
}

func TestRender_Options(t *testing.T) {
	cfg := meander.NewRectConfig(10, 3, 3, 2, 2)

	img, err := raster.Render(cfg, red, raster.WithScale(2), raster.WithBackground(color.White))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 356, 356), img.Bounds())

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})

	// Scaled copy of the same run.
	assert.NotZero(t, alphaAt(img, 68, 28))

	// Non-positive scales are ignored.
	img, err = raster.Render(cfg, red, raster.WithScale(-3))
	require.NoError(t, err)
	assert.Equal(t, 178, img.Bounds().Dx())
}

func TestRender_Circle(t *testing.T) {
	cfg, err := meander.NewCircleConfig(100, 8, 2, 2)
	require.NoError(t, err)

	img, err := raster.Render(cfg, red)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 208, 208), img.Bounds())

	// Top of the outer frame circle.
	assert.NotZero(t, alphaAt(img, 104, 4))
	// Centre is inside the inner frame and never drawn.
	assert.Zero(t, alphaAt(img, 104, 104))
}

func TestRender_Errors(t *testing.T) {
	cfg := meander.NewRectConfig(10, 3, 3, 2, 2)

	_, err := raster.Render(cfg, meander.Style{Color: "bogus", Width: 1, Opacity: 1})
	assert.ErrorIs(t, err, meander.ErrInvalidColor)

	_, err = raster.Render(cfg, meander.Style{Color: "#000", Width: -1, Opacity: 1})
	assert.Error(t, err)

	_, err = raster.Render(meander.NewRectConfig(0, 0, 0, 0, 0), red)
	assert.ErrorIs(t, err, raster.ErrEmptyCanvas)
}

func TestSavePNG(t *testing.T) {
	base := filepath.Join(t.TempDir(), "meander")
	cfg := meander.NewRectConfig(10, 4, 3, 2, 2)

	name, err := raster.SavePNG(base, cfg, red)
	require.NoError(t, err)
	assert.Equal(t, base+".png", name)

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	cw, ch := cfg.CanvasSize()
	w, h := raster.PixelSize(cw, ch, 1)
	assert.Equal(t, image.Rect(0, 0, w, h), img.Bounds())
}
