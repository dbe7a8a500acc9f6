// Package config holds the parameters of a meander run.
//
// Params is a tagged variant: the shared fields (stroke styling, border
// margin, output name) plus exactly one of Rect or Circle, selected by
// Kind. Params can be built from defaults, loaded from TOML or YAML
// presets, and turned into a [meander.Pattern].
package config

import (
	"errors"
	"fmt"

	"github.com/gogpu/meander"
)

// Version is the current preset format version.
const Version = 1

// Defaults shared by both kinds.
const (
	DefaultBorderMargin = 10.0
	DefaultFile         = "meander"
)

// Rectangular defaults.
const (
	DefaultSize   = 25
	DefaultWidth  = 16
	DefaultHeight = 9
)

// Circular defaults.
const (
	DefaultPatternCount = 24
	DefaultRadius       = 400.0
)

var (
	// ErrUnknownKind is returned for a Kind other than rect or circle.
	ErrUnknownKind = errors.New("config: unknown pattern kind")

	// ErrMissingVariant is returned when the variant selected by Kind is
	// absent or the other variant is also present.
	ErrMissingVariant = errors.New("config: variant does not match kind")

	// ErrInvalidParam is returned for out-of-range parameters.
	ErrInvalidParam = errors.New("config: invalid parameter")

	// ErrUnsupportedVersion is returned for presets newer than Version.
	ErrUnsupportedVersion = errors.New("config: unsupported version")
)

// Kind selects the pattern topology.
type Kind string

// Pattern kinds.
const (
	KindRect   Kind = "rect"
	KindCircle Kind = "circle"
)

// RectParams are the rectangular-only parameters.
type RectParams struct {
	// Size is the key unit length.
	Size int `toml:"size" yaml:"size"`
	// Width is the number of motif repeats across.
	Width int `toml:"width" yaml:"width"`
	// Height is the number of motif repeats down.
	Height int `toml:"height" yaml:"height"`
}

// CircleParams are the circular-only parameters.
type CircleParams struct {
	// PatternCount is the number of motif repeats around the circle.
	PatternCount int `toml:"pattern_count" yaml:"pattern_count"`
	// Radius is the outer frame radius.
	Radius float64 `toml:"radius" yaml:"radius"`
}

// Params are the parameters of one run.
type Params struct {
	Version      int           `toml:"version" yaml:"version"`
	Kind         Kind          `toml:"kind" yaml:"kind"`
	BorderMargin float64       `toml:"border_margin" yaml:"border_margin"`
	Stroke       meander.Style `toml:"stroke" yaml:"stroke"`
	// File is the output basename; extensions are added per format.
	File   string        `toml:"file" yaml:"file"`
	Rect   *RectParams   `toml:"rect,omitempty" yaml:"rect,omitempty"`
	Circle *CircleParams `toml:"circle,omitempty" yaml:"circle,omitempty"`
}

func shared(kind Kind) Params {
	return Params{
		Version:      Version,
		Kind:         kind,
		BorderMargin: DefaultBorderMargin,
		Stroke:       meander.DefaultStyle(),
		File:         DefaultFile,
	}
}

// DefaultRect returns the default rectangular parameters.
func DefaultRect() Params {
	p := shared(KindRect)
	p.Rect = &RectParams{Size: DefaultSize, Width: DefaultWidth, Height: DefaultHeight}
	return p
}

// DefaultCircle returns the default circular parameters.
func DefaultCircle() Params {
	p := shared(KindCircle)
	p.Circle = &CircleParams{PatternCount: DefaultPatternCount, Radius: DefaultRadius}
	return p
}

// Default returns the default parameters for kind.
func Default(kind Kind) (Params, error) {
	switch kind {
	case KindRect:
		return DefaultRect(), nil
	case KindCircle:
		return DefaultCircle(), nil
	}
	return Params{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// fillDefaults sets the variant for Kind when it is missing and replaces
// zero variant fields with their defaults.
func (p *Params) fillDefaults() {
	if p.Version == 0 {
		p.Version = Version
	}
	switch p.Kind {
	case KindRect:
		if p.Rect == nil {
			p.Rect = &RectParams{}
		}
		if p.Rect.Size == 0 {
			p.Rect.Size = DefaultSize
		}
		if p.Rect.Width == 0 {
			p.Rect.Width = DefaultWidth
		}
		if p.Rect.Height == 0 {
			p.Rect.Height = DefaultHeight
		}
	case KindCircle:
		if p.Circle == nil {
			p.Circle = &CircleParams{}
		}
		if p.Circle.PatternCount == 0 {
			p.Circle.PatternCount = DefaultPatternCount
		}
		if p.Circle.Radius == 0 {
			p.Circle.Radius = DefaultRadius
		}
	}
}

// Validate checks the variant against Kind and the parameter ranges.
//
// Rectangular unit counts are not range checked: small counts produce
// degenerate but well-defined geometry. The circular repeat count is
// checked when the pattern is built.
func (p Params) Validate() error {
	if p.Version > Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, p.Version)
	}
	switch p.Kind {
	case KindRect:
		if p.Rect == nil || p.Circle != nil {
			return fmt.Errorf("%w: %s", ErrMissingVariant, p.Kind)
		}
		if p.Rect.Size <= 0 {
			return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidParam, p.Rect.Size)
		}
	case KindCircle:
		if p.Circle == nil || p.Rect != nil {
			return fmt.Errorf("%w: %s", ErrMissingVariant, p.Kind)
		}
		if p.Circle.Radius <= 0 {
			return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidParam, p.Circle.Radius)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, p.Kind)
	}
	if p.BorderMargin < 0 {
		return fmt.Errorf("%w: border margin must not be negative, got %v", ErrInvalidParam, p.BorderMargin)
	}
	if p.File == "" {
		return fmt.Errorf("%w: empty output file", ErrInvalidParam)
	}
	if err := p.Stroke.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}
	return nil
}

// Pattern validates p and builds the pattern it describes.
func (p Params) Pattern() (meander.Pattern, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	switch p.Kind {
	case KindCircle:
		cfg, err := meander.NewCircleConfig(p.Circle.Radius, p.Circle.PatternCount, p.BorderMargin, p.Stroke.Width)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return cfg, nil
	default:
		return meander.NewRectConfig(p.Rect.Size, p.Rect.Width, p.Rect.Height, p.BorderMargin, p.Stroke.Width), nil
	}
}
