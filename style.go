package meander

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Default stroke styling.
const (
	DefaultStrokeColor   = "#AB8E0E"
	DefaultStrokeWidth   = 6.0
	DefaultStrokeOpacity = 0.7
)

// ErrInvalidColor is returned by ParseColor for unrecognised colours.
var ErrInvalidColor = errors.New("meander: invalid color")

// Style is the stroke styling shared by the meander path and its frames.
// Nothing is ever filled.
type Style struct {
	// Color is a hex colour ("#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA")
	// or an SVG colour keyword such as "gold".
	Color string `toml:"color" yaml:"color"`

	// Width is the stroke width in canvas units.
	Width float64 `toml:"width" yaml:"width"`

	// Opacity is the stroke opacity in [0, 1].
	Opacity float64 `toml:"opacity" yaml:"opacity"`
}

// DefaultStyle returns the default gold stroke.
func DefaultStyle() Style {
	return Style{
		Color:   DefaultStrokeColor,
		Width:   DefaultStrokeWidth,
		Opacity: DefaultStrokeOpacity,
	}
}

// Validate checks that the colour parses, the width is not negative and
// the opacity lies in [0, 1].
func (s Style) Validate() error {
	if _, err := ParseColor(s.Color); err != nil {
		return err
	}
	if s.Width < 0 {
		return fmt.Errorf("meander: negative stroke width %v", s.Width)
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return fmt.Errorf("meander: stroke opacity %v outside [0, 1]", s.Opacity)
	}
	return nil
}

// StrokeColor returns the parsed colour with the stroke opacity folded
// into its alpha channel.
func (s Style) StrokeColor() (color.NRGBA, error) {
	c, err := ParseColor(s.Color)
	if err != nil {
		return color.NRGBA{}, err
	}
	c.A = toUint8(float64(c.A) * s.Opacity)
	return c, nil
}

// ParseColor parses a hex colour or an SVG colour keyword.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// parseHexColor parses "#RGB", "#RGBA", "#RRGGBB" and "#RRGGBBAA".
func parseHexColor(s string) (color.NRGBA, error) {
	hex := s[1:]

	var r, g, b uint32
	a := uint32(255)
	ok := true
	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex accumulates the hex digits of s into val.
// It reports false on the first non-hex character.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// toUint8 rounds v to the nearest channel value in [0, 255].
func toUint8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
