package scene

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrBadColor is returned for color strings that are not #rrggbb.
var ErrBadColor = errors.New("scene: malformed color")

// Factor is a normalized RGBA tint, each channel in [0, 1].
type Factor [4]float64

// FactorFromHex converts "#rrggbb" into a Factor with alpha fixed at 1.
func FactorFromHex(hex string) (Factor, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return Factor{}, err
	}
	return Factor{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
		1,
	}, nil
}

// RGBA8 converts the factor to 0-255 channels, rounding to nearest.
func (f Factor) RGBA8() color.NRGBA {
	return color.NRGBA{
		R: to8(f[0]),
		G: to8(f[1]),
		B: to8(f[2]),
		A: to8(f[3]),
	}
}

// Hex formats the color channels as "#rrggbb".
func (f Factor) Hex() string {
	c := f.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// ParseHex parses "#rrggbb" (the leading '#' is optional).
func ParseHex(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
