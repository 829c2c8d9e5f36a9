// Package color converts between "#rrggbb" strings and RGB channels and
// blends colors for HUD effects.
package color

import (
	"strconv"
	"strings"

	"github.com/zeusync/fpskit/pkg/mathx"
)

// RGB holds 8-bit channels stored as ints so out of range values survive
// until RGBToHex.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HexToRGB parses a six digit hex color with an optional leading '#'. Case is
// ignored. The three digit short form is not accepted.
func HexToRGB(hex string) (RGB, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return RGB{}, false
	}

	var channels [3]int
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		channels[i] = int(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// RGBToHex packs the channels as 1<<24 + r<<16 + g<<8 + b with 32-bit shifts,
// prints the sum in lowercase hex and drops its leading digit. Channels in
// [0,255] give "#rrggbb". Other values are not clamped: they can carry into
// the dropped digit or, when the sum goes negative, yield fewer than six
// digits.
func RGBToHex(r, g, b int) string {
	packed := int64(1<<24) + int64(int32(r)<<16) + int64(int32(g)<<8) + int64(int32(b))
	digits := strconv.FormatInt(packed, 16)
	return "#" + digits[1:]
}

// String formats c with RGBToHex.
func (c RGB) String() string {
	return RGBToHex(c.R, c.G, c.B)
}

// LerpColor interpolates channel by channel and rounds each result. When
// either endpoint fails to parse, from is returned unchanged.
func LerpColor(from, to string, t float64) string {
	a, ok := HexToRGB(from)
	if !ok {
		return from
	}
	b, ok := HexToRGB(to)
	if !ok {
		return from
	}

	return RGBToHex(
		lerpChannel(a.R, b.R, t),
		lerpChannel(a.G, b.G, t),
		lerpChannel(a.B, b.B, t),
	)
}

func lerpChannel(from, to int, t float64) int {
	return int(mathx.Round(mathx.Lerp(float64(from), float64(to), t)))
}
