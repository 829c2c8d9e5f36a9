package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Space selects the color space used by BlendPerceptual.
type Space uint8

const (
	SpaceRGB Space = iota
	SpaceLab
	SpaceHCL
)

func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceLab:
		return "lab"
	case SpaceHCL:
		return "hcl"
	default:
		return fmt.Sprintf("space(%d)", uint8(s))
	}
}

// BlendPerceptual blends two hex colors in the given space. Lab and HCL avoid
// the muddy midpoints of channel interpolation, which suits damage flashes and
// health bar gradients. Parse failures fall back the same way LerpColor does.
func BlendPerceptual(from, to string, t float64, space Space) string {
	a, ok := HexToRGB(from)
	if !ok {
		return from
	}
	b, ok := HexToRGB(to)
	if !ok {
		return from
	}

	ca := toColorful(a)
	cb := toColorful(b)

	var blended colorful.Color
	switch space {
	case SpaceLab:
		blended = ca.BlendLab(cb, t)
	case SpaceHCL:
		blended = ca.BlendHcl(cb, t)
	default:
		blended = ca.BlendRgb(cb, t)
	}

	r, g, bl := blended.Clamped().RGB255()
	return RGBToHex(int(r), int(g), int(bl))
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
