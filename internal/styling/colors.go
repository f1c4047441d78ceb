package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func toTcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// towards blends c towards target by the given percentage, in Lab space so
// that the steps look even.
func towards(c, target colorful.Color, percentage int) colorful.Color {
	if percentage <= 0 {
		return c
	}
	if percentage >= 100 {
		return target
	}
	return c.BlendLab(target, float64(percentage)/100.0).Clamped()
}

// contrasting returns c with its lightness pushed away from that of bg by the
// given percentage of the remaining range.
func contrasting(c, bg colorful.Color, percentage int) colorful.Color {
	h, s, l := c.Hsl()
	_, _, bgL := bg.Hsl()
	scalar := float64(percentage) / 100.0
	if bgL < 0.5 {
		l += (1 - l) * scalar
	} else {
		l -= l * scalar
	}
	return colorful.Hsl(h, s, l)
}

func parseHex(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color '%s' (%w)", hex, err)
	}
	return c, nil
}
