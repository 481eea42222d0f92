// Package gifpal builds GIF palettes that keep fully transparent pixels.
package gifpal

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"slices"
)

// NumColors is the largest palette a GIF frame can carry.
const NumColors = 256

// Quantizer implements draw.Quantizer. An image with few enough colours
// keeps them exactly; otherwise the web-safe palette is used. A transparent
// entry is reserved whenever the image has a fully transparent pixel.
type Quantizer struct{}

// Quantize implements draw.Quantizer.
func (Quantizer) Quantize(p color.Palette, m image.Image) color.Palette {
	limit := cap(p)
	if limit == 0 || limit > NumColors {
		limit = NumColors
	}
	p = p[:0]

	transparent, exact := false, true
	seen := make(map[color.NRGBA]struct{})
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				transparent = true
				continue
			}
			if !exact {
				continue
			}
			c.A = 0xff
			if _, ok := seen[c]; ok {
				continue
			}
			// one slot stays free for the transparent entry
			if len(seen) >= limit-1 {
				exact = false
				continue
			}
			seen[c] = struct{}{}
		}
	}

	if transparent {
		p = append(p, color.NRGBA{})
	}
	if !exact {
		p = append(p, palette.WebSafe...)
		return p[:min(len(p), limit)]
	}

	opaque := make([]color.NRGBA, 0, len(seen))
	for c := range seen {
		opaque = append(opaque, c)
	}
	slices.SortFunc(opaque, func(a, b color.NRGBA) int {
		return int(pack(a)) - int(pack(b))
	})
	for _, c := range opaque {
		p = append(p, c)
	}
	if len(p) == 0 {
		p = append(p, color.Black)
	}
	return p
}

func pack(c color.NRGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Drawer maps each pixel to its nearest palette entry without error
// diffusion, so transparent pixels stay on the transparent entry.
var Drawer draw.Drawer = draw.Src

// Options returns encoder options that use Quantizer and Drawer.
func Options() *gif.Options {
	return &gif.Options{
		NumColors: NumColors,
		Quantizer: Quantizer{},
		Drawer:    Drawer,
	}
}
