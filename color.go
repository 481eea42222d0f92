package imxform

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseHexColor parses "#rgb", "#rrggbb" or the same without the leading
// hash into an opaque colour.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.NRGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}

	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}
