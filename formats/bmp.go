package formats

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// biBitfields and biAlphaBitfields are the DIB compression values that carry
// explicit channel masks.
const (
	biBitfields      = 3
	biAlphaBitfields = 6
)

// ExtractBMP reads the BMP file header and the DIB header that follows it.
func ExtractBMP(r io.ReadSeeker) (*Result, error) {
	if err := rewind(r); err != nil {
		return nil, err
	}

	var fileHeader [14]byte
	if _, err := io.ReadFull(r, fileHeader[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read BMP file header")
	}
	if Detect(fileHeader[:]) != BMP {
		return nil, errors.Wrap(ErrInvalidData, "invalid BMP signature")
	}

	var dibSizeBytes [4]byte
	if _, err := io.ReadFull(r, dibSizeBytes[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read DIB header size")
	}
	dibSize := binary.LittleEndian.Uint32(dibSizeBytes[:])

	result := &Result{MIME: MIME(BMP)}

	switch {
	case dibSize >= 40:
		// BITMAPINFOHEADER and its extensions share the first 36 bytes.
		var dib [36]byte
		if _, err := io.ReadFull(r, dib[:]); err != nil {
			return nil, errors.Wrap(err, "failed to read DIB header")
		}

		width := int32(binary.LittleEndian.Uint32(dib[0:4]))
		height := int32(binary.LittleEndian.Uint32(dib[4:8]))
		if height < 0 {
			// Top-down DIB.
			height = -height
		}
		bpp := binary.LittleEndian.Uint16(dib[10:12])
		compression := binary.LittleEndian.Uint32(dib[12:16])

		result.Width = int(width)
		result.Height = int(height)
		result.ColorDepth = int(bpp)
		result.ColorSpace = bmpColorSpace(bpp)
		// The alpha mask only exists in V4+ headers; 32bpp BI_RGB bitmaps
		// reserve the fourth byte.
		result.HasAlpha = bpp == 32 && dibSize > 40 &&
			(compression == biBitfields || compression == biAlphaBitfields)

	case dibSize == 12:
		// BITMAPCOREHEADER
		var dib [8]byte
		if _, err := io.ReadFull(r, dib[:]); err != nil {
			return nil, errors.Wrap(err, "failed to read DIB header")
		}

		result.Width = int(binary.LittleEndian.Uint16(dib[0:2]))
		result.Height = int(binary.LittleEndian.Uint16(dib[2:4]))
		bpp := binary.LittleEndian.Uint16(dib[6:8])
		result.ColorDepth = int(bpp)
		result.ColorSpace = bmpColorSpace(bpp)

	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "DIB header size %d", dibSize)
	}

	return result, nil
}

func bmpColorSpace(bpp uint16) string {
	switch bpp {
	case 1, 4, 8:
		return "Indexed"
	case 16, 24:
		return "RGB"
	case 32:
		return "RGBA"
	}
	return "Unknown"
}
