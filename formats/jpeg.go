package formats

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ExtractJPEG walks JPEG segments up to the first SOF marker.
func ExtractJPEG(r io.ReadSeeker) (*Result, error) {
	if err := rewind(r); err != nil {
		return nil, err
	}

	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read JPEG header")
	}
	if soi[0] != 0xFF || soi[1] != 0xD8 {
		return nil, errors.Wrap(ErrInvalidData, "missing JPEG SOI marker")
	}

	result := &Result{MIME: MIME(JPEG)}

	for {
		var marker [2]byte
		if _, err := io.ReadFull(r, marker[:]); err != nil {
			break
		}
		if marker[0] != 0xFF {
			break
		}

		markerType := marker[1]
		// Fill bytes before a marker.
		for markerType == 0xFF {
			var b [1]byte
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return nil, errors.Wrap(ErrInvalidData, "truncated JPEG marker")
			}
			markerType = b[0]
		}

		if markerType == 0xD9 || markerType == 0xDA {
			// EOI or start of scan: no frame header follows.
			break
		}
		if markerType >= 0xD0 && markerType <= 0xD7 {
			continue
		}

		var lengthBytes [2]byte
		if _, err := io.ReadFull(r, lengthBytes[:]); err != nil {
			break
		}
		length := int(binary.BigEndian.Uint16(lengthBytes[:])) - 2
		if length < 0 {
			return nil, errors.Wrap(ErrInvalidData, "negative JPEG segment length")
		}

		if isSOF(markerType) {
			return readSOF(r, length, result)
		}

		if _, err := r.Seek(int64(length), io.SeekCurrent); err != nil {
			return nil, errors.Wrap(err, "failed to skip JPEG segment")
		}
	}

	return nil, errors.Wrap(ErrInvalidData, "no JPEG frame header found")
}

func isSOF(marker byte) bool {
	switch marker {
	case 0xC0, 0xC1, 0xC2, 0xC3, 0xC5, 0xC6, 0xC7, 0xC9, 0xCA, 0xCB, 0xCD, 0xCE, 0xCF:
		return true
	}
	return false
}

func readSOF(r io.Reader, length int, result *Result) (*Result, error) {
	if length < 6 {
		return nil, errors.Wrap(ErrInvalidData, "short JPEG frame header")
	}

	var sof [6]byte
	if _, err := io.ReadFull(r, sof[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read JPEG frame header")
	}

	precision := int(sof[0])
	result.Height = int(binary.BigEndian.Uint16(sof[1:3]))
	result.Width = int(binary.BigEndian.Uint16(sof[3:5]))

	components := int(sof[5])
	result.ColorDepth = precision * components
	switch components {
	case 1:
		result.ColorSpace = "Grayscale"
	case 3:
		result.ColorSpace = "RGB"
	case 4:
		result.ColorSpace = "CMYK"
	default:
		result.ColorSpace = "Unknown"
	}

	return result, nil
}
