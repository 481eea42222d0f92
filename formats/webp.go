package formats

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ExtractWebP reads the first chunk of a RIFF/WEBP container. WebP is sniffed
// so callers get a MIME type, but it is not one of the families the
// descriptor classifies.
func ExtractWebP(r io.ReadSeeker) (*Result, error) {
	if err := rewind(r); err != nil {
		return nil, err
	}

	var header [20]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read WebP header")
	}
	if !bytes.Equal(header[0:4], riffSignature) || !bytes.Equal(header[8:12], webpSignature) {
		return nil, errors.Wrap(ErrInvalidData, "missing RIFF/WEBP signature")
	}

	result := &Result{MIME: MIME(WebP), ColorSpace: "RGB"}

	var payload [10]byte
	chunk := string(header[12:16])
	switch chunk {
	case "VP8 ":
		if _, err := io.ReadFull(r, payload[:]); err != nil {
			return nil, errors.Wrap(err, "failed to read VP8 frame header")
		}
		if payload[3] != 0x9D || payload[4] != 0x01 || payload[5] != 0x2A {
			return nil, errors.Wrap(ErrInvalidData, "invalid VP8 start code")
		}
		result.Width = int(binary.LittleEndian.Uint16(payload[6:8]) & 0x3FFF)
		result.Height = int(binary.LittleEndian.Uint16(payload[8:10]) & 0x3FFF)
		result.ColorDepth = 24

	case "VP8L":
		if _, err := io.ReadFull(r, payload[:5]); err != nil {
			return nil, errors.Wrap(err, "failed to read VP8L header")
		}
		if payload[0] != 0x2F {
			return nil, errors.Wrap(ErrInvalidData, "invalid VP8L signature")
		}
		bits := binary.LittleEndian.Uint32(payload[1:5])
		result.Width = int(bits&0x3FFF) + 1
		result.Height = int((bits>>14)&0x3FFF) + 1
		result.HasAlpha = bits&(1<<28) != 0
		result.ColorDepth = 32

	case "VP8X":
		if _, err := io.ReadFull(r, payload[:]); err != nil {
			return nil, errors.Wrap(err, "failed to read VP8X header")
		}
		result.HasAlpha = payload[0]&0x10 != 0
		result.Width = int(uint32(payload[4])|uint32(payload[5])<<8|uint32(payload[6])<<16) + 1
		result.Height = int(uint32(payload[7])|uint32(payload[8])<<8|uint32(payload[9])<<16) + 1
		result.ColorDepth = 24

	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "WebP chunk %q", chunk)
	}

	if result.HasAlpha {
		result.ColorSpace = "RGBA"
		result.ColorDepth = 32
	}
	return result, nil
}
