package formats

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ExtractPNG reads the IHDR chunk and scans ancillary chunks for a tRNS
// chunk, which makes palette and truecolour images transparent.
func ExtractPNG(r io.ReadSeeker) (*Result, error) {
	if err := rewind(r); err != nil {
		return nil, err
	}

	var sig [8]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read PNG signature")
	}
	if Detect(sig[:]) != PNG {
		return nil, errors.Wrap(ErrInvalidData, "invalid PNG signature")
	}

	result := &Result{MIME: MIME(PNG)}
	sawHeader := false

	for {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			break
		}
		length := int64(binary.BigEndian.Uint32(hdr[0:4]))
		chunkType := string(hdr[4:8])

		switch chunkType {
		case "IHDR":
			if length < 13 {
				return nil, errors.Wrap(ErrInvalidData, "short PNG IHDR chunk")
			}
			var ihdr [13]byte
			if _, err := io.ReadFull(r, ihdr[:]); err != nil {
				return nil, errors.Wrap(err, "failed to read PNG IHDR chunk")
			}
			applyIHDR(ihdr, result)
			sawHeader = true
			length -= 13

		case "tRNS":
			result.HasAlpha = true

		case "IDAT", "IEND":
			// Ancillary chunks that affect transparency precede image data.
			if !sawHeader {
				return nil, errors.Wrap(ErrInvalidData, "PNG image data before IHDR")
			}
			return result, nil
		}

		// Skip the remaining chunk data and its CRC.
		if _, err := r.Seek(length+4, io.SeekCurrent); err != nil {
			break
		}
	}

	if !sawHeader {
		return nil, errors.Wrap(ErrInvalidData, "missing PNG IHDR chunk")
	}
	return result, nil
}

func applyIHDR(ihdr [13]byte, result *Result) {
	result.Width = int(binary.BigEndian.Uint32(ihdr[0:4]))
	result.Height = int(binary.BigEndian.Uint32(ihdr[4:8]))
	result.ColorDepth = int(ihdr[8])

	switch colorType := ihdr[9]; colorType {
	case 0:
		result.ColorSpace = "Grayscale"
	case 2:
		result.ColorSpace = "RGB"
	case 3:
		result.ColorSpace = "Indexed"
	case 4:
		result.ColorSpace = "GrayscaleAlpha"
		result.HasAlpha = true
	case 6:
		result.ColorSpace = "RGBA"
		result.HasAlpha = true
	default:
		result.ColorSpace = "Unknown"
	}
}
