package formats

import (
	"io"

	"github.com/pkg/errors"
)

// Format names returned by Detect.
const (
	JPEG = "JPEG"
	PNG  = "PNG"
	GIF  = "GIF"
	WebP = "WebP"
	BMP  = "BMP"
)

// Extract dispatches to the appropriate format parser based on the format string.
func Extract(format string, r io.ReadSeeker) (*Result, error) {
	switch format {
	case JPEG:
		return ExtractJPEG(r)
	case PNG:
		return ExtractPNG(r)
	case GIF:
		return ExtractGIF(r)
	case WebP:
		return ExtractWebP(r)
	case BMP:
		return ExtractBMP(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// MIME returns the canonical MIME type for a detected format name.
func MIME(format string) string {
	switch format {
	case JPEG:
		return "image/jpeg"
	case PNG:
		return "image/png"
	case GIF:
		return "image/gif"
	case WebP:
		return "image/webp"
	case BMP:
		return "image/bmp"
	}
	return ""
}

// rewind seeks r back to the start of the stream.
func rewind(r io.Seeker) error {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "failed to seek to start")
	}
	return nil
}
