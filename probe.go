package imxform

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/gomantics/imxform/formats"
)

// Header holds what a decode step learns about a file without touching pixels.
type Header struct {
	// Format is the detected container name (e.g., "JPEG", "PNG", "WebP").
	Format string

	// MIME is the registered MIME type for Format.
	MIME string

	// Width and Height are the image dimensions in pixels.
	Width, Height int

	// ColorDepth is the number of bits per pixel or color channel.
	ColorDepth int

	// ColorSpace indicates the color space (e.g., "RGB", "RGBA", "Indexed").
	ColorSpace string

	// HasAlpha indicates an alpha channel or transparent palette entry.
	HasAlpha bool

	// FileSize is the size of the source in bytes, when known.
	FileSize int64
}

// ProbeFile reads only the header of the image at path.
//
// Example:
//
//	hdr, err := imxform.ProbeFile("photo.jpg")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s %dx%d\n", hdr.MIME, hdr.Width, hdr.Height)
func ProbeFile(path string) (Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return Header{}, errors.Wrapf(ErrInvalidSource, "open %s: %v", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return Header{}, errors.Wrapf(ErrInvalidSource, "stat %s: %v", path, err)
	}

	hdr, err := ProbeReader(file)
	if err != nil {
		return Header{}, err
	}
	hdr.FileSize = info.Size()
	return hdr, nil
}

// ProbeBytes reads the header of an in-memory image.
func ProbeBytes(data []byte) (Header, error) {
	hdr, err := ProbeReader(bytes.NewReader(data))
	if err != nil {
		return Header{}, err
	}
	hdr.FileSize = int64(len(data))
	return hdr, nil
}

// ProbeReader detects the format from magic bytes and dispatches to the
// matching header parser. FileSize is left zero.
func ProbeReader(r io.ReadSeeker) (Header, error) {
	var magic [16]byte
	n, err := io.ReadFull(r, magic[:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Header{}, errors.Wrapf(ErrInvalidSource, "read header: %v", err)
	}

	format := formats.Detect(magic[:n])
	if format == "" {
		return Header{}, ErrUnsupportedFormat
	}

	res, err := formats.Extract(format, r)
	if err != nil {
		return Header{}, errors.Wrapf(err, "failed to extract %s header", format)
	}

	return Header{
		Format:     format,
		MIME:       res.MIME,
		Width:      res.Width,
		Height:     res.Height,
		ColorDepth: res.ColorDepth,
		ColorSpace: res.ColorSpace,
		HasAlpha:   res.HasAlpha,
	}, nil
}
