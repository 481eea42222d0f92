// Package xdraw is a pixel engine built on the standard codecs,
// golang.org/x/image and github.com/nfnt/resize.
package xdraw

import (
	"bytes"
	"context"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/gomantics/imxform"
	"github.com/gomantics/imxform/engines/internal/gifpal"
	"github.com/gomantics/imxform/formats"
)

// Engine holds one decoded image.
type Engine struct {
	img     image.Image
	format  string
	quality int
	logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithQuality sets the JPEG encoder quality.
func WithQuality(q int) Option {
	return func(e *Engine) {
		e.quality = q
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an engine with nothing decoded.
func New(opts ...Option) *Engine {
	e := &Engine{
		quality: imxform.DefaultJPEGQuality,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Decode implements imxform.Engine.
func (e *Engine) Decode(ctx context.Context, path string) (imxform.Header, error) {
	if err := ctx.Err(); err != nil {
		return imxform.Header{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return imxform.Header{}, errors.Wrapf(imxform.ErrInvalidSource, "read %s: %v", path, err)
	}

	hdr, err := imxform.ProbeBytes(data)
	if err != nil {
		return imxform.Header{}, err
	}

	var img image.Image
	switch hdr.Format {
	case formats.JPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case formats.PNG:
		img, err = png.Decode(bytes.NewReader(data))
	case formats.GIF:
		img, err = gif.Decode(bytes.NewReader(data))
	case formats.BMP:
		img, err = bmp.Decode(bytes.NewReader(data))
	default:
		return imxform.Header{}, errors.Wrapf(imxform.ErrUnsupportedFormat, "xdraw cannot decode %s", hdr.Format)
	}
	if err != nil {
		return imxform.Header{}, errors.Wrapf(err, "failed to decode %s", path)
	}

	e.img = img
	e.format = hdr.Format

	bounds := img.Bounds()
	hdr.Width, hdr.Height = bounds.Dx(), bounds.Dy()

	e.logger.Debug("xdraw decoded",
		zap.String("path", path),
		zap.String("format", hdr.Format),
		zap.Int("width", hdr.Width),
		zap.Int("height", hdr.Height))

	return hdr, nil
}

// Data implements imxform.Engine.
func (e *Engine) Data() ([]byte, error) {
	if e.img == nil {
		return nil, imxform.ErrNotDecoded
	}

	var buf bytes.Buffer
	var err error
	switch e.format {
	case formats.JPEG:
		err = jpeg.Encode(&buf, e.img, &jpeg.Options{Quality: e.quality})
	case formats.PNG:
		err = png.Encode(&buf, e.img)
	case formats.GIF:
		err = gif.Encode(&buf, e.img, gifpal.Options())
	case formats.BMP:
		err = bmp.Encode(&buf, e.img)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", e.format)
	}

	e.logger.Debug("xdraw encoded", zap.String("format", e.format), zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// Fill implements imxform.Engine by drawing the image over a uniform colour.
func (e *Engine) Fill(hexColor string) error {
	if e.img == nil {
		return imxform.ErrNotDecoded
	}

	c, err := imxform.ParseHexColor(hexColor)
	if err != nil {
		return err
	}

	bounds := e.img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), e.img, bounds.Min, draw.Over)
	e.img = dst
	return nil
}

// EnableTransparency implements imxform.Engine by copying the pixels into
// an NRGBA buffer. Paletted sources keep their transparent index as decoded.
func (e *Engine) EnableTransparency() error {
	if e.img == nil {
		return imxform.ErrNotDecoded
	}
	if _, ok := e.img.(*image.Paletted); ok {
		return nil
	}
	e.img = toNRGBA(e.img, e.img.Bounds())
	return nil
}

// Crop implements imxform.Cropper, keeping the center of the image.
func (e *Engine) Crop(width, height int) error {
	if e.img == nil {
		return imxform.ErrNotDecoded
	}

	bounds := e.img.Bounds()
	width, height = min(width, bounds.Dx()), min(height, bounds.Dy())
	x := bounds.Min.X + (bounds.Dx()-width)/2
	y := bounds.Min.Y + (bounds.Dy()-height)/2

	e.img = toNRGBA(e.img, image.Rect(x, y, x+width, y+height))
	return nil
}

// Resize implements imxform.Resizer.
func (e *Engine) Resize(width, height int) error {
	if e.img == nil {
		return imxform.ErrNotDecoded
	}
	e.img = resize.Resize(uint(width), uint(height), e.img, resize.Lanczos3)
	return nil
}

// Image returns the current pixels, or nil before Decode.
func (e *Engine) Image() image.Image {
	return e.img
}

// toNRGBA copies r of src into a new NRGBA image anchored at the origin.
func toNRGBA(src image.Image, r image.Rectangle) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}
