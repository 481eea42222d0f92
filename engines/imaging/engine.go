// Package imaging is a pixel engine backed by github.com/disintegration/imaging.
package imaging

import (
	"bytes"
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gomantics/imxform"
	"github.com/gomantics/imxform/engines/internal/gifpal"
	"github.com/gomantics/imxform/formats"
)

var codecs = map[string]imaging.Format{
	formats.JPEG: imaging.JPEG,
	formats.PNG:  imaging.PNG,
	formats.GIF:  imaging.GIF,
	formats.BMP:  imaging.BMP,
}

// Engine holds one decoded image.
type Engine struct {
	img     image.Image
	format  imaging.Format
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

// Decode implements imxform.Engine. EXIF orientation is applied, so the
// reported size is the displayed size.
func (e *Engine) Decode(ctx context.Context, path string) (imxform.Header, error) {
	if err := ctx.Err(); err != nil {
		return imxform.Header{}, err
	}

	hdr, err := imxform.ProbeFile(path)
	if err != nil {
		return imxform.Header{}, err
	}
	format, ok := codecs[hdr.Format]
	if !ok {
		return imxform.Header{}, errors.Wrapf(imxform.ErrUnsupportedFormat, "imaging cannot encode %s", hdr.Format)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return imxform.Header{}, errors.Wrapf(err, "failed to decode %s", path)
	}

	e.img = img
	e.format = format

	bounds := img.Bounds()
	hdr.Width, hdr.Height = bounds.Dx(), bounds.Dy()

	e.logger.Debug("imaging decoded",
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
	err := imaging.Encode(&buf, e.img, e.format,
		imaging.JPEGQuality(e.quality),
		imaging.GIFQuantizer(gifpal.Quantizer{}),
		imaging.GIFDrawer(gifpal.Drawer))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode image")
	}

	e.logger.Debug("imaging encoded", zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// Fill implements imxform.Engine by compositing the image over an opaque canvas.
func (e *Engine) Fill(hexColor string) error {
	if e.img == nil {
		return imxform.ErrNotDecoded
	}

	c, err := imxform.ParseHexColor(hexColor)
	if err != nil {
		return err
	}

	bounds := e.img.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), c)
	e.img = imaging.Overlay(canvas, e.img, image.Pt(0, 0), 1.0)
	return nil
}

// EnableTransparency implements imxform.Engine. The image is converted to
// NRGBA so later operations keep straight alpha. Paletted sources already
// carry their transparent index and are left as decoded.
func (e *Engine) EnableTransparency() error {
	if e.img == nil {
		return imxform.ErrNotDecoded
	}
	if _, ok := e.img.(*image.Paletted); ok {
		return nil
	}
	e.img = imaging.Clone(e.img)
	return nil
}

// Crop implements imxform.Cropper, keeping the center of the image.
func (e *Engine) Crop(width, height int) error {
	if e.img == nil {
		return imxform.ErrNotDecoded
	}
	e.img = imaging.CropAnchor(e.img, width, height, imaging.Center)
	return nil
}

// Resize implements imxform.Resizer.
func (e *Engine) Resize(width, height int) error {
	if e.img == nil {
		return imxform.ErrNotDecoded
	}
	e.img = imaging.Resize(e.img, width, height, imaging.Lanczos)
	return nil
}

// Sharpen implements imxform.Sharpener.
func (e *Engine) Sharpen() error {
	if e.img == nil {
		return imxform.ErrNotDecoded
	}
	e.img = imaging.Sharpen(e.img, 0.5)
	return nil
}

// Image returns the current pixels, or nil before Decode.
func (e *Engine) Image() image.Image {
	return e.img
}
