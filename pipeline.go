package imxform

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Decode asks the engine to load FullPath and records the dimensions and
// MIME type it reports.
func (img *Image) Decode(ctx context.Context) error {
	if img.engine == nil {
		return ErrNoEngine
	}

	hdr, err := img.engine.Decode(ctx, img.FullPath())
	if err != nil {
		return errors.Wrapf(err, "failed to decode %s", img.FullPath())
	}
	img.applyHeader(hdr)
	return nil
}

// Inspect fills the metadata from the file header alone, without an engine.
func (img *Image) Inspect() error {
	hdr, err := ProbeFile(img.FullPath())
	if err != nil {
		return err
	}
	img.applyHeader(hdr)
	return nil
}

func (img *Image) applyHeader(hdr Header) {
	img.SetWidth(hdr.Width)
	img.SetHeight(hdr.Height)
	img.SetMimeType(hdr.MIME)

	img.logger.Debug("decoded image",
		zap.String("path", img.path),
		zap.String("mime", hdr.MIME),
		zap.Int("width", hdr.Width),
		zap.Int("height", hdr.Height))
}

// Resize resamples the image to width x height and records the new size.
func (img *Image) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidGeometry, "resize to %dx%d", width, height)
	}

	resizer, ok := img.engine.(Resizer)
	if !ok {
		return errors.Wrap(ErrNoEngine, "engine cannot resize")
	}
	if err := resizer.Resize(width, height); err != nil {
		return errors.Wrapf(err, "failed to resize %s", img.path)
	}

	img.SetWidth(width)
	img.SetHeight(height)
	return nil
}

// Sharpen sharpens the image when its format benefits from it and the
// engine supports it. It reports whether sharpening was applied.
func (img *Image) Sharpen() (bool, error) {
	if !img.sharpeningDesired() {
		return false, nil
	}

	sharpener, ok := img.engine.(Sharpener)
	if !ok {
		return false, nil
	}
	if err := sharpener.Sharpen(); err != nil {
		return false, errors.Wrapf(err, "failed to sharpen %s", img.path)
	}
	return true, nil
}
