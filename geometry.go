package imxform

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Area returns width * height. Callers must keep the product within int.
func (img *Image) Area() int {
	return img.Width() * img.Height()
}

// Ratio returns width / height. A zero height, including an image that has
// not been decoded yet, returns ErrInvalidGeometry.
func (img *Image) Ratio() (float64, error) {
	if img.Height() == 0 {
		return 0, errors.Wrapf(ErrInvalidGeometry, "ratio of %dx%d", img.Width(), img.Height())
	}
	return float64(img.Width()) / float64(img.Height()), nil
}

// CropWidth returns the requested crop width and whether one was set.
func (img *Image) CropWidth() (int, bool) {
	if img.info.CropWidth == nil {
		return 0, false
	}
	return *img.info.CropWidth, true
}

// CropHeight returns the requested crop height and whether one was set.
func (img *Image) CropHeight() (int, bool) {
	if img.info.CropHeight == nil {
		return 0, false
	}
	return *img.info.CropHeight, true
}

// SetCropWidth stores the crop target width and returns it. Negative
// values are stored as 0.
func (img *Image) SetCropWidth(w int) int {
	w = max(w, 0)
	img.info.CropWidth = &w
	return w
}

// SetCropHeight stores the crop target height and returns it. Negative
// values are stored as 0.
func (img *Image) SetCropHeight(h int) int {
	h = max(h, 0)
	img.info.CropHeight = &h
	return h
}

// ClearCrop removes any crop target.
func (img *Image) ClearCrop() {
	img.info.CropWidth = nil
	img.info.CropHeight = nil
}

// CroppingIsNeeded reports whether the crop target is smaller than the
// current size on either axis. Both crop dimensions must be set; a target
// that shrinks one axis and exceeds the other still needs a crop.
func (img *Image) CroppingIsNeeded() bool {
	cw, okW := img.CropWidth()
	ch, okH := img.CropHeight()
	if !okW || !okH {
		return false
	}
	return cw < img.Width() || ch < img.Height()
}

// Crop crops to the target when CroppingIsNeeded. Each axis is clamped to
// the current size, so an axis whose target exceeds it is left alone. It
// reports whether the engine was asked to crop.
func (img *Image) Crop() (bool, error) {
	if !img.CroppingIsNeeded() {
		return false, nil
	}

	cropper, ok := img.engine.(Cropper)
	if !ok {
		return false, errors.Wrap(ErrNoEngine, "engine cannot crop")
	}

	cw, _ := img.CropWidth()
	ch, _ := img.CropHeight()
	w, h := min(cw, img.Width()), min(ch, img.Height())

	img.logger.Debug("cropping image",
		zap.String("path", img.path),
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()),
		zap.Int("cropWidth", w),
		zap.Int("cropHeight", h))

	if err := cropper.Crop(w, h); err != nil {
		return false, errors.Wrapf(err, "failed to crop %s", img.path)
	}
	img.SetWidth(w)
	img.SetHeight(h)
	return true, nil
}
