package imxform

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NoBackground reports whether color asks for no fill. Both "" and "0"
// count as unset.
func NoBackground(color string) bool {
	return color == "" || color == "0"
}

// ApplyBackground reconciles the format's transparency support with the
// caller's intent. For formats that cannot hold transparency it does
// nothing. Otherwise an unset color (see NoBackground) keeps the alpha
// channel and a hex color mattes the image onto that color.
func (img *Image) ApplyBackground(color string) error {
	if !img.IsAbleToHaveTransparency() {
		img.logger.Debug("background skipped for opaque format",
			zap.String("path", img.path),
			zap.String("mime", img.MimeType()))
		return nil
	}

	if img.engine == nil {
		return ErrNoEngine
	}

	if NoBackground(color) {
		img.logger.Debug("enabling transparency", zap.String("path", img.path))
		return errors.Wrap(img.engine.EnableTransparency(), "failed to enable transparency")
	}

	img.logger.Debug("filling background",
		zap.String("path", img.path),
		zap.String("color", color))
	return errors.Wrapf(img.engine.Fill(color), "failed to fill background with %s", color)
}
