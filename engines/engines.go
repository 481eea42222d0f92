// Package engines selects a pixel engine backend by configured name.
package engines

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gomantics/imxform"
	"github.com/gomantics/imxform/engines/imaging"
	"github.com/gomantics/imxform/engines/xdraw"
)

// New returns a fresh engine for one descriptor.
func New(cfg *imxform.Config, logger *zap.Logger) (imxform.Engine, error) {
	switch cfg.Engine {
	case imxform.EngineImaging:
		return imaging.New(imaging.WithQuality(cfg.JPEGQuality), imaging.WithLogger(logger)), nil
	case imxform.EngineXDraw:
		return xdraw.New(xdraw.WithQuality(cfg.JPEGQuality), xdraw.WithLogger(logger)), nil
	}
	return nil, errors.Errorf("unknown engine %q", cfg.Engine)
}
