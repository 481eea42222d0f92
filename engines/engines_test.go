package engines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gomantics/imxform"
	"github.com/gomantics/imxform/engines/imaging"
	"github.com/gomantics/imxform/engines/xdraw"
)

func TestNew(t *testing.T) {
	cfg := imxform.DefaultConfig()

	e, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &imaging.Engine{}, e)

	cfg.Engine = imxform.EngineXDraw
	e, err = New(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &xdraw.Engine{}, e)

	cfg.Engine = "gd"
	_, err = New(cfg, nil)
	assert.Error(t, err)
}

func TestNew_Capabilities(t *testing.T) {
	imagingEngine, err := New(&imxform.Config{Engine: imxform.EngineImaging, JPEGQuality: 80}, nil)
	require.NoError(t, err)
	assert.Implements(t, (*imxform.Cropper)(nil), imagingEngine)
	assert.Implements(t, (*imxform.Resizer)(nil), imagingEngine)
	assert.Implements(t, (*imxform.Sharpener)(nil), imagingEngine)

	xdrawEngine, err := New(&imxform.Config{Engine: imxform.EngineXDraw, JPEGQuality: 80}, nil)
	require.NoError(t, err)
	assert.Implements(t, (*imxform.Cropper)(nil), xdrawEngine)
	assert.Implements(t, (*imxform.Resizer)(nil), xdrawEngine)
	_, ok := xdrawEngine.(imxform.Sharpener)
	assert.False(t, ok)
}
