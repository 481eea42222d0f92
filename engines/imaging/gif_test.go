package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomantics/imxform"
)

var red = color.NRGBA{R: 255, A: 255}

// writeGIF writes a 4x4 paletted GIF whose left half uses the transparent
// index 0 and whose right half is red. It returns the document root.
func writeGIF(t *testing.T) string {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{color.NRGBA{}, red})
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anim.gif"), buf.Bytes(), 0o644))
	return dir
}

func decodeGIFData(t *testing.T, e *Engine) image.Image {
	t.Helper()
	data, err := e.Data()
	require.NoError(t, err)
	out, err := gif.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return out
}

func assertColor(t *testing.T, want color.NRGBA, got color.Color) {
	t.Helper()
	c := color.NRGBAModel.Convert(got).(color.NRGBA)
	assert.InDelta(t, want.R, c.R, 2, "red")
	assert.InDelta(t, want.G, c.G, 2, "green")
	assert.InDelta(t, want.B, c.B, 2, "blue")
	assert.Equal(t, want.A, c.A, "alpha")
}

func TestGIF_EnableTransparencyKeepsAlpha(t *testing.T) {
	e := New()
	img := imxform.New("/anim.gif", imxform.WithDocumentRoot(writeGIF(t)), imxform.WithEngine(e))
	require.NoError(t, img.Decode(context.Background()))
	require.True(t, img.IsGIF())

	require.NoError(t, img.ApplyBackground(""))

	out := decodeGIFData(t, e)
	assertColor(t, color.NRGBA{}, out.At(0, 0))
	assertColor(t, color.NRGBA{}, out.At(1, 2))
	assertColor(t, red, out.At(3, 3))
}

func TestGIF_CropKeepsAlpha(t *testing.T) {
	e := New()
	_, err := e.Decode(context.Background(), filepath.Join(writeGIF(t), "anim.gif"))
	require.NoError(t, err)

	require.NoError(t, e.Crop(2, 4))
	require.NoError(t, e.EnableTransparency())

	out := decodeGIFData(t, e)
	assert.Equal(t, image.Rect(0, 0, 2, 4), out.Bounds())
	assertColor(t, color.NRGBA{}, out.At(0, 1))
	assertColor(t, red, out.At(1, 1))
}

func TestGIF_Fill(t *testing.T) {
	e := New()
	img := imxform.New("/anim.gif", imxform.WithDocumentRoot(writeGIF(t)), imxform.WithEngine(e))
	require.NoError(t, img.Decode(context.Background()))

	require.NoError(t, img.ApplyBackground("#00ff00"))

	out := decodeGIFData(t, e)
	assertColor(t, color.NRGBA{G: 255, A: 255}, out.At(0, 0))
	assertColor(t, red, out.At(3, 3))
}
