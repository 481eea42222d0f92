package xdraw

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/gomantics/imxform"
)

// halfTransparent is 40x20 with an opaque blue left half and a fully
// transparent right half.
func halfTransparent() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "image.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestDecode(t *testing.T) {
	e := New()
	hdr, err := e.Decode(context.Background(), writePNG(t, halfTransparent()))
	require.NoError(t, err)

	assert.Equal(t, "PNG", hdr.Format)
	assert.Equal(t, "image/png", hdr.MIME)
	assert.Equal(t, 40, hdr.Width)
	assert.Equal(t, 20, hdr.Height)
	assert.True(t, hdr.HasAlpha)
	require.NotNil(t, e.Image())
}

func TestDecode_Errors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Decode(ctx, "ignored.png")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = New().Decode(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, imxform.ErrInvalidSource)

	webp := filepath.Join(t.TempDir(), "image.webp")
	require.NoError(t, os.WriteFile(webp, []byte("RIFF\x00\x00\x00\x00WEBPVP8L\x05\x00\x00\x00\x2F\x00\x00\x00\x00"), 0o644))
	_, err = New().Decode(context.Background(), webp)
	assert.ErrorIs(t, err, imxform.ErrUnsupportedFormat)
}

func TestOperations_BeforeDecode(t *testing.T) {
	e := New()

	_, err := e.Data()
	assert.ErrorIs(t, err, imxform.ErrNotDecoded)
	assert.ErrorIs(t, e.Fill("#fff"), imxform.ErrNotDecoded)
	assert.ErrorIs(t, e.EnableTransparency(), imxform.ErrNotDecoded)
	assert.ErrorIs(t, e.Crop(1, 1), imxform.ErrNotDecoded)
	assert.ErrorIs(t, e.Resize(1, 1), imxform.ErrNotDecoded)
}

func TestFill(t *testing.T) {
	e := New()
	_, err := e.Decode(context.Background(), writePNG(t, halfTransparent()))
	require.NoError(t, err)

	require.NoError(t, e.Fill("#ff0000"))

	out := e.Image()
	assert.Equal(t, color.NRGBAModel.Convert(color.NRGBA{B: 255, A: 255}), color.NRGBAModel.Convert(out.At(5, 5)))
	assert.Equal(t, color.NRGBAModel.Convert(color.NRGBA{R: 255, A: 255}), color.NRGBAModel.Convert(out.At(35, 5)))
}

func TestFill_InvalidColor(t *testing.T) {
	e := New()
	_, err := e.Decode(context.Background(), writePNG(t, halfTransparent()))
	require.NoError(t, err)

	assert.ErrorIs(t, e.Fill("white"), imxform.ErrInvalidColor)
}

func TestEnableTransparency(t *testing.T) {
	e := New()
	_, err := e.Decode(context.Background(), writePNG(t, halfTransparent()))
	require.NoError(t, err)

	require.NoError(t, e.EnableTransparency())
	_, _, _, a := e.Image().At(35, 5).RGBA()
	assert.Zero(t, a)
}

func TestDecode_BMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, halfTransparent()))
	path := filepath.Join(t.TempDir(), "image.bmp")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	e := New()
	hdr, err := e.Decode(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "image/bmp", hdr.MIME)
	assert.Equal(t, 40, hdr.Width)
	assert.Equal(t, 20, hdr.Height)

	data, err := e.Data()
	require.NoError(t, err)
	hdr, err = imxform.ProbeBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "BMP", hdr.Format)
}

func TestCropResizeAndData(t *testing.T) {
	e := New()
	_, err := e.Decode(context.Background(), writePNG(t, halfTransparent()))
	require.NoError(t, err)

	require.NoError(t, e.Crop(20, 10))
	assert.Equal(t, image.Rect(0, 0, 20, 10), e.Image().Bounds())

	require.NoError(t, e.Resize(10, 5))
	assert.Equal(t, 10, e.Image().Bounds().Dx())
	assert.Equal(t, 5, e.Image().Bounds().Dy())

	data, err := e.Data()
	require.NoError(t, err)
	hdr, err := imxform.ProbeBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "image/png", hdr.MIME)
	assert.Equal(t, 10, hdr.Width)
	assert.Equal(t, 5, hdr.Height)
}

func TestDescriptorPipeline_JPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, halfTransparent(), nil))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.jpg"), buf.Bytes(), 0o644))

	img := imxform.New("/photo.jpg",
		imxform.WithDocumentRoot(dir),
		imxform.WithEngine(New(WithQuality(90))))
	require.NoError(t, img.Decode(context.Background()))
	require.True(t, img.IsJPEG())

	img.SetCropWidth(30)
	img.SetCropHeight(30)
	cropped, err := img.Crop()
	require.NoError(t, err)
	assert.True(t, cropped)
	assert.Equal(t, 30, img.Width())
	assert.Equal(t, 20, img.Height())

	// xdraw has no sharpening step.
	sharpened, err := img.Sharpen()
	require.NoError(t, err)
	assert.False(t, sharpened)

	require.NoError(t, img.ApplyBackground("#ffffff"))

	size, err := img.Datasize()
	require.NoError(t, err)
	assert.Positive(t, size)
}
