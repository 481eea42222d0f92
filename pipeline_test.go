package imxform

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	engine := &recordingEngine{header: Header{MIME: "image/png", Width: 320, Height: 200}}
	img := New("/photos/cat.png", WithEngine(engine), WithDocumentRoot("/srv"))

	require.NoError(t, img.Decode(context.Background()))

	assert.Equal(t, "/srv/photos/cat.png", engine.decodedPath)
	assert.Equal(t, 320, img.Width())
	assert.Equal(t, 200, img.Height())
	assert.Equal(t, "image/png", img.MimeType())
	assert.True(t, img.IsPNG())
}

func TestDecode_Errors(t *testing.T) {
	assert.ErrorIs(t, New("/a.png").Decode(context.Background()), ErrNoEngine)

	boom := errors.New("decode failed")
	img := New("/a.png", WithEngine(&recordingEngine{decodeErr: boom}))
	assert.ErrorIs(t, img.Decode(context.Background()), boom)
	assert.Zero(t, img.Width())
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "tile.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 12, 34))))
	require.NoError(t, f.Close())

	img := New("/tile.png", WithDocumentRoot(dir))
	require.NoError(t, img.Inspect())

	assert.Equal(t, 12, img.Width())
	assert.Equal(t, 34, img.Height())
	assert.Equal(t, "image/png", img.MimeType())
}

func TestInspect_MissingFile(t *testing.T) {
	err := New(filepath.Join(t.TempDir(), "missing.png")).Inspect()
	assert.ErrorIs(t, err, ErrInvalidSource)
}

func TestResize(t *testing.T) {
	engine := &recordingEngine{}
	img := New("/img", WithEngine(engine))
	img.SetWidth(400)
	img.SetHeight(300)

	require.NoError(t, img.Resize(200, 150))
	assert.Equal(t, [][2]int{{200, 150}}, engine.resizes)
	assert.Equal(t, 200, img.Width())
	assert.Equal(t, 150, img.Height())
}

func TestResize_Errors(t *testing.T) {
	img := New("/img", WithEngine(&recordingEngine{}))
	assert.ErrorIs(t, img.Resize(0, 10), ErrInvalidGeometry)

	img = New("/img", WithEngine(basicEngine{}))
	assert.ErrorIs(t, img.Resize(10, 10), ErrNoEngine)
}

func TestSharpen(t *testing.T) {
	tests := []struct {
		mime string
		want bool
	}{
		{"image/jpeg", true},
		{"image/png", false},
		{"image/gif", false},
		{"image/bmp", false},
	}

	for _, tt := range tests {
		engine := &recordingEngine{}
		sharpened, err := withMime(tt.mime, engine).Sharpen()
		require.NoError(t, err)
		assert.Equal(t, tt.want, sharpened, "mime %q", tt.mime)
		assert.Equal(t, tt.want, engine.sharpens == 1, "mime %q", tt.mime)
	}
}

func TestSharpen_EngineWithoutSharpener(t *testing.T) {
	sharpened, err := withMime("image/jpeg", basicEngine{}).Sharpen()
	require.NoError(t, err)
	assert.False(t, sharpened)
}
