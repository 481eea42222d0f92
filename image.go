// Package imxform describes an image moving through a transformation
// request: where it lives, what it decoded to, and what must happen to it
// before an engine touches pixels.
package imxform

import "go.uber.org/zap"

// Info is the metadata a decode step and the caller fill in.
type Info struct {
	Width  int
	Height int
	MIME   string

	// CropWidth and CropHeight are nil until a crop target is requested.
	CropWidth  *int
	CropHeight *int
}

// Image is a descriptor for one source file. It is not safe for concurrent
// use; each request owns its own Image.
type Image struct {
	path         string
	originalPath string
	background   string
	info         Info

	documentRoot string
	engine       Engine
	logger       *zap.Logger
}

// Option configures an Image.
type Option func(*Image)

// WithEngine sets the pixel engine the descriptor delegates to.
func WithEngine(e Engine) Option {
	return func(img *Image) {
		img.engine = e
	}
}

// WithDocumentRoot sets the prefix FullPath prepends to the path.
func WithDocumentRoot(root string) Option {
	return func(img *Image) {
		img.documentRoot = root
	}
}

// WithBackground sets the initial background intent.
func WithBackground(color string) Option {
	return func(img *Image) {
		img.background = color
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(img *Image) {
		if l != nil {
			img.logger = l
		}
	}
}

// New returns a descriptor for the file at path. The original path is
// recorded once and survives later SetPath calls.
func New(path string, opts ...Option) *Image {
	img := &Image{
		path:         path,
		originalPath: path,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(img)
	}
	return img
}

// SetPath sets the current location of the file.
func (img *Image) SetPath(path string) *Image {
	img.path = path
	return img
}

// Path returns the current location of the file.
func (img *Image) Path() string {
	return img.path
}

// FullPath returns the document root concatenated with the current path.
func (img *Image) FullPath() string {
	return img.documentRoot + img.path
}

// SetOriginalPath overrides the recorded source location.
func (img *Image) SetOriginalPath(path string) *Image {
	img.originalPath = path
	return img
}

// OriginalPath returns the source location given to New.
func (img *Image) OriginalPath() string {
	return img.originalPath
}

// Background returns the background intent; empty means none was requested.
func (img *Image) Background() string {
	return img.background
}

// SetBackground records a hex background colour.
func (img *Image) SetBackground(color string) *Image {
	img.background = color
	return img
}

// Engine returns the pixel engine, or nil.
func (img *Image) Engine() Engine {
	return img.engine
}

// Info returns a copy of the metadata record.
func (img *Image) Info() Info {
	info := img.info
	if info.CropWidth != nil {
		w := *info.CropWidth
		info.CropWidth = &w
	}
	if info.CropHeight != nil {
		h := *info.CropHeight
		info.CropHeight = &h
	}
	return info
}

// Width returns the decoded width, or 0 when not yet known.
func (img *Image) Width() int {
	return img.info.Width
}

// Height returns the decoded height, or 0 when not yet known.
func (img *Image) Height() int {
	return img.info.Height
}

// SetWidth stores w and returns it.
func (img *Image) SetWidth(w int) int {
	img.info.Width = w
	return img.info.Width
}

// SetHeight stores h and returns it.
func (img *Image) SetHeight(h int) int {
	img.info.Height = h
	return img.info.Height
}

// MimeType returns the decoded MIME type, or "" when not yet known.
func (img *Image) MimeType() string {
	return img.info.MIME
}

// SetMimeType stores mime and returns it.
func (img *Image) SetMimeType(mime string) string {
	img.info.MIME = mime
	return img.info.MIME
}

// Datasize returns the byte length of the engine's encoded output.
func (img *Image) Datasize() (int, error) {
	if img.engine == nil {
		return 0, ErrNoEngine
	}
	data, err := img.engine.Data()
	if err != nil {
		return 0, err
	}
	return len(data), nil
}
