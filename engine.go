package imxform

import "context"

// Engine performs the pixel work the descriptor decides on. An engine holds
// the decoded state of exactly one image and is not shared between
// descriptors.
type Engine interface {
	// Decode loads the file at path and reports its header fields.
	Decode(ctx context.Context, path string) (Header, error)

	// Data encodes the current image in its source format.
	Data() ([]byte, error)

	// Fill flattens transparent regions onto the given hex colour.
	Fill(hexColor string) error

	// EnableTransparency keeps the alpha channel through later operations.
	EnableTransparency() error
}

// Cropper is implemented by engines that can crop around the image center.
type Cropper interface {
	Crop(width, height int) error
}

// Resizer is implemented by engines that can resample the image.
type Resizer interface {
	Resize(width, height int) error
}

// Sharpener is implemented by engines that can sharpen after a resize.
type Sharpener interface {
	Sharpen() error
}
