package imxform

import "github.com/pkg/errors"

var (
	// ErrUnsupportedFormat is returned when the image format cannot be detected.
	ErrUnsupportedFormat = errors.New("imxform: unsupported format")

	// ErrInvalidSource is returned when the provided data source cannot be read.
	ErrInvalidSource = errors.New("imxform: invalid source")

	// ErrInvalidGeometry is returned by Ratio when the height is zero.
	ErrInvalidGeometry = errors.New("imxform: invalid geometry")

	// ErrNoEngine is returned when an operation needs a pixel engine and none is set.
	ErrNoEngine = errors.New("imxform: no engine")

	// ErrInvalidColor is returned for background colours that are not hex codes.
	ErrInvalidColor = errors.New("imxform: invalid color")
)

// ErrNotDecoded is returned by engines asked to work before Decode succeeded.
var ErrNotDecoded = errors.New("imxform: image not decoded")
