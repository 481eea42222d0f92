package imxform

import "strings"

// IsOfType reports whether the MIME type is registered for family f. The
// zero Family means DefaultFamily.
func (img *Image) IsOfType(f Family) bool {
	if f == "" {
		f = DefaultFamily
	}
	_, ok := mimeTypes[f][img.MimeType()]
	return ok
}

func (img *Image) IsJPEG() bool { return img.IsOfType(JPEG) }
func (img *Image) IsGIF() bool  { return img.IsOfType(GIF) }
func (img *Image) IsBMP() bool  { return img.IsOfType(BMP) }
func (img *Image) IsPNG() bool  { return img.IsOfType(PNG) }

// IsImage reports whether the MIME type is in the image/ tree.
func (img *Image) IsImage() bool {
	return strings.HasPrefix(img.MimeType(), "image/")
}

// IsAbleToHaveTransparency reports whether the format can carry alpha.
// JPEG and BMP are treated as opaque.
func (img *Image) IsAbleToHaveTransparency() bool {
	return img.IsPNG() || img.IsGIF()
}

// sharpeningDesired reports whether a resized image should be sharpened.
// Only lossy JPEG output benefits.
func (img *Image) sharpeningDesired() bool {
	return img.IsJPEG()
}
