package formats

import "bytes"

var (
	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gif87a        = []byte("GIF87a")
	gif89a        = []byte("GIF89a")
	riffSignature = []byte("RIFF")
	webpSignature = []byte("WEBP")
	bmpSignature  = []byte("BM")
)

// Detect identifies the image format by examining the magic bytes.
// It returns the format name as a string, or an empty string if the format is not recognized.
func Detect(magicBytes []byte) string {
	switch {
	case bytes.HasPrefix(magicBytes, jpegSignature):
		return JPEG
	case bytes.HasPrefix(magicBytes, pngSignature):
		return PNG
	case bytes.HasPrefix(magicBytes, gif87a), bytes.HasPrefix(magicBytes, gif89a):
		return GIF
	case len(magicBytes) >= 12 && bytes.HasPrefix(magicBytes, riffSignature) &&
		bytes.Equal(magicBytes[8:12], webpSignature):
		return WebP
	case bytes.HasPrefix(magicBytes, bmpSignature):
		return BMP
	}
	return ""
}
