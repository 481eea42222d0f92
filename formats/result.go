package formats

// Result captures the header fields a parser could read without decoding pixels.
type Result struct {
	Width      int
	Height     int
	MIME       string
	ColorDepth int
	ColorSpace string

	// HasAlpha reports an alpha channel or a transparent palette entry.
	HasAlpha bool
}
