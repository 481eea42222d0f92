package imxform

import "slices"

// Family is one of the image type classes the descriptor can classify.
type Family string

const (
	JPEG Family = "JPEG"
	GIF  Family = "GIF"
	PNG  Family = "PNG"
	BMP  Family = "BMP"
)

// DefaultFamily is used by IsOfType when no family is given.
const DefaultFamily = JPEG

// mimeTypes maps each family to the MIME strings registered for it.
// Lookups are exact and case-sensitive.
var mimeTypes = map[Family]map[string]struct{}{
	JPEG: {
		"image/jpeg": {},
	},
	GIF: {
		"image/gif": {},
	},
	PNG: {
		"image/png":   {},
		"image/x-png": {},
	},
	BMP: {
		"image/bmp":      {},
		"image/x-ms-bmp": {},
	},
}

// Families returns every supported family in a stable order.
func Families() []Family {
	return []Family{JPEG, GIF, PNG, BMP}
}

// MIMETypes returns the MIME strings registered for f, sorted.
func MIMETypes(f Family) []string {
	set := mimeTypes[f]
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// FamilyOf reports which family mime belongs to.
func FamilyOf(mime string) (Family, bool) {
	for _, f := range Families() {
		if _, ok := mimeTypes[f][mime]; ok {
			return f, true
		}
	}
	return "", false
}
