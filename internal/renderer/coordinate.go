package renderer

// Anchor is a point on a template page given in percent of the page size,
// measured from the top-left corner as the admin UI authors it.
type Anchor struct {
	X float64
	Y float64
}

// ToDocumentSpace converts a percentage anchor into PDF points with a
// bottom-left origin. Values outside [0,100] are not clamped.
func ToDocumentSpace(pctX, pctY, pageWidth, pageHeight float64) (float64, float64) {
	x := (pctX / 100) * pageWidth
	y := pageHeight - (pctY/100)*pageHeight
	return x, y
}
