// Package rank maps Codeforces ratings onto the site's display colors
// and rank titles.
package rank

// Band is the display color and title for one rating range.
type Band struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// Codeforces rank colors. Legendary and International Grandmaster share
// red, and so on down: the site has fewer colors than titles.
const (
	ColorRed    = "#FF0000"
	ColorOrange = "#FF8C00"
	ColorViolet = "#AA00AA"
	ColorBlue   = "#0000FF"
	ColorCyan   = "#03A89E"
	ColorGreen  = "#008000"
	ColorGray   = "#808080"
)

// Classify resolves a rating to its band. Total over all integers:
// zero, negative, and absent ratings are all Newbie gray. Bounds are
// inclusive, so 1200 is already Pupil.
func Classify(rating int) Band {
	switch {
	case rating >= 3000:
		return Band{ColorRed, "Legendary Grandmaster"}
	case rating >= 2600:
		return Band{ColorRed, "International Grandmaster"}
	case rating >= 2400:
		return Band{ColorOrange, "Grandmaster"}
	case rating >= 2300:
		return Band{ColorOrange, "International Master"}
	case rating >= 2100:
		return Band{ColorViolet, "Master"}
	case rating >= 1900:
		return Band{ColorViolet, "Candidate Master"}
	case rating >= 1600:
		return Band{ColorBlue, "Expert"}
	case rating >= 1400:
		return Band{ColorCyan, "Specialist"}
	case rating >= 1200:
		return Band{ColorGreen, "Pupil"}
	default:
		return Band{ColorGray, "Newbie"}
	}
}

// Color is Classify for callers that only style a number.
func Color(rating int) string {
	return Classify(rating).Color
}

// Label is Classify for callers that only want the title.
func Label(rating int) string {
	return Classify(rating).Label
}
