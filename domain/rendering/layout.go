package rendering

// Margin and LineHeight are fixed and expressed in the same layout units as
// the viewport reported by the drawing surface.
const (
	Margin     = 4
	LineHeight = 16
)

// Viewport is the drawable area. It is supplied by the surface and may change
// between redraws.
type Viewport struct {
	Width  int
	Height int
}

// Box is an axis-aligned rectangle with Top < Bottom and Left < Right.
type Box struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Style selects how the surface renders a posted text region.
type Style int

const (
	StyleRegular Style = iota
	StyleEmphasis
	StyleAlert
)

// Line pairs a transcript entry with the box it is drawn into.
type Line struct {
	Text string
	Box  Box
}

// Layout stacks entries bottom-up so the newest entry sits at the bottom
// edge. An entry whose box would cross the top edge is dropped along with
// everything older than it; overflow is never wrapped or scrolled. The
// function is pure: same viewport and entries, same boxes.
func Layout(viewport Viewport, newestFirst []string) []Line {
	var lines []Line
	y := viewport.Height - Margin
	for _, text := range newestFirst {
		top := y - LineHeight
		if top < 0 {
			break
		}
		lines = append(lines, Line{
			Text: text,
			Box: Box{
				Left:   Margin,
				Top:    top,
				Right:  viewport.Width - Margin,
				Bottom: y,
			},
		})
		y -= LineHeight
	}
	return lines
}
