package bubble_tea

import (
	"strings"

	"ecdhprobe/domain/rendering"
)

// cellWidth and cellHeight translate between layout units and terminal
// cells. The layout keeps the unit system of the drawing surface: one text
// row is one LineHeight tall and one glyph is eight units wide.
const (
	cellWidth  = 8
	cellHeight = rendering.LineHeight
)

// canvas implements application.RenderSurface on a rune grid that is rebuilt
// on every redraw. Draw calls landing outside the grid are silently dropped.
type canvas struct {
	cols, rows int
	cells      [][]rune
	rowStyles  []rendering.Style
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{}
	c.Resize(cols, rows)
	return c
}

func (c *canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols, c.rows = cols, rows
	c.cells = make([][]rune, rows)
	for i := range c.cells {
		c.cells[i] = blankRow(cols)
	}
	c.rowStyles = make([]rendering.Style, rows)
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// Viewport reports the drawable area in layout units.
func (c *canvas) Viewport() rendering.Viewport {
	return rendering.Viewport{Width: c.cols * cellWidth, Height: c.rows * cellHeight}
}

func (c *canvas) FillRegion(box rendering.Box) {
	first, last := c.rowRange(box)
	for row := first; row <= last; row++ {
		c.cells[row] = blankRow(c.cols)
		c.rowStyles[row] = rendering.StyleRegular
	}
}

func (c *canvas) PostText(box rendering.Box, text string, style rendering.Style) {
	if box.Bottom <= 0 {
		return
	}
	// The bottom edge picks the row. With the bottom margin smaller than a
	// cell, mapping from the top edge would leave the last row unused.
	row := (box.Bottom - 1) / cellHeight
	if row >= c.rows {
		return
	}
	col := box.Left / cellWidth
	if col < 0 {
		col = 0
	}
	limit := box.Right / cellWidth
	if limit > c.cols {
		limit = c.cols
	}
	for _, r := range text {
		if col >= limit {
			break
		}
		c.cells[row][col] = r
		col++
	}
	c.rowStyles[row] = style
}

func (c *canvas) rowRange(box rendering.Box) (int, int) {
	first := box.Top / cellHeight
	last := (box.Bottom - 1) / cellHeight
	if first < 0 {
		first = 0
	}
	if last >= c.rows {
		last = c.rows - 1
	}
	return first, last
}

// Flush renders the grid into terminal lines, styling each row with the
// style of the text last posted to it.
func (c *canvas) Flush(styles probeStyles) string {
	lines := make([]string, c.rows)
	for i, row := range c.cells {
		line := strings.TrimRight(string(row), " ")
		if line == "" {
			continue
		}
		lines[i] = styles.forRow(c.rowStyles[i]).Render(line)
	}
	return strings.Join(lines, "\n")
}
