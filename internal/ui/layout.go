package ui

import "time"

// Terminal width breakpoints for the responsive grid.
const (
	// LayoutSmallWidth is the width below which the grid has one column.
	LayoutSmallWidth = 60

	// LayoutMediumWidth is the width below which the grid has two columns.
	LayoutMediumWidth = 100
)

// Tile geometry.
const (
	tileHeight    = 5 // top border, three body lines, bottom border
	tileRowHeight = tileHeight + 1
	tileGap       = 2
	minTileWidth  = 18
	maxColumns    = 3
)

// Screen regions.
const (
	headerHeight  = 3 // title, subtitle, spacer
	footerHeight  = 1
	controlHeight = 3 // spacer, reload control, selection line

	defaultWidth  = 80
	defaultHeight = 24
)

// DefaultFetchTimeout bounds a single image list request.
const DefaultFetchTimeout = 10 * time.Second

// gridGeometry describes how a list of tiles is laid out on screen.
type gridGeometry struct {
	Columns     int
	TileWidth   int
	Rows        int
	VisibleRows int
}

// computeGrid lays out count tiles for a terminal of width x height.
// pinned forces a column count (1-3); zero picks from the width breakpoints.
func computeGrid(width, height, pinned, count int) gridGeometry {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	cols := pinned
	switch {
	case cols > maxColumns:
		cols = maxColumns
	case cols <= 0:
		switch {
		case width < LayoutSmallWidth:
			cols = 1
		case width < LayoutMediumWidth:
			cols = 2
		default:
			cols = 3
		}
	}
	for cols > 1 && tileWidthFor(width, cols) < minTileWidth {
		cols--
	}

	rows := 0
	if count > 0 {
		rows = (count + cols - 1) / cols
	}

	gridHeight := height - headerHeight - footerHeight - controlHeight
	visible := max((gridHeight+1)/tileRowHeight, 1)

	return gridGeometry{
		Columns:     cols,
		TileWidth:   max(tileWidthFor(width, cols), 4),
		Rows:        rows,
		VisibleRows: visible,
	}
}

func tileWidthFor(width, cols int) int {
	return (width - tileGap*(cols-1)) / cols
}

// clampScroll returns the first visible row so that the selected tile is on
// screen and the window never runs past the last row.
func clampScroll(scroll, selected int, g gridGeometry) int {
	if g.Rows == 0 {
		return 0
	}
	if selected >= 0 && g.Columns > 0 {
		row := selected / g.Columns
		if row < scroll {
			scroll = row
		}
		if row >= scroll+g.VisibleRows {
			scroll = row - g.VisibleRows + 1
		}
	}
	maxScroll := max(g.Rows-g.VisibleRows, 0)
	return min(max(scroll, 0), maxScroll)
}
