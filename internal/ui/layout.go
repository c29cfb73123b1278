package ui

import "time"

// Screen rows of the fixed bands.
const (
	rowHeader     = 0
	rowToolbar    = 1
	rowTabBar     = 2
	rowFormula    = 3
	rowGridHeader = 4
	rowGridBody   = 5

	// Bottom tabs, progress line and help footer.
	bottomBands = 3
)

const (
	// gutterWidth is the row checkbox plus row number column.
	gutterWidth = 7

	// DoubleClickWindow is the longest gap between two presses on the same
	// cell that still counts as a double-click.
	DoubleClickWindow = 400 * time.Millisecond

	// searchBoxWidth is the width of the header search input.
	searchBoxWidth = 26
)
