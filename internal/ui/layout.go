package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutUpdatedWidth is the minimum width to show the updated column.
	LayoutUpdatedWidth = 70
)

// Table column widths. The region column takes what is left.
const (
	colCheckWidth   = 4
	colQuadkeyWidth = 12
	colSizeWidth    = 10
	colUpdatedWidth = 12
	colRegionMin    = 12
)

// Rows outside the record window: header, command bar, column header and
// status line. Box borders are counted separately.
const chromeRows = 4

// Log display limits.
const (
	// LogTailLines is the number of log lines loaded into the activity view.
	LogTailLines = 500
)

// Timing constants.
const (
	// DefaultUIInterval is the idle refresh interval.
	DefaultUIInterval = time.Second

	// BusyUIInterval is the refresh interval while an export runs.
	BusyUIInterval = 100 * time.Millisecond
)
