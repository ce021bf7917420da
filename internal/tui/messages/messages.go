package messages

import (
	"time"

	"litedata/internal/catalog"
	"litedata/internal/export"
	"litedata/pkg/types"
)

type ErrorMsg struct {
	Err error
}

// AllowedLoadedMsg arrives once the config fetch settles.
type AllowedLoadedMsg struct {
	Set catalog.AllowedSet
}

// ExportDoneMsg carries the outcome of a submission.
type ExportDoneMsg struct {
	Result *export.Result
	Err    error
}

// PreviewMsg carries preview rows.
type PreviewMsg struct {
	Header []string
	Rows   [][]string
	Err    error
}

// ThemeChangedMsg reports a display mode change, possibly from another process.
type ThemeChangedMsg struct {
	Mode types.DisplayMode
}

// NoticeExpiredMsg asks the model to re-check the notice board.
type NoticeExpiredMsg struct {
	At time.Time
}
