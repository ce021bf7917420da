package types

import "time"

// NoticeLevel distinguishes success and error notices.
type NoticeLevel int

const (
	NoticeSuccess NoticeLevel = iota
	NoticeError
)

func (l NoticeLevel) String() string {
	if l == NoticeError {
		return "error"
	}
	return "success"
}

// Notice is a transient, dismissible message shown after an export settles.
type Notice struct {
	Level     NoticeLevel
	Message   string
	Detail    string
	CreatedAt time.Time
}
