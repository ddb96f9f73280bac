package timeentry

import "errors"

var (
	ErrTimeEntryNotFound     = errors.New("time entry not found")
	ErrTimeEntryLocked       = errors.New("time entry is locked")
	ErrMustLockBeforeArchive = errors.New("entry must be locked before it can be archived")
)
