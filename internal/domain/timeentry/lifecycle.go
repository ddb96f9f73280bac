package timeentry

// LifecycleState is the lock/archive combination of an entry.
//
//	state      locked archived  toggle lock  toggle archive
//	Open       no     no        Locked       refused
//	Locked     yes    no        Open         Finalized
//	Finalized  yes    yes       Reopened     Locked
//	Reopened   no     yes       Finalized    Open
//
// Reopened is a resting state: unlocking a finalized entry for correction
// keeps its archived marker until archive is toggled explicitly.
type LifecycleState int

const (
	StateOpen LifecycleState = iota
	StateLocked
	StateFinalized
	StateReopened
)

func StateOf(locked, archived bool) LifecycleState {
	switch {
	case locked && archived:
		return StateFinalized
	case locked:
		return StateLocked
	case archived:
		return StateReopened
	default:
		return StateOpen
	}
}

func (s LifecycleState) Locked() bool {
	return s == StateLocked || s == StateFinalized
}

func (s LifecycleState) Archived() bool {
	return s == StateFinalized || s == StateReopened
}

// ToggleLock never fails and never changes the archived marker.
func (s LifecycleState) ToggleLock() LifecycleState {
	return StateOf(!s.Locked(), s.Archived())
}

// ToggleArchive enters the archive only from a locked entry; leaving it is
// always allowed.
func (s LifecycleState) ToggleArchive() (LifecycleState, error) {
	if !s.Archived() && !s.Locked() {
		return s, ErrMustLockBeforeArchive
	}
	return StateOf(s.Locked(), !s.Archived()), nil
}

func (s LifecycleState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateLocked:
		return "locked"
	case StateFinalized:
		return "finalized"
	case StateReopened:
		return "reopened"
	}
	return "unknown"
}

const (
	MessageEntryNotFound = "Entry not found."
	MessageMustLockFirst = "This entry must be locked before it can be archived."
)

// ArchiveResult reports the outcome of an archive toggle.
type ArchiveResult struct {
	Success  bool   `json:"success"`
	Archived bool   `json:"archived"`
	Message  string `json:"message,omitempty"`
}
