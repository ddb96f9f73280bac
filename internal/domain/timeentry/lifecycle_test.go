package timeentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleState_Transitions(t *testing.T) {
	cases := []struct {
		from        LifecycleState
		lock        LifecycleState
		archive     LifecycleState
		archiveFail bool
	}{
		{from: StateOpen, lock: StateLocked, archive: StateOpen, archiveFail: true},
		{from: StateLocked, lock: StateOpen, archive: StateFinalized},
		{from: StateFinalized, lock: StateReopened, archive: StateLocked},
		{from: StateReopened, lock: StateFinalized, archive: StateOpen},
	}

	for _, c := range cases {
		t.Run(c.from.String(), func(t *testing.T) {
			assert.Equal(t, c.lock, c.from.ToggleLock())
			assert.Equal(t, c.from.Archived(), c.from.ToggleLock().Archived(), "lock toggle must keep archived")

			next, err := c.from.ToggleArchive()
			if c.archiveFail {
				assert.ErrorIs(t, err, ErrMustLockBeforeArchive)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, c.archive, next)
		})
	}
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateOpen, StateOf(false, false))
	assert.Equal(t, StateLocked, StateOf(true, false))
	assert.Equal(t, StateFinalized, StateOf(true, true))
	assert.Equal(t, StateReopened, StateOf(false, true))

	for _, s := range []LifecycleState{StateOpen, StateLocked, StateFinalized, StateReopened} {
		assert.Equal(t, s, StateOf(s.Locked(), s.Archived()))
	}
}
