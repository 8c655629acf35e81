package lock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hal struct {
	Lockable
	podBay bool
}

func (h *hal) openPodBayDoors() {
	h.Check("open pod bay doors")
	h.podBay = true
}

func TestLockable(t *testing.T) {
	var h hal
	assert.False(t, h.IsLocked())
	h.openPodBayDoors()
	assert.True(t, h.podBay)

	h.podBay = false
	token := h.Lock()
	assert.True(t, h.IsLocked())
	assert.NotZero(t, token)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected locked mutation to panic")
		err, ok := r.(error)
		require.True(t, ok)
		var le *LockedError
		require.True(t, errors.As(err, &le))
		assert.Equal(t, "open pod bay doors", le.Op)
		assert.True(t, errors.Is(err, ErrLocked))
		assert.Equal(t, "target locked: open pod bay doors", err.Error())
		assert.False(t, h.podBay)
	}()
	h.openPodBayDoors()
}

func TestUnlock(t *testing.T) {
	var h hal
	err := h.Unlock(1)
	assert.ErrorIs(t, err, ErrNotLocked)
	assert.ErrorIs(t, err, ErrUnlock)

	token := h.Lock()
	err = h.Unlock(token + 1)
	assert.ErrorIs(t, err, ErrUnlockDenied)
	assert.ErrorIs(t, err, ErrUnlock)
	assert.True(t, h.IsLocked())

	require.NoError(t, h.Unlock(token))
	assert.False(t, h.IsLocked())
	h.openPodBayDoors()
	assert.True(t, h.podBay)

	assert.ErrorIs(t, h.Unlock(token), ErrNotLocked)
}

func TestTokensDistinct(t *testing.T) {
	var a, b hal
	ta, tb := a.Lock(), b.Lock()
	assert.NotEqual(t, ta, tb)
	assert.ErrorIs(t, a.Unlock(tb), ErrUnlockDenied)
	assert.NoError(t, a.Unlock(ta))
}

func TestLockTwice(t *testing.T) {
	var h hal
	h.Lock()
	assert.PanicsWithValue(t, ErrAlreadyLocked, func() { h.Lock() })
}

func TestLockHelper(t *testing.T) {
	h := Lock(&hal{})
	assert.True(t, h.IsLocked())
	var _ Locker = h
}
