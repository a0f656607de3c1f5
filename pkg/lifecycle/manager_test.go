package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerShutdownWaits(t *testing.T) {
	m := NewManager()

	handle, err := m.NewServiceHandle("worker")
	require.NoError(t, err)

	started := make(chan struct{})
	go func() {
		defer handle.Close()
		close(started)
		<-handle.Done()
	}()
	<-started

	m.Shutdown()
	remaining := m.WaitWithTimeout(2 * time.Second)
	assert.Empty(t, remaining)
}

func TestManagerReportsStuckService(t *testing.T) {
	m := NewManager()

	_, err := m.NewServiceHandle("stuck")
	require.NoError(t, err)

	m.Shutdown()
	remaining := m.WaitWithTimeout(50 * time.Millisecond)
	assert.Equal(t, []string{"stuck"}, remaining)
}

func TestManagerRejectsDuplicateName(t *testing.T) {
	m := NewManager()

	h, err := m.NewServiceHandle("backup")
	require.NoError(t, err)
	defer h.Close()

	_, err = m.NewServiceHandle("backup")
	assert.Error(t, err)
}

func TestHandleSleepWakesOnShutdown(t *testing.T) {
	m := NewManager()

	handle, err := m.NewServiceHandle("sleeper")
	require.NoError(t, err)
	defer handle.Close()

	go func() {
		time.Sleep(20 * time.Millisecond)
		m.Shutdown()
	}()

	start := time.Now()
	err = handle.Sleep(5 * time.Second)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
