package connectivity

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestMonitor_StartsOnline(t *testing.T) {
	m := NewMonitor("probe:80", 10*time.Millisecond, time.Millisecond, newTestLogger(t))
	assert.True(t, m.Online())
}

func TestMonitor_ProbeFailureGoesOffline(t *testing.T) {
	m := NewMonitor("probe:80", 10*time.Millisecond, time.Millisecond, newTestLogger(t))
	m.dial = func(network, addr string, timeout time.Duration) (net.Conn, error) {
		return nil, errors.New("connection refused")
	}

	m.probe()

	assert.False(t, m.Online())
}

func TestMonitor_RecoversAfterProbeSucceeds(t *testing.T) {
	m := NewMonitor("probe:80", 10*time.Millisecond, time.Millisecond, newTestLogger(t))

	fail := true
	m.dial = func(network, addr string, timeout time.Duration) (net.Conn, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		server, client := net.Pipe()
		go func() { _ = server.Close() }()
		return client, nil
	}

	m.probe()
	require.False(t, m.Online())

	fail = false
	m.probe()
	assert.True(t, m.Online())
}

func TestMonitor_NoProbeAddrAssumesOnline(t *testing.T) {
	m := NewMonitor("", 10*time.Millisecond, time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	m.Start(ctx)

	assert.True(t, m.Online())
}

func TestMonitor_SetOnlineOverridesSignal(t *testing.T) {
	m := NewMonitor("probe:80", 10*time.Millisecond, time.Millisecond, newTestLogger(t))

	m.SetOnline(false)
	assert.False(t, m.Online())

	m.SetOnline(true)
	assert.True(t, m.Online())
}
