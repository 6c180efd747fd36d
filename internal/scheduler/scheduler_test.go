package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_ReplaysOnFirstOnlineTick(t *testing.T) {
	replayer := mocks.NewMockQueueReplayer(t)
	online := mocks.NewMockConnectivitySignal(t)
	log := newTestLogger(t)

	s := New(replayer, online, 30*time.Millisecond, log)

	online.EXPECT().Online().Return(true)
	replayer.EXPECT().ReplayPending(mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	// several online ticks, but only the first crossed the offline→online edge
	assert.Len(t, replayer.Calls, 1)
}

func TestScheduler_ReplaysOnReconnect(t *testing.T) {
	replayer := mocks.NewMockQueueReplayer(t)
	online := mocks.NewMockConnectivitySignal(t)
	log := newTestLogger(t)

	s := New(replayer, online, 20*time.Millisecond, log)

	// online → offline → online: two edges, two replays
	states := []bool{true, false, true}
	i := 0
	online.EXPECT().Online().RunAndReturn(func() bool {
		state := states[i%len(states)]
		if i < len(states)-1 {
			i++
		}
		return state
	})
	replayer.EXPECT().ReplayPending(mock.Anything).Return(nil).Times(2)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_SkipsWhileOffline(t *testing.T) {
	replayer := mocks.NewMockQueueReplayer(t)
	online := mocks.NewMockConnectivitySignal(t)
	log := newTestLogger(t)

	s := New(replayer, online, 20*time.Millisecond, log)

	online.EXPECT().Online().Return(false)
	// no ReplayPending expectation: offline ticks never replay

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.Empty(t, replayer.Calls)
}

func TestScheduler_LogsReplayErrors(t *testing.T) {
	replayer := mocks.NewMockQueueReplayer(t)
	online := mocks.NewMockConnectivitySignal(t)
	log := newTestLogger(t)

	s := New(replayer, online, 30*time.Millisecond, log)

	online.EXPECT().Online().Return(true)
	replayer.EXPECT().ReplayPending(mock.Anything).
		Return([]error{errors.New("action a1 rejected")}).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	replayer := mocks.NewMockQueueReplayer(t)
	online := mocks.NewMockConnectivitySignal(t)
	log := newTestLogger(t)

	s := New(replayer, online, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
