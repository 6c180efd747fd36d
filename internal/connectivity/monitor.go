package connectivity

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/wb-go/wbf/logger"
)

// Monitor probes a TCP address on an interval and exposes the result as the
// explicit connectivity signal injected into the check-in engine. With no
// probe address configured it reports always-online.
type Monitor struct {
	addr     string
	interval time.Duration
	timeout  time.Duration
	logger   logger.Logger

	online atomic.Bool
	dial   func(network, addr string, timeout time.Duration) (net.Conn, error)
}

func NewMonitor(addr string, interval, timeout time.Duration, logger logger.Logger) *Monitor {
	m := &Monitor{
		addr:     addr,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		dial:     net.DialTimeout,
	}
	m.online.Store(true)
	return m
}

func (m *Monitor) Online() bool {
	return m.online.Load()
}

// SetOnline overrides the signal; used by callers that learn connectivity out
// of band.
func (m *Monitor) SetOnline(online bool) {
	m.online.Store(online)
}

func (m *Monitor) Start(ctx context.Context) {
	if m.addr == "" {
		m.logger.Info("connectivity probe disabled, assuming online")
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.probe()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("connectivity monitor stopped")
			return
		case <-ticker.C:
			m.probe()
		}
	}
}

func (m *Monitor) probe() {
	conn, err := m.dial("tcp", m.addr, m.timeout)
	online := err == nil
	if conn != nil {
		conn.Close()
	}

	if m.online.Swap(online) != online {
		if online {
			m.logger.Info("connectivity restored", logger.String("probe_addr", m.addr))
		} else {
			m.logger.Warn("connectivity lost",
				logger.String("probe_addr", m.addr),
				logger.String("error", err.Error()),
			)
		}
	}
}
