package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ProbeFunc reports whether a dependency is reachable.
type ProbeFunc func(ctx context.Context) error

// Probe is a named dependency check.
type Probe struct {
	Name    string
	Timeout time.Duration
	Check   ProbeFunc
}

// Monitor periodically runs its probes and caches the latest status.
type Monitor struct {
	probes []Probe

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *zap.Logger
}

func New(interval time.Duration, logger *zap.Logger, probes ...Probe) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		probes:   probes,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// IsOnline reports whether every probe passed on the last refresh.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Online()
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.clone()
}

// Refresh runs all probes now and returns the new status.
func (m *Monitor) Refresh(ctx context.Context) Status {
	status := Status{
		Components: make(map[string]bool, len(m.probes)),
		LastCheck:  time.Now(),
	}
	for _, p := range m.probes {
		status.Components[p.Name] = m.run(ctx, p)
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
	return status.clone()
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Refresh(context.Background())
	for {
		select {
		case <-ticker.C:
			m.Refresh(context.Background())
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) run(ctx context.Context, p Probe) bool {
	if p.Check == nil {
		return false
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := p.Check(ctx); err != nil {
		m.logger.Warn("probe failed", zap.String("component", p.Name), zap.Error(err))
		return false
	}
	return true
}
