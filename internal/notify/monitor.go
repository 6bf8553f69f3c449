// Package notify – stale-order monitor
//
// Periodically sweeps the order book for orders whose status has not moved
// within the threshold and raises the aggregate stale alert to the admin
// distribution list.
package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/arestitans/smart-dispatcher/internal/domain"
)

// Statuses a stale sweep ignores: the order is finished either way.
var terminalStatuses = map[string]bool{
	domain.OrderPSDone: true,
	"COMPLETED":        true,
	"CANCELLED":        true,
}

// StaleOrders returns the orders whose last update is older than threshold
// and whose status is non-terminal. Orders that never recorded an update
// are skipped.
func StaleOrders(orders []domain.Order, now time.Time, threshold time.Duration) []domain.Order {
	var stale []domain.Order
	for _, o := range orders {
		if o.LastUpdated.IsZero() || terminalStatuses[o.Status] {
			continue
		}
		if now.Sub(o.LastUpdated) > threshold {
			stale = append(stale, o)
		}
	}
	return stale
}

// OrderSource supplies the current order book to a sweep.
type OrderSource func() []domain.Order

// Monitor runs the periodic stale-order check.
type Monitor struct {
	Source     OrderSource
	Dispatcher *Dispatcher
	Interval   time.Duration
	Threshold  time.Duration
	Log        zerolog.Logger
}

// Check performs one sweep and returns the stale orders it alerted on.
func (m *Monitor) Check(now time.Time) []domain.Order {
	stale := StaleOrders(m.Source(), now, m.Threshold)
	if len(stale) > 0 {
		m.Dispatcher.SendStaleAlert(stale)
	}
	return stale
}

// Run sweeps every Interval until ctx is cancelled. Intended to be started
// as a goroutine from main.
func (m *Monitor) Run(ctx context.Context) {
	m.Log.Info().
		Dur("interval", m.Interval).
		Dur("threshold", m.Threshold).
		Msg("stale order monitoring started")

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Log.Info().Msg("stale order monitoring stopped")
			return
		case now := <-ticker.C:
			if stale := m.Check(now); len(stale) > 0 {
				m.Log.Warn().Int("count", len(stale)).Msg("stale orders detected")
			}
		}
	}
}
