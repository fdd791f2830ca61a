package backend

import (
	"context"
	"log/slog"
	"time"

	"ordermanagement/internal/pkg/metrics"

	"github.com/sony/gobreaker"
)

// BreakerSettings tunes the circuit around the backend.
type BreakerSettings struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval is the closed-state window after which counts reset.
	Interval time.Duration
	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration
	// MinRequests and FailureRatio decide when the circuit trips.
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerSettings trips after 60% failures over at least 3 requests and
// probes again after 30 seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:  3,
		Interval:     15 * time.Second,
		Timeout:      30 * time.Second,
		MinRequests:  3,
		FailureRatio: 0.6,
	}
}

type breaker struct {
	cb   *gobreaker.CircuitBreaker
	name string
}

func newBreaker(name string, settings BreakerSettings, logger *slog.Logger) *breaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= settings.FailureRatio
		},
		OnStateChange: func(circuit string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(circuit).Set(stateValue(to))
			logger.InfoContext(context.Background(), "circuit breaker state changed",
				"circuit", circuit, "from", from.String(), "to", to.String())
		},
	})

	metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(gobreaker.StateClosed))

	return &breaker{cb: cb, name: name}
}

func (b *breaker) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		metrics.CircuitBreakerFailures.WithLabelValues(b.name).Inc()
	}
	return result, err
}

func (b *breaker) state() gobreaker.State {
	return b.cb.State()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
