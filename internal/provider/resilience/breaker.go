package resilience

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig holds circuit breaker settings.
type BreakerConfig struct {
	// Name identifies the breaker for logging.
	Name string

	// MaxRequests allowed through in half-open state. Default: 1.
	MaxRequests uint32

	// Interval for clearing counts while closed. Default: 0 (disabled).
	Interval time.Duration

	// Timeout of the open state before probing half-open.
	// Default: 60 seconds.
	Timeout time.Duration

	// ReadyToTrip decides when to open the breaker. If nil,
	// DefaultReadyToTrip is used.
	ReadyToTrip func(counts gobreaker.Counts) bool
}

// DefaultBreakerConfig returns sensible breaker defaults.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:        name,
		MaxRequests: 1,
		Timeout:     60 * time.Second,
		ReadyToTrip: DefaultReadyToTrip,
	}
}

// DefaultReadyToTrip opens the breaker after at least 5 requests with a
// failure rate of 50% or higher.
func DefaultReadyToTrip(counts gobreaker.Counts) bool {
	ratio := float64(counts.TotalFailures) / float64(counts.Requests)
	return counts.Requests >= 5 && ratio >= 0.5
}

// NewBreaker creates a circuit breaker from the config.
func NewBreaker[T any](cfg BreakerConfig) *gobreaker.CircuitBreaker[T] {
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: cfg.ReadyToTrip,
	})
}
