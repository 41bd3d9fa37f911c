package circuitbreaker

import "time"

// Config holds the configuration for a circuit breaker.
type Config struct {
	// Name identifies the circuit breaker in logs.
	Name string

	// Enabled determines whether the circuit breaker is active.
	// When false, New returns nil and Execute passes through directly.
	Enabled bool

	// MaxRequests is the number of probe requests allowed while half-open.
	// Zero allows a single request.
	MaxRequests uint

	// Interval is the cyclic period of the closed state after which the
	// failure counts are cleared. Zero never clears them.
	Interval time.Duration

	// Timeout is how long the breaker stays open before going half-open.
	// Zero defaults to 60 seconds.
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures that trips the
	// breaker open.
	FailureThreshold uint
}

type (
	settings struct {
		isFailure     func(error) bool
		onStateChange func(name string, from, to State)
	}

	// Option tunes how the breaker classifies outcomes and reports changes.
	Option func(*settings)
)

// WithFailurePredicate decides which errors count against the breaker.
// By default every non-nil error is a failure.
func WithFailurePredicate(isFailure func(error) bool) Option {
	return func(s *settings) {
		s.isFailure = isFailure
	}
}

// WithStateChangeHook is called on every state transition.
func WithStateChangeHook(hook func(name string, from, to State)) Option {
	return func(s *settings) {
		s.onStateChange = hook
	}
}
