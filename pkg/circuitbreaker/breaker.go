package circuitbreaker

import (
	"errors"

	"github.com/sony/gobreaker/v2"
)

// State of a circuit breaker.
type State string

const (
	StateClosed   State = "closed"
	StateHalfOpen State = "half-open"
	StateOpen     State = "open"
)

// CircuitBreaker wraps gobreaker to guard calls to a remote service.
type CircuitBreaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

// New creates a circuit breaker from cfg. It returns nil when the breaker is
// disabled; Execute treats a nil breaker as a pass-through.
func New[T any](cfg Config, opts ...Option) *CircuitBreaker[T] {
	if !cfg.Enabled {
		return nil
	}

	s := settings{
		isFailure: func(err error) bool { return err != nil },
	}

	for _, opt := range opts {
		opt(&s)
	}

	st := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: uint32(cfg.MaxRequests),
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.FailureThreshold)
		},
		IsSuccessful: func(err error) bool {
			return !s.isFailure(err)
		},
	}

	if s.onStateChange != nil {
		hook := s.onStateChange
		st.OnStateChange = func(name string, from, to gobreaker.State) {
			hook(name, toState(from), toState(to))
		}
	}

	return &CircuitBreaker[T]{cb: gobreaker.NewCircuitBreaker[T](st)}
}

func (c *CircuitBreaker[T]) Name() string {
	return c.cb.Name()
}

func (c *CircuitBreaker[T]) State() State {
	return toState(c.cb.State())
}

// Execute runs fn through the breaker, or directly when cb is nil.
// An open breaker yields ErrCircuitOpen and an exhausted half-open breaker
// yields ErrTooManyRequests. Errors from fn are returned together with its
// result.
func Execute[T any](cb *CircuitBreaker[T], fn func() (T, error)) (T, error) {
	if cb == nil {
		return fn()
	}

	result, err := cb.cb.Execute(fn)
	if err != nil {
		var zero T

		if errors.Is(err, gobreaker.ErrOpenState) {
			return zero, ErrCircuitOpen
		}

		if errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, ErrTooManyRequests
		}

		return result, err
	}

	return result, nil
}

func toState(state gobreaker.State) State {
	switch state {
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	case gobreaker.StateOpen:
		return StateOpen
	default:
		return StateClosed
	}
}
