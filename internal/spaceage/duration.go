package spaceage

import "errors"

// ErrDivisionByZero is the panic value raised when a Duration is divided by zero.
var ErrDivisionByZero = errors.New("cannot divide by zero")

// Duration is an elapsed time span in whole seconds.
type Duration uint64

func FromSeconds(seconds uint64) Duration {
	return Duration(seconds)
}

func (d Duration) Seconds() uint64 {
	return uint64(d)
}

// Div divides the duration by divisor. A zero divisor panics with
// ErrDivisionByZero instead of producing an infinity.
func (d Duration) Div(divisor float64) float64 {
	if divisor == 0 {
		panic(ErrDivisionByZero)
	}
	return float64(d) / divisor
}
