// Package stat implements clamped numeric attributes. A Stat holds a
// float value that never leaves its bounds: writes outside the range are
// clamped, not rejected, and non-numeric writes fail without touching
// the stored value.
package stat

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoDelete is returned by Delete. Stats live for the lifetime of
// their owner and cannot be removed.
var ErrNoDelete = errors.New("stat cannot be deleted")

// ValidationError reports a rejected write: the value was not numeric.
type ValidationError struct {
	Stat  string
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("stat %s: cannot set non-numeric value %v (%T)", e.Stat, e.Value, e.Value)
}

// Stat is a bounded numeric attribute. Construct with New or NewBounded;
// the zero value has an empty name and a [0, 0] range.
type Stat struct {
	name   string
	min    float64
	max    float64
	capped bool
	value  float64
}

// New creates a stat bounded below by min and unbounded above.
func New(name string, min float64) Stat {
	return Stat{name: name, min: min, value: min}
}

// NewBounded creates a stat clamped to [min, max].
func NewBounded(name string, min, max float64) Stat {
	return Stat{name: name, min: min, max: max, capped: true, value: min}
}

// Set validates v and stores it, clamped to the stat's bounds. Numeric
// strings are accepted. Any other type fails with a *ValidationError
// and leaves the current value unchanged.
func (s *Stat) Set(v any) error {
	f, ok := toFloat(v)
	if !ok {
		return &ValidationError{Stat: s.name, Value: v}
	}
	s.SetFloat(f)
	return nil
}

// SetFloat stores a known-numeric value, clamped to the stat's bounds.
func (s *Stat) SetFloat(v float64) {
	if s.capped && v > s.max {
		v = s.max
	}
	if v < s.min {
		v = s.min
	}
	s.value = v
}

// Add adjusts the stat by delta, clamped to the bounds.
func (s *Stat) Add(delta float64) {
	s.SetFloat(s.value + delta)
}

// Get returns the current value.
func (s *Stat) Get() float64 { return s.value }

// Name returns the stat's name.
func (s *Stat) Name() string { return s.name }

// Bounds returns the stat's range. capped is false when there is no
// upper bound, in which case max is meaningless.
func (s *Stat) Bounds() (min, max float64, capped bool) {
	return s.min, s.max, s.capped
}

// Delete always fails with ErrNoDelete.
func (s *Stat) Delete() error { return ErrNoDelete }

// toFloat coerces the supported value types to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
