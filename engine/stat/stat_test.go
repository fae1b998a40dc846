package stat

import (
	"errors"
	"testing"
)

func TestSet_ClampsToBounds(t *testing.T) {
	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{"within range", 75, 75},
		{"above max", 200, 100},
		{"below min", -30, 0},
		{"at max", 100, 100},
		{"at min", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBounded("hp", 0, 100)
			if err := s.Set(tt.set); err != nil {
				t.Fatalf("Set(%v) failed: %v", tt.set, err)
			}
			if got := s.Get(); got != tt.want {
				t.Errorf("Get() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_UnboundedAbove(t *testing.T) {
	s := New("strength", 0)

	if err := s.Set(10_000.5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := s.Get(); got != 10_000.5 {
		t.Errorf("Get() = %v, want 10000.5", got)
	}

	// Lower bound still clamps.
	if err := s.Set(-5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := s.Get(); got != 0 {
		t.Errorf("Get() after negative set = %v, want 0", got)
	}
}

func TestSet_NumericTypes(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want float64
	}{
		{"float64", 42.5, 42.5},
		{"float32", float32(8), 8},
		{"int", 7, 7},
		{"int64", int64(9), 9},
		{"numeric string", "33.25", 33.25},
		{"scientific string", "1e2", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBounded("mp", 0, 1000)
			if err := s.Set(tt.v); err != nil {
				t.Fatalf("Set(%v) failed: %v", tt.v, err)
			}
			if got := s.Get(); got != tt.want {
				t.Errorf("Get() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_NonNumericRejected(t *testing.T) {
	s := NewBounded("hp", 0, 100)
	s.SetFloat(50)

	for _, v := range []any{"potato", true, nil, []int{1}} {
		err := s.Set(v)
		if err == nil {
			t.Fatalf("Set(%v) = nil error, want ValidationError", v)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Set(%v) error type = %T, want *ValidationError", v, err)
		}
		if ve.Stat != "hp" {
			t.Errorf("ValidationError.Stat = %q, want %q", ve.Stat, "hp")
		}
	}

	// Failed writes leave the previous value intact.
	if got := s.Get(); got != 50 {
		t.Errorf("Get() after rejected writes = %v, want 50", got)
	}
}

func TestAdd_Clamps(t *testing.T) {
	s := NewBounded("hp", 0, 100)
	s.SetFloat(90)

	s.Add(25)
	if got := s.Get(); got != 100 {
		t.Errorf("Add over max: Get() = %v, want 100", got)
	}

	s.Add(-250)
	if got := s.Get(); got != 0 {
		t.Errorf("Add under min: Get() = %v, want 0", got)
	}
}

func TestDelete_AlwaysFails(t *testing.T) {
	s := NewBounded("hp", 0, 100)
	s.SetFloat(60)

	err := s.Delete()
	if !errors.Is(err, ErrNoDelete) {
		t.Fatalf("Delete() = %v, want ErrNoDelete", err)
	}
	if got := s.Get(); got != 60 {
		t.Errorf("Get() after Delete = %v, want 60", got)
	}
}

func TestNewBounded_StartsAtMin(t *testing.T) {
	s := NewBounded("hp", 0, 100)
	if got := s.Get(); got != 0 {
		t.Errorf("fresh stat Get() = %v, want 0", got)
	}

	min, max, capped := s.Bounds()
	if min != 0 || max != 100 || !capped {
		t.Errorf("Bounds() = (%v, %v, %v), want (0, 100, true)", min, max, capped)
	}
}
