package easing

import (
	"math"
	"testing"
)

func TestLinearIsIdentity(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := Linear(x); got != x {
			t.Errorf("Linear(%v) = %v", x, got)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"linear", false},
		{"In-Out-Cubic", false},
		{"out_back", false},
		{"wobble", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Lookup(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if f == nil {
				t.Fatal("Expected curve, got nil")
			}
		})
	}
}

func TestCurvesEndpoints(t *testing.T) {
	for _, name := range []string{"linear", "smooth", "in_out_quad", "in_out_cubic", "in_out_sine", "out_back"} {
		f, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if got := f(0); math.Abs(got) > 1e-12 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := f(1); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestThereAndBack(t *testing.T) {
	if got := ThereAndBack(0.5); got != 1 {
		t.Errorf("ThereAndBack(0.5) = %v, want 1", got)
	}
	if got := ThereAndBack(1); got != 0 {
		t.Errorf("ThereAndBack(1) = %v, want 0", got)
	}
}

func TestOrLinear(t *testing.T) {
	if got := OrLinear(nil)(0.3); got != 0.3 {
		t.Errorf("OrLinear(nil)(0.3) = %v", got)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %q > %q", names[i-1], names[i])
		}
	}
}
