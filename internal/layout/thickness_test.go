package layout

import (
	"errors"
	"math"
	"testing"
)

func TestNewThickness(t *testing.T) {
	type tc struct {
		l, t, r, b float64
		wantErr    bool
	}

	tests := map[string]tc{
		"valid":    {l: 1, t: 2, r: 3, b: 4},
		"zero":     {},
		"negative": {l: -1, wantErr: true},
		"nan":      {t: math.NaN(), wantErr: true},
		"infinite": {b: math.Inf(1), wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NewThickness(tt.l, tt.t, tt.r, tt.b)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidThickness) {
					t.Fatalf("NewThickness() error = %v, want ErrInvalidThickness", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewThickness() unexpected error: %v", err)
			}
			if got.Horizontal() != tt.l+tt.r {
				t.Errorf("Horizontal() = %v, want %v", got.Horizontal(), tt.l+tt.r)
			}
			if got.Vertical() != tt.t+tt.b {
				t.Errorf("Vertical() = %v, want %v", got.Vertical(), tt.t+tt.b)
			}
		})
	}
}

func TestThickness_Helpers(t *testing.T) {
	if got := Uniform(2); got != (Thickness{Left: 2, Top: 2, Right: 2, Bottom: 2}) {
		t.Errorf("Uniform(2) = %+v", got)
	}
	s := Symmetric(3, 1)
	if s.Horizontal() != 6 || s.Vertical() != 2 {
		t.Errorf("Symmetric(3, 1) sums = (%v, %v), want (6, 2)", s.Horizontal(), s.Vertical())
	}
	if got := s.Size(); got != NewSize(6, 2) {
		t.Errorf("Size() = %+v, want {6 2}", got)
	}
	if !(Thickness{}).IsZero() {
		t.Error("zero Thickness IsZero() = false")
	}
	if got := (Thickness{Left: -2, Top: math.NaN(), Right: math.Inf(1), Bottom: 1}).Clamp(); got != (Thickness{Bottom: 1}) {
		t.Errorf("Clamp() = %+v, want {0 0 0 1}", got)
	}
	if got := Uniform(1).Add(Uniform(2)); got != Uniform(3) {
		t.Errorf("Add() = %+v, want Uniform(3)", got)
	}
}
