package layout

import (
	"errors"
	"math"
	"testing"
)

func TestGridLength_Constructors(t *testing.T) {
	type tc struct {
		build    func() (GridLength, error)
		expected GridLength
		wantErr  bool
	}

	tests := map[string]tc{
		"pixel":          {build: func() (GridLength, error) { return Pixel(40) }, expected: GridLength{Value: 40, Unit: UnitPixel}},
		"star":           {build: func() (GridLength, error) { return Star(2) }, expected: GridLength{Value: 2, Unit: UnitStar}},
		"zero star":      {build: func() (GridLength, error) { return Star(0) }, expected: GridLength{Unit: UnitStar}},
		"negative pixel": {build: func() (GridLength, error) { return Pixel(-1) }, wantErr: true},
		"nan star":       {build: func() (GridLength, error) { return Star(math.NaN()) }, wantErr: true},
		"infinite pixel": {build: func() (GridLength, error) { return Pixel(math.Inf(1)) }, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.build()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGridLength) {
					t.Fatalf("error = %v, want ErrInvalidGridLength", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestGridLength_ZeroValueIsAuto(t *testing.T) {
	var l GridLength
	if !l.IsAuto() {
		t.Errorf("zero GridLength IsAuto() = false, want true")
	}
	if l != AutoLength() {
		t.Errorf("zero GridLength = %+v, want AutoLength()", l)
	}
}

func TestParseGridLength(t *testing.T) {
	type tc struct {
		in       string
		expected GridLength
		wantErr  bool
	}

	tests := map[string]tc{
		"auto":          {in: "auto", expected: AutoLength()},
		"auto mixed":    {in: " Auto ", expected: AutoLength()},
		"bare star":     {in: "*", expected: MustStar(1)},
		"weighted star": {in: "2.5*", expected: MustStar(2.5)},
		"pixel":         {in: "40", expected: MustPixel(40)},
		"garbage":       {in: "wide", wantErr: true},
		"bad weight":    {in: "x*", wantErr: true},
		"negative":      {in: "-3", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseGridLength(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGridLength) {
					t.Fatalf("ParseGridLength(%q) error = %v, want ErrInvalidGridLength", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGridLength(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.expected {
				t.Errorf("ParseGridLength(%q) = %+v, want %+v", tt.in, got, tt.expected)
			}
			if back, _ := ParseGridLength(got.String()); back != got {
				t.Errorf("String() %q does not parse back to %+v", got.String(), got)
			}
		})
	}
}

func TestMustStar_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustStar(-1) did not panic")
		}
	}()
	MustStar(-1)
}
