package zernike

import (
	"errors"
	"math"
	"testing"
)

func TestPistonIsAllOnes(t *testing.T) {
	for _, size := range []int{1, 2, 7, 32} {
		cube, err := Generate(1, size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if cube.Modes() != 1 || cube.Size() != size {
			t.Fatalf("size %d: got %dx%d cube", size, cube.Modes(), cube.Size())
		}
		piston := cube.Mode(0)
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				if piston.At(i, j) != 1 {
					t.Fatalf("size %d: piston(%d,%d) = %f", size, i, j, piston.At(i, j))
				}
			}
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	if _, err := Generate(23, 16); !errors.Is(err, ErrUnsupportedOrder) {
		t.Errorf("modes 23: got %v, want ErrUnsupportedOrder", err)
	}
	if _, err := Generate(0, 16); !errors.Is(err, ErrUnsupportedOrder) {
		t.Errorf("modes 0: got %v, want ErrUnsupportedOrder", err)
	}
	if _, err := Generate(5, 0); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("grid 0: got %v, want ErrInvalidGrid", err)
	}
	if _, err := Generate(5, -3); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("grid -3: got %v, want ErrInvalidGrid", err)
	}
}

func TestTipTiltValues(t *testing.T) {
	// 3x3 grid: corners at radius sqrt(2), edge midpoints at radius 1
	cube, err := Generate(3, 3)
	if err != nil {
		t.Fatal(err)
	}

	// tip = 2r*cos(phi) = 2x, tilt = 2r*sin(phi) = 2y
	tip, tilt := cube.Mode(1), cube.Mode(2)
	cases := []struct {
		i, j      int
		tip, tilt float64
	}{
		{1, 0, -2, 0}, // x=-1, y=0
		{1, 2, 2, 0},  // x=1, y=0
		{0, 1, 0, -2}, // x=0, y=-1
		{2, 1, 0, 2},  // x=0, y=1
		{1, 1, 0, 0},  // center
	}
	for _, c := range cases {
		if got := tip.At(c.i, c.j); math.Abs(got-c.tip) > 1e-14 {
			t.Errorf("tip(%d,%d) = %f, want %f", c.i, c.j, got, c.tip)
		}
		if got := tilt.At(c.i, c.j); math.Abs(got-c.tilt) > 1e-14 {
			t.Errorf("tilt(%d,%d) = %f, want %f", c.i, c.j, got, c.tilt)
		}
	}
}

func TestDefocusCenter(t *testing.T) {
	cube, err := Generate(4, 5)
	if err != nil {
		t.Fatal(err)
	}
	// r=0 at the center of an odd grid: sqrt(3)*(2*0-1) = -sqrt(3)
	got := cube.Mode(3).At(2, 2)
	want := -math.Sqrt(3)
	if math.Abs(got-want) > 1e-14 {
		t.Errorf("defocus center = %f, want %f", got, want)
	}
}

func TestSphericalCorner(t *testing.T) {
	cube, err := Generate(22, 3)
	if err != nil {
		t.Fatal(err)
	}
	// corner (0,0): r^2 = 2; sqrt(7)*(20*8 - 30*4 + 12*2 - 1)
	want := math.Sqrt(7) * (20*8 - 30*4 + 12*2 - 1)
	got := cube.Mode(21).At(0, 0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("secondary spherical corner = %f, want %f", got, want)
	}
}

func TestName(t *testing.T) {
	if got := Name(0); got != "piston" {
		t.Errorf("Name(0) = %q", got)
	}
	if got := Name(3); got != "defocus" {
		t.Errorf("Name(3) = %q", got)
	}
	if got := Name(22); got != "" {
		t.Errorf("Name(22) = %q, want empty", got)
	}
}
