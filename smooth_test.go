package movavg

import (
	"errors"
	"testing"
)

func TestSmooth(t *testing.T) {
	got, err := Smooth[int, int64](3, []int{10, 20, 30, 40})
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	want := []int{10, 15, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestSmoothEmptyInput(t *testing.T) {
	got, err := Smooth[float64, float64](4, nil)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestSmoothBadWindow(t *testing.T) {
	if _, err := Smooth[int, int](0, []int{1, 2}); !errors.Is(err, ErrWindowSize) {
		t.Errorf("Smooth(0, ...) expected ErrWindowSize, got %v", err)
	}
}
