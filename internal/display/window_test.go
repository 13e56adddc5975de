package display

import (
	"errors"
	"testing"

	"polycore"
)

func TestAdvance(t *testing.T) {
	device, err := polycore.NewDevice(4, 3)
	if err != nil {
		t.Fatal(err)
	}

	var rendered []int
	var window *Window = New(device, func(device *polycore.Device, frame int) error {
		rendered = append(rendered, frame)
		return nil
	})

	window.advance(0)
	window.advance(0)

	window.paused = true
	window.advance(0)
	window.advance(1)
	window.advance(-1)
	window.advance(-1)

	var want = []int{0, 1, 2, 1, 0}

	if len(rendered) != len(want) {
		t.Fatalf("rendered frames %v, want %v", rendered, want)
	}

	for index := range want {
		if rendered[index] != want[index] {
			t.Fatalf("rendered frames %v, want %v", rendered, want)
		}
	}

	if width, height := window.Layout(640, 480); width != 4 || height != 3 {
		t.Errorf("Layout() = %d, %d, want 4, 3", width, height)
	}
}

func TestAdvanceError(t *testing.T) {
	device, _ := polycore.NewDevice(4, 4)
	var failure = errors.New("boom")

	var window *Window = New(device, func(*polycore.Device, int) error { return failure })

	if err := window.advance(0); !errors.Is(err, failure) {
		t.Errorf("advance() error = %v, want %v", err, failure)
	}
}
