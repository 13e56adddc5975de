package main

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"polycore"
	"polycore/internal/mesh"
	"polycore/internal/scene"
)

func TestFramePath(t *testing.T) {
	tests := []struct {
		pattern string
		n       int
		frames  int
		want    string
	}{
		{"frame.png", 0, 1, "frame.png"},
		{"frame.png", 7, 10, "frame007.png"},
		{"out/f%02d.png", 3, 10, "out/f03.png"},
		{"noext", 2, 3, "noext002"},
	}

	for _, test := range tests {
		if got := framePath(test.pattern, test.n, test.frames); got != test.want {
			t.Errorf("framePath(%q, %d, %d) = %q, want %q", test.pattern, test.n, test.frames, got, test.want)
		}
	}
}

func TestRunWritesFrames(t *testing.T) {
	defer polycore.SetLogger(nil)

	var directory string = t.TempDir()

	if err := run([]string{"polycore", "-frames", "2", "-overlay", "-out", filepath.Join(directory, "cube.png")}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, name := range []string{"cube000.png", "cube001.png"} {
		file, err := os.Open(filepath.Join(directory, name))
		if err != nil {
			t.Fatal(err)
		}

		img, err := png.Decode(file)
		file.Close()

		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}

		if got := img.Bounds(); got != image.Rect(0, 0, 300, 300) {
			t.Errorf("%s bounds = %v, want 300x300", name, got)
		}

		// The cube covers the center of the default view.
		if r, g, b, _ := img.At(150, 150).RGBA(); r == 0 && g == 0 && b == 0 {
			t.Errorf("%s center pixel is black", name)
		}
	}
}

func TestRunMissingMesh(t *testing.T) {
	defer polycore.SetLogger(nil)

	if err := run([]string{"polycore", "-mesh", filepath.Join(t.TempDir(), "missing.obj")}); err == nil {
		t.Errorf("run() with a missing mesh error = nil")
	}
}

func TestFrameClosesScene(t *testing.T) {
	var s *scene.Scene = scene.Default()

	device, err := polycore.NewDevice(s.Width, s.Height, s.Options()...)
	if err != nil {
		t.Fatal(err)
	}

	var r *renderer = &renderer{scene: s, mesh: mesh.Cube(1)}

	if err := r.frame(device, 0); err != nil {
		t.Fatalf("frame() error = %v", err)
	}

	if device.InScene() {
		t.Errorf("InScene() = true after frame()")
	}

	if got := device.Stats().Drawn; got == 0 {
		t.Errorf("Stats().Drawn = 0, want the cube drawn")
	}

	device.BeginScene()
	defer device.EndScene()

	if err := r.frame(device, 1); !errors.Is(err, polycore.ErrSceneInProgress) {
		t.Errorf("frame() inside a scene error = %v, want %v", err, polycore.ErrSceneInProgress)
	}
}
