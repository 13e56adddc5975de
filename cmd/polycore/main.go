// Command polycore renders a mesh with the software rasterizer, either to PNG
// frames or to a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"polycore"
	"polycore/internal/display"
	"polycore/internal/mesh"
	"polycore/internal/scene"
)

type renderer struct {
	scene   *scene.Scene
	mesh    *mesh.Mesh
	overlay bool
}

// frame draws the mesh for frame number n into device.
func (r *renderer) frame(device *polycore.Device, n int) error {
	r.scene.Apply(device, n)

	if err := device.Clear(polycore.ClearColor | polycore.ClearDepth); err != nil {
		return err
	}

	if err := device.BeginScene(); err != nil {
		return err
	}

	if err := errors.Join(
		device.DrawPrimitive(r.mesh.Vertices, polycore.TriangleList, 0, r.mesh.Triangles()),
		device.EndScene(),
	); err != nil {
		return err
	}

	if !r.overlay {
		return nil
	}

	var stats polycore.Stats = device.Stats()

	return device.DrawString(4, 4, color.RGBA{255, 255, 0, 255},
		fmt.Sprintf("frame %d  %d/%d triangles  %d pixels", n, stats.Drawn, stats.Submitted, stats.Pixels))
}

// framePath returns the output file for frame n. A pattern with a % verb is
// formatted with n; otherwise n is inserted before the extension when more
// than one frame is written.
func framePath(pattern string, n, frames int) string {
	if strings.Contains(pattern, "%") {
		return fmt.Sprintf(pattern, n)
	}

	if frames == 1 {
		return pattern
	}

	var extension string = filepath.Ext(pattern)

	return fmt.Sprintf("%s%03d%s", strings.TrimSuffix(pattern, extension), n, extension)
}

func writePNG(device *polycore.Device, path string) error {
	img, err := device.Image()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}

func run(args []string) error {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)

	scenePath := fs.String("scene", "", "YAML scene file; the built-in scene when empty")
	meshPath := fs.String("mesh", "", "OBJ or raw binary mesh; overrides the scene, a cube when both are empty")
	normalize := fs.Bool("normalize", false, "center the mesh and scale it into [-1, 1]")
	frames := fs.Int("frames", 1, "the number of frames to render")
	out := fs.String("out", "frame.png", "output PNG path; a %d verb receives the frame number")
	window := fs.Bool("window", false, "show the frames in a window instead of writing PNG files")
	scale := fs.Int("scale", 2, "window scale factor")
	overlay := fs.Bool("overlay", false, "draw frame statistics onto the image")
	verbose := fs.Bool("v", false, "log per-scene statistics")

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}

	var level slog.Level = slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	var logger *slog.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	polycore.SetLogger(logger)

	var s *scene.Scene = scene.Default()

	if *scenePath != "" {
		loaded, err := scene.Load(*scenePath)
		if err != nil {
			return err
		}

		s = loaded
	}

	if *meshPath != "" {
		s.Mesh = *meshPath
	}

	var m *mesh.Mesh = mesh.Cube(1)

	if s.Mesh != "" {
		loaded, err := mesh.Load(s.Mesh)
		if err != nil {
			return err
		}

		m = loaded
	}

	if *normalize {
		m.Normalize()
	}

	device, err := polycore.NewDevice(s.Width, s.Height, s.Options()...)
	if err != nil {
		return err
	}

	var r *renderer = &renderer{scene: s, mesh: m, overlay: *overlay || *window}

	if *window {
		return display.Run("Polygon Core", *scale, display.New(device, r.frame))
	}

	if *frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", *frames)
	}

	start := time.Now()

	pb := progressbar.Default(int64(*frames), "rendering")
	defer pb.Close()

	for n := range *frames {
		if err := r.frame(device, n); err != nil {
			return fmt.Errorf("failed to render frame %d: %w", n, err)
		}

		if err := writePNG(device, framePath(*out, n, *frames)); err != nil {
			return fmt.Errorf("failed to write frame %d: %w", n, err)
		}

		pb.Add(1)
	}

	logger.Info("rendered",
		"frames", *frames,
		"triangles", m.Triangles(),
		"elapsed", time.Since(start),
	)

	return nil
}

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run polycore: %v\n", err)
		os.Exit(1)
	}
}
