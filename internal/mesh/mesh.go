// Package mesh loads triangle lists for a polycore.Device from the raw binary
// mesh format and from Wavefront OBJ files.
package mesh

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"

	"polycore"
	"polycore/vecmath"
)

// ErrInvalidMesh reports a malformed mesh file.
var ErrInvalidMesh = errors.New("mesh: invalid mesh")

var white = color.RGBA{255, 255, 255, 255}

// Mesh is a triangle list: every three vertices form one triangle.
type Mesh struct {
	Vertices []polycore.Vertex
}

// Triangles returns the number of whole triangles in the mesh.
func (mesh *Mesh) Triangles() int {
	return len(mesh.Vertices) / 3
}

// Bounds returns the corners of the axis aligned box around every vertex
// position. An empty mesh has zero bounds.
func (mesh *Mesh) Bounds() (minimum, maximum vecmath.Vector3) {
	if len(mesh.Vertices) == 0 {
		return
	}

	minimum, maximum = mesh.Vertices[0].Position, mesh.Vertices[0].Position

	for _, vertex := range mesh.Vertices[1:] {
		minimum = minimum.Minimize(vertex.Position)
		maximum = maximum.Maximize(vertex.Position)
	}

	return minimum, maximum
}

// Normalize translates the mesh to the origin and scales it so its largest
// extent is 2, spanning [-1, 1] on that axis.
func (mesh *Mesh) Normalize() {
	minimum, maximum := mesh.Bounds()

	var size vecmath.Vector3 = maximum.Sub(minimum)
	var extent float32 = math32.Max(size.X, math32.Max(size.Y, size.Z))

	if extent <= 0 {
		return
	}

	var center vecmath.Vector3 = minimum.Add(size.Scale(0.5))
	var transform vecmath.Matrix = vecmath.Translation(-center.X, -center.Y, -center.Z).
		Multiply(vecmath.Scaling(2/extent, 2/extent, 2/extent))

	for index := range mesh.Vertices {
		mesh.Vertices[index].Position = mesh.Vertices[index].Position.Transform(transform)
	}
}

// Cube returns a cube of the given edge length centered on the origin. Faces
// wind counter-clockwise seen from outside, so they survive CullBack.
func Cube(size float32) *Mesh {
	var half float32 = size / 2

	faces := [6][3]vecmath.Vector3{
		// normal, u, v with u x v = normal
		{{X: 1}, {Y: 1}, {Z: 1}},
		{{X: -1}, {Z: 1}, {Y: 1}},
		{{Y: 1}, {Z: 1}, {X: 1}},
		{{Y: -1}, {X: 1}, {Z: 1}},
		{{Z: 1}, {X: 1}, {Y: 1}},
		{{Z: -1}, {Y: 1}, {X: 1}},
	}

	texCoords := [4]vecmath.Vector2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	var mesh *Mesh = &Mesh{Vertices: make([]polycore.Vertex, 0, len(faces)*6)}

	for _, face := range faces {
		var normal, u, v vecmath.Vector3 = face[0], face[1].Scale(half), face[2].Scale(half)
		var center vecmath.Vector3 = normal.Scale(half)

		corners := [4]vecmath.Vector3{
			center.Sub(u).Sub(v),
			center.Add(u).Sub(v),
			center.Add(u).Add(v),
			center.Sub(u).Add(v),
		}

		for _, index := range [6]int{0, 1, 2, 0, 2, 3} {
			var vertex polycore.Vertex = newVertex(corners[index], normal)
			vertex.TexCoord = texCoords[index]

			mesh.Vertices = append(mesh.Vertices, vertex)
		}
	}

	return mesh
}

// Load reads path as an OBJ file when it has the .obj extension and as a raw
// binary mesh otherwise.
func Load(path string) (*Mesh, error) {
	var mesh *Mesh
	var err error

	if strings.EqualFold(filepath.Ext(path), ".obj") {
		mesh, err = LoadOBJ(path)
	} else {
		mesh, err = LoadBinary(path)
	}

	if err != nil {
		return nil, err
	}

	polycore.Logger().Debug("mesh: loaded", "path", path, "triangles", mesh.Triangles())

	return mesh, nil
}

func newVertex(position, normal vecmath.Vector3) polycore.Vertex {
	return polycore.Vertex{Position: position, Normal: normal, Diffuse: white, Specular: white}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidMesh)
}
