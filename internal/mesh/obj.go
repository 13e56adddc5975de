package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"polycore"
	"polycore/vecmath"
)

// objReference is one corner of an OBJ face: zero based position, texture
// coordinate and normal indices, -1 when absent.
type objReference struct {
	position, texCoord, normal int
}

type objReader struct {
	positions, normals []vecmath.Vector3
	texCoords          []vecmath.Vector2

	mesh *Mesh
	line int
}

// ReadOBJ decodes the v, vt, vn and f statements of a Wavefront OBJ stream.
// Faces with more than three corners are split into a fan. Corners without a
// normal get the face normal, and texture coordinates are flipped so v runs
// down the image.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	var obj objReader = objReader{mesh: &Mesh{}}
	var scanner *bufio.Scanner = bufio.NewScanner(r)

	for scanner.Scan() {
		obj.line++

		var fields []string = strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if err := obj.statement(fields[0], fields[1:]); err != nil {
			return nil, fmt.Errorf("line %d: %w", obj.line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	return obj.mesh, nil
}

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load mesh: %w", err)
	}

	defer file.Close()

	mesh, err := ReadOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", path, err)
	}

	return mesh, nil
}

func (obj *objReader) statement(kind string, arguments []string) error {
	switch kind {
	case "v":
		vector, err := parseFloats(arguments, 3)
		if err != nil {
			return err
		}

		obj.positions = append(obj.positions, vecmath.Vector3{X: vector[0], Y: vector[1], Z: vector[2]})
	case "vn":
		vector, err := parseFloats(arguments, 3)
		if err != nil {
			return err
		}

		obj.normals = append(obj.normals, vecmath.Vector3{X: vector[0], Y: vector[1], Z: vector[2]})
	case "vt":
		vector, err := parseFloats(arguments, 2)
		if err != nil {
			return err
		}

		obj.texCoords = append(obj.texCoords, vecmath.Vector2{X: vector[0], Y: 1 - vector[1]})
	case "f":
		return obj.face(arguments)
	}

	return nil
}

func parseFloats(arguments []string, count int) ([]float32, error) {
	if len(arguments) < count {
		return nil, invalid("want %d numbers, have %d", count, len(arguments))
	}

	var values []float32 = make([]float32, count)

	for index := range values {
		value, err := strconv.ParseFloat(arguments[index], 32)
		if err != nil {
			return nil, invalid("number %q", arguments[index])
		}

		values[index] = float32(value)
	}

	return values, nil
}

func (obj *objReader) face(arguments []string) error {
	if len(arguments) < 3 {
		return invalid("face with %d corners", len(arguments))
	}

	var corners []objReference = make([]objReference, len(arguments))

	for index, argument := range arguments {
		reference, err := obj.reference(argument)
		if err != nil {
			return err
		}

		corners[index] = reference
	}

	for index := 1; index+1 < len(corners); index++ {
		obj.triangle(corners[0], corners[index], corners[index+1])
	}

	return nil
}

// reference parses "v", "v/vt", "v//vn" or "v/vt/vn". Negative indices count
// back from the latest element.
func (obj *objReader) reference(argument string) (objReference, error) {
	var parts []string = strings.Split(argument, "/")
	var reference objReference = objReference{-1, -1, -1}

	if len(parts) > 3 {
		return reference, invalid("face corner %q", argument)
	}

	var targets = []*int{&reference.position, &reference.texCoord, &reference.normal}
	var lengths = []int{len(obj.positions), len(obj.texCoords), len(obj.normals)}

	for index, part := range parts {
		if part == "" {
			if index == 0 {
				return reference, invalid("face corner %q has no position", argument)
			}

			continue
		}

		value, err := strconv.Atoi(part)
		if err != nil {
			return reference, invalid("face corner %q", argument)
		}

		if value < 0 {
			value += lengths[index]
		} else {
			value--
		}

		if value < 0 || value >= lengths[index] {
			return reference, invalid("face corner %q out of range", argument)
		}

		*targets[index] = value
	}

	return reference, nil
}

func (obj *objReader) triangle(a, b, c objReference) {
	var corners [3]objReference = [3]objReference{a, b, c}
	var positions [3]vecmath.Vector3

	for index, corner := range corners {
		positions[index] = obj.positions[corner.position]
	}

	var faceNormal vecmath.Vector3 = positions[1].Sub(positions[0]).Cross(positions[2].Sub(positions[0])).Normalize()

	for index, corner := range corners {
		var normal vecmath.Vector3 = faceNormal
		if corner.normal >= 0 {
			normal = obj.normals[corner.normal]
		}

		var vertex polycore.Vertex = newVertex(positions[index], normal)

		if corner.texCoord >= 0 {
			vertex.TexCoord = obj.texCoords[corner.texCoord]
		}

		obj.mesh.Vertices = append(obj.mesh.Vertices, vertex)
	}
}
