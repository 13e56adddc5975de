package mesh

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"polycore"
	"polycore/vecmath"
)

// The raw binary format is little endian: an int32 triangle count, then for
// every vertex of every triangle three float32 normal components followed by
// three float32 position components.

type binaryVertex struct {
	Normal, Position [3]float32
}

// ReadBinary decodes a raw binary mesh.
func ReadBinary(r io.Reader) (*Mesh, error) {
	var reader *bufio.Reader = bufio.NewReader(r)

	var count int32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read triangle count: %w", err)
	}

	if count < 0 {
		return nil, invalid("triangle count %d", count)
	}

	var mesh *Mesh = &Mesh{Vertices: make([]polycore.Vertex, 0, min(int(count)*3, 1<<16))}
	var triangle [3]binaryVertex

	for index := 0; index < int(count); index++ {
		if err := binary.Read(reader, binary.LittleEndian, &triangle); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, invalid("triangle %d of %d truncated", index, count)
			}

			return nil, fmt.Errorf("read triangle %d: %w", index, err)
		}

		for _, vertex := range triangle {
			mesh.Vertices = append(mesh.Vertices, newVertex(
				vecmath.Vector3{X: vertex.Position[0], Y: vertex.Position[1], Z: vertex.Position[2]},
				vecmath.Vector3{X: vertex.Normal[0], Y: vertex.Normal[1], Z: vertex.Normal[2]},
			))
		}
	}

	return mesh, nil
}

// WriteBinary encodes the whole triangles of mesh in the raw binary format.
func WriteBinary(w io.Writer, mesh *Mesh) error {
	var writer *bufio.Writer = bufio.NewWriter(w)
	var count int = mesh.Triangles()

	if err := binary.Write(writer, binary.LittleEndian, int32(count)); err != nil {
		return fmt.Errorf("write triangle count: %w", err)
	}

	for _, vertex := range mesh.Vertices[:count*3] {
		var record binaryVertex = binaryVertex{
			Normal:   [3]float32{vertex.Normal.X, vertex.Normal.Y, vertex.Normal.Z},
			Position: [3]float32{vertex.Position.X, vertex.Position.Y, vertex.Position.Z},
		}

		if err := binary.Write(writer, binary.LittleEndian, &record); err != nil {
			return fmt.Errorf("write vertex: %w", err)
		}
	}

	return writer.Flush()
}

// LoadBinary reads a raw binary mesh file.
func LoadBinary(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load mesh: %w", err)
	}

	defer file.Close()

	mesh, err := ReadBinary(file)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", path, err)
	}

	return mesh, nil
}
