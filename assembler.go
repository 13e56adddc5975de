package polycore

import (
	"fmt"
)

// DrawPrimitive draws count triangles assembled from vertices starting at
// reference start. It must be called between BeginScene and EndScene. A nil
// vertex buffer draws nothing. Fans pivot on reference start, not on vertex 0.
func (device *Device) DrawPrimitive(vertices []Vertex, topology PrimitiveType, start, count int) error {
	if !device.inScene {
		return fmt.Errorf("draw primitive: %w", ErrNoScene)
	}

	if vertices == nil {
		Logger().Warn("polycore: draw primitive skipped, vertex buffer not set")
		return nil
	}

	if err := device.draw(vertices, nil, topology, start, count); err != nil {
		return fmt.Errorf("draw primitive: %w", err)
	}

	return nil
}

// DrawIndexedPrimitive is DrawPrimitive with references resolved through
// indices. start is an offset into indices.
func (device *Device) DrawIndexedPrimitive(vertices []Vertex, indices []int, topology PrimitiveType, start, count int) error {
	if !device.inScene {
		return fmt.Errorf("draw indexed primitive: %w", ErrNoScene)
	}

	if vertices == nil || indices == nil {
		Logger().Warn("polycore: draw indexed primitive skipped, vertex or index buffer not set")
		return nil
	}

	if err := device.draw(vertices, indices, topology, start, count); err != nil {
		return fmt.Errorf("draw indexed primitive: %w", err)
	}

	return nil
}

// triangle returns the three references of the ordinal-th triangle of a draw
// starting at start. Odd strip triangles swap their last two references to
// keep the winding of the strip consistent.
func (p PrimitiveType) triangle(start, ordinal int) [3]int {
	switch p {
	case TriangleStrip:
		if ordinal%2 == 1 {
			return [3]int{start + ordinal, start + ordinal + 2, start + ordinal + 1}
		}

		return [3]int{start + ordinal, start + ordinal + 1, start + ordinal + 2}
	case TriangleFan:
		return [3]int{start, start + ordinal + 1, start + ordinal + 2}
	}

	return [3]int{start + ordinal*3, start + ordinal*3 + 1, start + ordinal*3 + 2}
}

func validate(vertices []Vertex, indices []int, topology PrimitiveType, start, count int) error {
	if start < 0 {
		return fmt.Errorf("start %d: %w", start, ErrIndexOutOfRange)
	}

	var needed int = topology.references(start, count)

	if indices == nil {
		if needed > len(vertices) {
			return fmt.Errorf("%d %s triangles from %d need %d vertices, have %d: %w",
				count, topology, start, needed, len(vertices), ErrIndexOutOfRange)
		}

		return nil
	}

	if needed > len(indices) {
		return fmt.Errorf("%d %s triangles from %d need %d indices, have %d: %w",
			count, topology, start, needed, len(indices), ErrIndexOutOfRange)
	}

	for position, index := range indices[start:needed] {
		if index < 0 || index >= len(vertices) {
			return fmt.Errorf("index %d at %d, %d vertices: %w", index, start+position, len(vertices), ErrIndexOutOfRange)
		}
	}

	return nil
}

// scratch returns count reusable triangles. The backing array grows but never
// shrinks.
func (device *Device) scratch(count int) []triangle {
	if cap(device.triangles) < count {
		device.triangles = make([]triangle, count)
	}

	return device.triangles[:count]
}

func (device *Device) draw(vertices []Vertex, indices []int, topology PrimitiveType, start, count int) error {
	if count <= 0 {
		return nil
	}

	if err := validate(vertices, indices, topology, start, count); err != nil {
		return err
	}

	var ctx DrawContext = device.DrawContext()

	device.stats.Submitted += count

	if ctx.cullEnabled && ctx.cull == CullFrontAndBack {
		device.stats.Culled += count
		return nil
	}

	var triangles []triangle = device.scratch(count)

	for ordinal := range triangles {
		var tri *triangle = &triangles[ordinal]
		var references [3]int = topology.triangle(start, ordinal)

		for corner, reference := range references {
			if indices != nil {
				reference = indices[reference]
			}

			tri.Vertices[corner] = ctx.processVertex(vertices[reference])
		}

		tri.Visible = true

		if ctx.culls(tri) {
			tri.Visible = false
			device.stats.Culled++
		} else if ctx.rejects(tri) {
			tri.Visible = false
			device.stats.Rejected++
		}

		if ctx.shade == ShadeFlat {
			tri.Vertices[1].Color = tri.Vertices[0].Color
			tri.Vertices[2].Color = tri.Vertices[0].Color
		}
	}

	if ctx.texture != nil {
		ctx.texture.Lock()
		defer ctx.texture.Unlock()
	}

	var raster rasterizer = newRasterizer(&ctx, device.color, device.depth, &device.stats)

	for index := range triangles {
		if !triangles[index].Visible {
			continue
		}

		raster.draw(&triangles[index])
		device.stats.Drawn++
	}

	return nil
}

// clockwise reports the screen-space winding of tri. Screen y grows downward,
// so a positive signed area is clockwise; degenerate triangles count as
// counter-clockwise.
func (ctx *DrawContext) clockwise(tri *triangle) bool {
	var a, b, c = tri.Vertices[0].Position, tri.Vertices[1].Position, tri.Vertices[2].Position

	if ctx.quirks.Has(QuirkYOrderCulling) {
		return a.Y <= b.Y && c.Y <= b.Y
	}

	return (b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y) > 0
}

// culls reports whether the cull mode hides tri. CullFrontAndBack is handled
// before assembly.
func (ctx *DrawContext) culls(tri *triangle) bool {
	if !ctx.cullEnabled {
		return false
	}

	switch ctx.cull {
	case CullBack:
		return !ctx.clockwise(tri)
	case CullFront:
		return ctx.clockwise(tri)
	}

	return false
}

// rejects reports whether tri lies wholly outside the viewport volume, or has
// a vertex with non-finite screen coordinates.
func (ctx *DrawContext) rejects(tri *triangle) bool {
	var inside bool

	for index := range tri.Vertices {
		if !tri.Vertices[index].finite() {
			return true
		}

		if ctx.viewport.Contains(tri.Vertices[index].Position) {
			inside = true
		}
	}

	return !inside
}
