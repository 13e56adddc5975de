package polycore

import (
	"image"

	"github.com/chewxy/math32"
)

// fragment holds the attributes interpolated across a triangle: screen x,
// depth after the divide by w, color and texture coordinate.
type fragment struct {
	X, Z  float32
	Color rgb
	U, V  float32
}

func (f1 fragment) Add(f2 fragment) fragment {
	return fragment{f1.X + f2.X, f1.Z + f2.Z, f1.Color.Add(f2.Color), f1.U + f2.U, f1.V + f2.V}
}

func (f1 fragment) Sub(f2 fragment) fragment {
	return fragment{f1.X - f2.X, f1.Z - f2.Z, f1.Color.Sub(f2.Color), f1.U - f2.U, f1.V - f2.V}
}

func (f1 fragment) Scale(s float32) fragment {
	return fragment{f1.X * s, f1.Z * s, f1.Color.Scale(s), f1.U * s, f1.V * s}
}

func newFragment(v pipelineVertex) fragment {
	return fragment{
		X:     v.Position.X,
		Z:     v.Position.Z / v.Position.W,
		Color: v.Color,
		U:     v.TexCoord.X,
		V:     v.TexCoord.Y,
	}
}

// slope returns the change of f per unit of y between two vertices, or zero
// when the edge has no height.
func slope(from, to fragment, fromY, toY float32) fragment {
	if toY-fromY <= 0 {
		return fragment{}
	}

	return to.Sub(from).Scale(1 / (toY - fromY))
}

// rasterizer scan-converts triangles for one draw call.
type rasterizer struct {
	ctx *DrawContext

	color *ColorBuffer
	depth *DepthBuffer
	stats *Stats

	// bounds is the viewport clipped to the surfaces.
	bounds image.Rectangle

	shade func(f *fragment) rgb
}

func newRasterizer(ctx *DrawContext, color *ColorBuffer, depth *DepthBuffer, stats *Stats) rasterizer {
	var viewport Viewport = ctx.viewport
	var bounds image.Rectangle = image.Rect(viewport.X, viewport.Y, viewport.X+viewport.Width, viewport.Y+viewport.Height).
		Intersect(color.Bounds())

	var r rasterizer = rasterizer{ctx: ctx, color: color, depth: depth, stats: stats, bounds: bounds}

	switch {
	case ctx.texture == nil:
		r.shade = shadeSmooth
	case ctx.blend:
		r.shade = ctx.shadeSmoothTextured
	default:
		r.shade = ctx.shadeTextured
	}

	return r
}

func shadeSmooth(f *fragment) rgb { return f.Color }

func (ctx *DrawContext) shadeTextured(f *fragment) rgb {
	return ctx.texture.sample(f.U, f.V)
}

func (ctx *DrawContext) shadeSmoothTextured(f *fragment) rgb {
	return ctx.texture.sample(f.U, f.V).Multiply(f.Color)
}

// draw fills tri row by row. Vertices are ordered by y into a, b, c; the long
// edge a->c bounds one side of every row and a->b then b->c the other.
func (r *rasterizer) draw(tri *triangle) {
	var vertices [3]pipelineVertex = tri.Vertices

	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			if vertices[i].Position.Y > vertices[j].Position.Y {
				vertices[i], vertices[j] = vertices[j], vertices[i]
			}
		}
	}

	var ya, yb, yc float32 = vertices[0].Position.Y, vertices[1].Position.Y, vertices[2].Position.Y
	var a, b, c fragment = newFragment(vertices[0]), newFragment(vertices[1]), newFragment(vertices[2])

	var dAB, dAC, dBC fragment = slope(a, b, ya, yb), slope(a, c, ya, yc), slope(b, c, yb, yc)

	// The short edges are on the left when b lies left of the long edge.
	var shortIsLeft bool = b.X < a.X+dAC.X*(yb-ya)

	var top float32 = max(math32.Ceil(ya), float32(r.bounds.Min.Y))
	var bottom float32 = min(math32.Ceil(yc), float32(r.bounds.Max.Y))

	if !(top < bottom) {
		return
	}

	for y := int(top); y < int(bottom); y++ {
		var row float32 = float32(y)
		var long fragment = a.Add(dAC.Scale(row - ya))
		var short fragment

		if row < yb {
			short = a.Add(dAB.Scale(row - ya))
		} else {
			short = b.Add(dBC.Scale(row - yb))
		}

		if shortIsLeft {
			r.span(y, short, long)
		} else {
			r.span(y, long, short)
		}
	}
}

// span fills row y from left to right, clamped to the viewport. Rows whose
// edges overflowed to NaN are skipped.
func (r *rasterizer) span(y int, left, right fragment) {
	if !(right.X > left.X) {
		return
	}

	var step fragment = right.Sub(left).Scale(1 / (right.X - left.X))

	var start float32 = max(math32.Ceil(left.X), float32(r.bounds.Min.X))
	var end float32 = min(math32.Ceil(right.X), float32(r.bounds.Max.X))

	if !(start < end) {
		return
	}

	var f fragment = left.Add(step.Scale(start - left.X))

	for x := int(start); x < int(end); x++ {
		r.plot(x, y, &f)
		f = f.Add(step)
	}
}

func (r *rasterizer) plot(x, y int, f *fragment) {
	if r.ctx.depthTest && !r.depth.Test(x, y, DepthValue(f.Z), r.ctx.depthFunc) {
		r.stats.DepthFailed++
		return
	}

	r.color.SetRGBA(x, y, r.shade(f).RGBA())
	r.stats.Pixels++
}
