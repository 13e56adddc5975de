package polycore

import "fmt"

// PrimitiveType selects how a draw call groups vertex references into
// triangles.
type PrimitiveType int

const (
	TriangleList PrimitiveType = iota
	TriangleStrip
	TriangleFan
)

func (p PrimitiveType) String() string {
	switch p {
	case TriangleList:
		return "TriangleList"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	}

	return fmt.Sprintf("PrimitiveType(%d)", int(p))
}

// references returns how many vertex references count triangles consume
// starting at start.
func (p PrimitiveType) references(start, count int) int {
	if count <= 0 {
		return 0
	}

	switch p {
	case TriangleList:
		return start + count*3
	default:
		return start + count + 2
	}
}

type CullMode int

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

func (c CullMode) String() string {
	switch c {
	case CullNone:
		return "None"
	case CullFront:
		return "Front"
	case CullBack:
		return "Back"
	case CullFrontAndBack:
		return "FrontAndBack"
	}

	return fmt.Sprintf("CullMode(%d)", int(c))
}

// DepthFunction compares an incoming depth value against the stored one.
type DepthFunction int

const (
	DepthNever DepthFunction = iota
	DepthLess
	DepthEqual
	DepthLessEqual
	DepthGreater
	DepthNotEqual
	DepthGreaterEqual
	DepthAlways
)

var depthFunctionNames = [...]string{
	DepthNever:        "Never",
	DepthLess:         "Less",
	DepthEqual:        "Equal",
	DepthLessEqual:    "LessEqual",
	DepthGreater:      "Greater",
	DepthNotEqual:     "NotEqual",
	DepthGreaterEqual: "GreaterEqual",
	DepthAlways:       "Always",
}

func (d DepthFunction) String() string {
	if d >= 0 && int(d) < len(depthFunctionNames) {
		return depthFunctionNames[d]
	}

	return fmt.Sprintf("DepthFunction(%d)", int(d))
}

// Compare reports whether value passes against stored.
func (d DepthFunction) Compare(value, stored uint16) bool {
	switch d {
	case DepthLess:
		return value < stored
	case DepthEqual:
		return value == stored
	case DepthLessEqual:
		return value <= stored
	case DepthGreater:
		return value > stored
	case DepthNotEqual:
		return value != stored
	case DepthGreaterEqual:
		return value >= stored
	case DepthAlways:
		return true
	}

	return false
}

// ClearFlags selects the surfaces Clear resets.
type ClearFlags uint8

const (
	ClearColor ClearFlags = 1 << iota
	ClearDepth
)

type ShadeMode int

const (
	ShadeFlat ShadeMode = iota
	ShadeSmooth
)

// MaterialSource decides whether lighting reads diffuse and specular colors
// from the bound Material or from each Vertex.
type MaterialSource int

const (
	SourceMaterial MaterialSource = iota
	SourceVertex
)

type LightType int

const (
	LightPoint LightType = iota
	LightSpot
	LightDirectional
)

func (l LightType) String() string {
	switch l {
	case LightPoint:
		return "Point"
	case LightSpot:
		return "Spot"
	case LightDirectional:
		return "Directional"
	}

	return fmt.Sprintf("LightType(%d)", int(l))
}

// Quirks re-enables behaviors of the engine this rasterizer descends from, for
// callers that need its exact output.
type Quirks uint8

const (
	// QuirkCrossLightVector derives point and spot light vectors from the
	// cross product of the camera-space vertex and light positions.
	QuirkCrossLightVector Quirks = 1 << iota

	// QuirkYOrderCulling classifies winding from the y order of the vertices
	// instead of the signed screen area.
	QuirkYOrderCulling
)

func (q Quirks) Has(flag Quirks) bool {
	return q&flag != 0
}
