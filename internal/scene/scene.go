// Package scene describes a camera, lights, material and render state in YAML
// and applies them to a polycore.Device.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"polycore"
	"polycore/vecmath"
)

// ErrUnknownValue reports an enumeration name the scene file does not
// recognize.
var ErrUnknownValue = errors.New("scene: unknown value")

// Scene is the decoded scene file. Angles are in degrees.
type Scene struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Mesh is resolved relative to the scene file.
	Mesh string `yaml:"mesh"`

	ClearColor Color   `yaml:"clear_color"`
	ClearDepth float32 `yaml:"clear_depth"`

	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`
	Model      Transform  `yaml:"model"`
	Material   Material   `yaml:"material"`

	Lighting bool    `yaml:"lighting"`
	Ambient  Color   `yaml:"ambient"`
	Lights   []Light `yaml:"lights"`

	Render Render   `yaml:"render"`
	Quirks []string `yaml:"quirks"`

	texture *polycore.Texture
	quirks  polycore.Quirks
}

type Camera struct {
	Eye Vec3 `yaml:"eye"`
	At  Vec3 `yaml:"at"`
	Up  Vec3 `yaml:"up"`
}

type Projection struct {
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// Transform is applied as scale, then rotation about x, y and z, then
// translation. Spin adds to the y rotation every frame.
type Transform struct {
	Scale       Vec3    `yaml:"scale"`
	Rotation    Vec3    `yaml:"rotation"`
	Translation Vec3    `yaml:"translation"`
	Spin        float32 `yaml:"spin"`
}

type Material struct {
	Source   string  `yaml:"source"`
	Diffuse  Color   `yaml:"diffuse"`
	Ambient  Color   `yaml:"ambient"`
	Specular Color   `yaml:"specular"`
	Emissive Color   `yaml:"emissive"`
	Power    float32 `yaml:"power"`
}

type Light struct {
	Type      string  `yaml:"type"`
	Diffuse   Color   `yaml:"diffuse"`
	Specular  Color   `yaml:"specular"`
	Ambient   Color   `yaml:"ambient"`
	Position  Vec3    `yaml:"position"`
	Direction Vec3    `yaml:"direction"`
	Range     float32 `yaml:"range"`
	Falloff   float32 `yaml:"falloff"`

	// Attenuation holds the constant, linear and quadratic coefficients.
	Attenuation [3]float32 `yaml:"attenuation"`

	Theta float32 `yaml:"theta"`
	Phi   float32 `yaml:"phi"`
}

type Render struct {
	Shade     string `yaml:"shade"`
	Cull      string `yaml:"cull"`
	DepthTest bool   `yaml:"depth_test"`
	DepthFunc string `yaml:"depth_func"`
	Texture   string `yaml:"texture"`
	Blend     bool   `yaml:"blend"`
}

// Default returns the stock scene: a model scaled by 3 and spun about y, seen
// from (0, 3, 5) through a 45 degree lens, lit by one white directional light
// pointing down -z over a 0x202020 ambient term.
func Default() *Scene {
	return &Scene{
		Width:      300,
		Height:     300,
		ClearColor: Color{0, 0, 0, 255},
		ClearDepth: 1,
		Camera: Camera{
			Eye: Vec3{0, 3, 5},
			Up:  Vec3{0, 1, 0},
		},
		Projection: Projection{FOV: 45, Near: 1, Far: 100},
		Model: Transform{
			Scale: Vec3{3, 3, 3},
			Spin:  5,
		},
		Material: Material{
			Source:  "material",
			Diffuse: Color{255, 255, 255, 255},
			Ambient: Color{255, 255, 255, 255},
		},
		Lighting: true,
		Ambient:  Color{0x20, 0x20, 0x20, 255},
		Lights: []Light{{
			Type:        "directional",
			Diffuse:     Color{255, 255, 255, 255},
			Direction:   Vec3{0, 0, -1},
			Range:       1000,
			Attenuation: [3]float32{1, 0, 0},
		}},
		Render: Render{
			Shade:     "smooth",
			Cull:      "none",
			DepthTest: true,
			DepthFunc: "less_equal",
		},
	}
}

// Load reads a scene file. Fields it omits keep the values of Default.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	scene, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}

	return scene, nil
}

// Parse decodes a scene. Relative mesh and texture paths are resolved against
// dir, and the texture is loaded.
func Parse(data []byte, dir string) (*Scene, error) {
	var scene *Scene = Default()

	if err := yaml.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}

	if scene.Width <= 0 || scene.Height <= 0 {
		return nil, fmt.Errorf("size %dx%d: %w", scene.Width, scene.Height, polycore.ErrInvalidSize)
	}

	if len(scene.Lights) > polycore.MaxLights {
		return nil, fmt.Errorf("%d lights, at most %d supported", len(scene.Lights), polycore.MaxLights)
	}

	if err := scene.validate(); err != nil {
		return nil, err
	}

	if scene.Mesh != "" && !filepath.IsAbs(scene.Mesh) {
		scene.Mesh = filepath.Join(dir, scene.Mesh)
	}

	if scene.Render.Texture != "" {
		var path string = scene.Render.Texture
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}

		texture, err := polycore.LoadTexture(path)
		if err != nil {
			return nil, err
		}

		scene.texture = texture
	}

	return scene, nil
}

// validate resolves every enumeration name once so Apply cannot fail on them,
// and gives lights without attenuation coefficients a constant 1.
func (scene *Scene) validate() error {
	if _, err := lookup("material source", materialSources, scene.Material.Source); err != nil {
		return err
	}

	if _, err := lookup("shade mode", shadeModes, scene.Render.Shade); err != nil {
		return err
	}

	if _, err := lookup("cull mode", cullModes, scene.Render.Cull); err != nil {
		return err
	}

	if _, err := lookup("depth function", depthFunctions, scene.Render.DepthFunc); err != nil {
		return err
	}

	for index := range scene.Lights {
		var light *Light = &scene.Lights[index]

		if _, err := lookup("light type", lightTypes, light.Type); err != nil {
			return fmt.Errorf("light %d: %w", index, err)
		}

		if light.Attenuation == ([3]float32{}) {
			light.Attenuation[0] = 1
		}
	}

	scene.quirks = 0

	for _, name := range scene.Quirks {
		quirk, err := lookup("quirk", quirks, name)
		if err != nil {
			return err
		}

		scene.quirks |= quirk
	}

	return nil
}

// Options returns the device options the scene implies.
func (scene *Scene) Options() []polycore.Option {
	return []polycore.Option{
		polycore.WithClearColor(scene.ClearColor.RGBA()),
		polycore.WithClearDepth(scene.ClearDepth),
		polycore.WithQuirks(scene.quirks),
	}
}

// Texture returns the texture named by the scene, or nil.
func (scene *Scene) Texture() *polycore.Texture {
	return scene.texture
}

func radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}

// ModelMatrix returns the model transform at the given frame.
func (scene *Scene) ModelMatrix(frame int) vecmath.Matrix {
	var transform Transform = scene.Model
	var rotation Vec3 = transform.Rotation
	rotation[1] += transform.Spin * float32(frame)

	return vecmath.Scaling(transform.Scale[0], transform.Scale[1], transform.Scale[2]).
		Multiply(vecmath.RotationX(radians(rotation[0]))).
		Multiply(vecmath.RotationY(radians(rotation[1]))).
		Multiply(vecmath.RotationZ(radians(rotation[2]))).
		Multiply(vecmath.Translation(transform.Translation[0], transform.Translation[1], transform.Translation[2]))
}

// Apply sets the transforms, material, lights and render state of device for
// the given frame.
func (scene *Scene) Apply(device *polycore.Device, frame int) {
	var aspect float32 = float32(device.Width()) / float32(device.Height())

	device.Model = scene.ModelMatrix(frame)
	device.View = vecmath.LookAt(scene.Camera.Eye.Vector3(), scene.Camera.At.Vector3(), scene.Camera.Up.Vector3())
	device.Projection = vecmath.PerspectiveFOV(radians(scene.Projection.FOV), aspect, scene.Projection.Near, scene.Projection.Far)

	device.Material = polycore.Material{
		Diffuse:  scene.Material.Diffuse.RGBA(),
		Ambient:  scene.Material.Ambient.RGBA(),
		Specular: scene.Material.Specular.RGBA(),
		Emissive: scene.Material.Emissive.RGBA(),
		Power:    scene.Material.Power,
	}
	device.MaterialSource, _ = lookup("material source", materialSources, scene.Material.Source)

	device.LightingEnabled = scene.Lighting
	device.AmbientLight = scene.Ambient.RGBA()
	device.Lights = [polycore.MaxLights]polycore.Light{}

	for index, light := range scene.Lights {
		lightType, _ := lookup("light type", lightTypes, light.Type)

		device.Lights[index] = polycore.Light{
			Enabled:      true,
			Type:         lightType,
			Diffuse:      light.Diffuse.RGBA(),
			Specular:     light.Specular.RGBA(),
			Ambient:      light.Ambient.RGBA(),
			Position:     light.Position.Vector3(),
			Direction:    light.Direction.Vector3(),
			Range:        light.Range,
			Falloff:      light.Falloff,
			Attenuation0: light.Attenuation[0],
			Attenuation1: light.Attenuation[1],
			Attenuation2: light.Attenuation[2],
			Theta:        radians(light.Theta),
			Phi:          radians(light.Phi),
		}
	}

	device.ShadeMode, _ = lookup("shade mode", shadeModes, scene.Render.Shade)

	cull, _ := lookup("cull mode", cullModes, scene.Render.Cull)
	device.CullEnabled = cull != polycore.CullNone
	device.CullMode = cull

	device.DepthTestEnabled = scene.Render.DepthTest
	device.DepthFunc, _ = lookup("depth function", depthFunctions, scene.Render.DepthFunc)

	device.Texture = scene.texture
	device.TextureEnabled = scene.texture != nil
	device.BlendVertexColor = scene.Render.Blend

	device.ClearColor = scene.ClearColor.RGBA()
	device.ClearDepth = scene.ClearDepth
}

var (
	materialSources = map[string]polycore.MaterialSource{
		"material": polycore.SourceMaterial,
		"vertex":   polycore.SourceVertex,
	}
	shadeModes = map[string]polycore.ShadeMode{
		"flat":   polycore.ShadeFlat,
		"smooth": polycore.ShadeSmooth,
	}
	cullModes = map[string]polycore.CullMode{
		"none":           polycore.CullNone,
		"front":          polycore.CullFront,
		"back":           polycore.CullBack,
		"front_and_back": polycore.CullFrontAndBack,
	}
	depthFunctions = map[string]polycore.DepthFunction{
		"never":         polycore.DepthNever,
		"less":          polycore.DepthLess,
		"equal":         polycore.DepthEqual,
		"less_equal":    polycore.DepthLessEqual,
		"greater":       polycore.DepthGreater,
		"not_equal":     polycore.DepthNotEqual,
		"greater_equal": polycore.DepthGreaterEqual,
		"always":        polycore.DepthAlways,
	}
	lightTypes = map[string]polycore.LightType{
		"point":       polycore.LightPoint,
		"spot":        polycore.LightSpot,
		"directional": polycore.LightDirectional,
	}
	quirks = map[string]polycore.Quirks{
		"cross_light_vector": polycore.QuirkCrossLightVector,
		"y_order_culling":    polycore.QuirkYOrderCulling,
	}
)

func lookup[T any](kind string, names map[string]T, name string) (T, error) {
	value, ok := names[strings.ToLower(name)]
	if !ok {
		return value, fmt.Errorf("%s %q: %w", kind, name, ErrUnknownValue)
	}

	return value, nil
}
