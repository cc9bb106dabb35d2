// Package renderer draws the terrain and vehicles with OpenGL 4.1.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tankterrain/internal/engine/lighting"
	"github.com/Faultbox/tankterrain/internal/engine/shader"
	"github.com/Faultbox/tankterrain/internal/engine/terrain"
	"github.com/Faultbox/tankterrain/internal/logger"
	"github.com/Faultbox/tankterrain/pkg/math"
)

var clearColor = [3]float32{0.62, 0.74, 0.86}

// Light is a single directional light plus fog distance.
type Light struct {
	Direction [3]float32
	Ambient   [3]float32
	Diffuse   [3]float32
	FogFar    float32
}

// DefaultLight is a late-afternoon sun.
func DefaultLight() Light {
	return Light{
		Direction: lighting.SunDirection(220, 50),
		Ambient:   [3]float32{0.35, 0.35, 0.4},
		Diffuse:   [3]float32{0.75, 0.72, 0.65},
		FogFar:    900,
	}
}

func (l Light) apply(p *shader.Program) {
	p.SetVec3("uLightDir", l.Direction)
	p.SetVec3("uAmbient", l.Ambient)
	p.SetVec3("uDiffuse", l.Diffuse)
}

// Renderer owns GL state and the scene's draw passes.
type Renderer struct {
	Light Light

	log     *zap.Logger
	terrain *TerrainRenderer
	boxes   *BoxRenderer
}

// New loads GL function pointers and builds the draw passes.
// It must be called after the window's GL context exists.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	r := &Renderer{
		Light: DefaultLight(),
		log:   logger.Named("renderer"),
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], 1)
	gl.Viewport(0, 0, int32(width), int32(height))

	var err error
	if r.terrain, err = NewTerrainRenderer(r.log); err != nil {
		return nil, err
	}
	if r.boxes, err = NewBoxRenderer(); err != nil {
		r.terrain.Destroy()
		return nil, err
	}
	return r, nil
}

// LoadTerrain uploads terrain geometry and its ground texture.
func (r *Renderer) LoadTerrain(data terrain.RenderData, ground image.Image) error {
	return r.terrain.Upload(data, ground)
}

// Resize matches the GL viewport to a new drawable size.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// Draw clears the frame and renders the terrain and boxes.
func (r *Renderer) Draw(view, projection math.Mat4, boxes []Box) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// Strip triangles wind clockwise when seen from above.
	gl.FrontFace(gl.CW)
	r.terrain.Render(view, projection, r.Light)
	gl.FrontFace(gl.CCW)

	r.boxes.Render(boxes, view, projection, r.Light)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.terrain.Destroy()
	r.boxes.Destroy()
}
