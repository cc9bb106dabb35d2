package renderer

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tankterrain/internal/engine/renderer/shaders"
	"github.com/Faultbox/tankterrain/internal/engine/shader"
	"github.com/Faultbox/tankterrain/internal/engine/terrain"
	"github.com/Faultbox/tankterrain/internal/engine/texture"
	"github.com/Faultbox/tankterrain/pkg/math"
)

// TerrainRenderer draws the terrain strip with a repeating ground texture.
type TerrainRenderer struct {
	program *shader.Program
	log     *zap.Logger

	vao, vbo, ebo uint32
	groundTex     uint32

	indexCount int32
	indexType  uint32
	world      math.Mat4
}

// NewTerrainRenderer compiles the terrain program.
func NewTerrainRenderer(log *zap.Logger) (*TerrainRenderer, error) {
	program, err := shader.New(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	return &TerrainRenderer{program: program, log: log}, nil
}

// Upload replaces the GPU copy of the terrain.
func (tr *TerrainRenderer) Upload(data terrain.RenderData, ground image.Image) error {
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return errors.New("terrain has no geometry")
	}
	tr.clear()

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*vertexSize, unsafe.Pointer(&data.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	indexBytes := len(data.Indices) * data.IndexFormat.Size()
	if data.IndexFormat == terrain.Index16 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBytes, unsafe.Pointer(&data.Indices16[0]), gl.STATIC_DRAW)
		tr.indexType = gl.UNSIGNED_SHORT
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBytes, unsafe.Pointer(&data.Indices[0]), gl.STATIC_DRAW)
		tr.indexType = gl.UNSIGNED_INT
	}
	tr.indexCount = int32(len(data.Indices))
	tr.world = data.World

	gl.BindVertexArray(0)

	tr.groundTex = uploadTexture(texture.ImageToRGBA(ground))

	tr.log.Info("terrain uploaded",
		zap.Int("vertices", len(data.Vertices)),
		zap.Int32("indices", tr.indexCount),
		zap.Stringer("index_format", data.IndexFormat))
	return nil
}

func uploadTexture(img *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return id
}

// Render draws the strip. It is a no-op before the first Upload.
func (tr *TerrainRenderer) Render(view, projection math.Mat4, light Light) {
	if tr.vao == 0 {
		return
	}

	p := tr.program
	p.Use()
	p.SetMat4("uWorld", tr.world)
	p.SetMat4("uView", view)
	p.SetMat4("uProjection", projection)
	light.apply(p)
	gl.Uniform3f(p.Uniform("uFogColor"), clearColor[0], clearColor[1], clearColor[2])
	gl.Uniform1f(p.Uniform("uFogFar"), light.FogFar)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.groundTex)
	p.SetInt("uTexture", 0)

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLE_STRIP, tr.indexCount, tr.indexType, nil)
	gl.BindVertexArray(0)
}

func (tr *TerrainRenderer) clear() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
	if tr.groundTex != 0 {
		gl.DeleteTextures(1, &tr.groundTex)
		tr.groundTex = 0
	}
}

// Destroy releases all GPU resources.
func (tr *TerrainRenderer) Destroy() {
	tr.clear()
	tr.program.Delete()
}
