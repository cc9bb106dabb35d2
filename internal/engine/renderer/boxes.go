package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/tankterrain/internal/engine/primitive"
	"github.com/Faultbox/tankterrain/internal/engine/renderer/shaders"
	"github.com/Faultbox/tankterrain/internal/engine/shader"
	"github.com/Faultbox/tankterrain/pkg/math"
)

// Box is a unit cube placed by Model.
type Box struct {
	Model math.Mat4
	Color [3]float32
}

// BoxRenderer draws flat-shaded boxes from one shared cube mesh.
type BoxRenderer struct {
	program    *shader.Program
	vao, vbo   uint32
	ebo        uint32
	indexCount int32
}

// NewBoxRenderer compiles the solid program and uploads the cube.
func NewBoxRenderer() (*BoxRenderer, error) {
	program, err := shader.New(shaders.SolidVertexShader, shaders.SolidFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("solid shader: %w", err)
	}
	br := &BoxRenderer{program: program}

	vertices, indices := primitive.Cube()
	br.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &br.vao)
	gl.BindVertexArray(br.vao)

	gl.GenBuffers(1, &br.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, br.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	const stride = 6 * 4
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &br.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, br.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return br, nil
}

// Render draws every box.
func (br *BoxRenderer) Render(boxes []Box, view, projection math.Mat4, light Light) {
	p := br.program
	p.Use()
	p.SetMat4("uView", view)
	p.SetMat4("uProjection", projection)
	light.apply(p)

	gl.BindVertexArray(br.vao)
	for _, b := range boxes {
		p.SetMat4("uModel", b.Model)
		p.SetVec3("uColor", b.Color)
		gl.DrawElements(gl.TRIANGLES, br.indexCount, gl.UNSIGNED_SHORT, nil)
	}
	gl.BindVertexArray(0)
}

// Destroy releases all GPU resources.
func (br *BoxRenderer) Destroy() {
	gl.DeleteVertexArrays(1, &br.vao)
	gl.DeleteBuffers(1, &br.vbo)
	gl.DeleteBuffers(1, &br.ebo)
	br.program.Delete()
}
