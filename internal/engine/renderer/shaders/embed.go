// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for the textured ground.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for the textured ground.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// SolidVertexShader is the vertex shader for flat-colored boxes.
//
//go:embed solid.vert
var SolidVertexShader string

// SolidFragmentShader is the fragment shader for flat-colored boxes.
//
//go:embed solid.frag
var SolidFragmentShader string
