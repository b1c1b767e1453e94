package render

import (
	_ "embed"
)

// Names declared by the embedded shaders.
const (
	AttributePosition = "a_position"
	UniformResolution = "u_resolution"
	UniformColor      = "u_color"
)

// VertexSource maps playfield pixels (origin top-left) to clip space.
//
//go:embed shaders/vertex.glsl
var VertexSource string

// FragmentSource fills every fragment with the u_color uniform.
//
//go:embed shaders/fragment.glsl
var FragmentSource string
