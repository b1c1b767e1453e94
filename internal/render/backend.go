// Package render defines the minimal graphics contract the game draws
// through and the pipeline that sets it up. Drivers live in subpackages.
package render

import "github.com/vovakirdan/brick-breaker/internal/core"

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns a human-readable name for the stage.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Shader, Program and Buffer are opaque handles issued by a Backend.
// The zero value of each is never issued and means "none".
type (
	Shader  uint32
	Program uint32
	Buffer  uint32
)

// Backend is the graphics contract the game consumes. Implementations are
// not required to be safe for concurrent use; the game loop calls them from
// a single goroutine.
type Backend interface {
	// CompileShader compiles one stage. Invalid source yields a *CompileError.
	CompileShader(stage ShaderStage, source string) (Shader, error)

	// LinkProgram links a vertex and a fragment shader. Incompatible or
	// mis-staged shaders yield a *LinkError.
	LinkProgram(vs, fs Shader) (Program, error)

	// UseProgram binds the program for subsequent uniform and draw calls.
	UseProgram(p Program)

	BufferFactory

	// SetUniform sets a float uniform (1 to 4 components) on the bound
	// program. Unknown names are silently ignored.
	SetUniform(name string, values ...float32)

	// Clear fills the framebuffer with a color.
	Clear(c core.Color)

	// DrawTriangles submits vertexCount vertices from the buffer as a
	// triangle list using the bound program.
	DrawTriangles(b Buffer, vertexCount int)
}

// BufferFactory is the part of Backend that owns vertex buffers. Entity
// geometry only needs this much.
type BufferFactory interface {
	// CreateVertexBuffer uploads a flat x, y list and returns its handle.
	CreateVertexBuffer(vertices []float32) Buffer

	// DeleteBuffer releases a buffer. Deleting the zero handle or an
	// unknown handle is a no-op.
	DeleteBuffer(b Buffer)
}
