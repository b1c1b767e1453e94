package render

import (
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Pipeline is the linked flat-color program bound on a Backend. All entity
// draws go through it.
type Pipeline struct {
	backend Backend
	program Program
	width   float32
	height  float32
}

// NewPipeline compiles and links the embedded shaders, binds the program and
// sets the viewport resolution to the playfield size. Compile and link
// failures are fatal for the caller: retrying cannot fix a broken shader.
func NewPipeline(b Backend, width, height float64) (*Pipeline, error) {
	return NewPipelineFromSource(b, VertexSource, FragmentSource, width, height)
}

// NewPipelineFromSource is NewPipeline with caller-supplied shader sources.
func NewPipelineFromSource(b Backend, vertexSrc, fragmentSrc string, width, height float64) (*Pipeline, error) {
	vs, err := b.CompileShader(StageVertex, vertexSrc)
	if err != nil {
		return nil, fmt.Errorf("render: vertex stage: %w", err)
	}
	fs, err := b.CompileShader(StageFragment, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("render: fragment stage: %w", err)
	}
	program, err := b.LinkProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("render: link: %w", err)
	}

	p := &Pipeline{
		backend: b,
		program: program,
		width:   float32(width),
		height:  float32(height),
	}
	b.UseProgram(program)
	b.SetUniform(UniformResolution, p.width, p.height)
	return p, nil
}

// Backend returns the backend the pipeline draws on.
func (p *Pipeline) Backend() Backend {
	return p.backend
}

// Program returns the linked program handle.
func (p *Pipeline) Program() Program {
	return p.program
}

// Clear fills the framebuffer.
func (p *Pipeline) Clear(c core.Color) {
	p.backend.Clear(c)
}

// Draw submits one entity: a triangle list of vertexCount vertices filled
// with a single color.
func (p *Pipeline) Draw(buf Buffer, c core.Color, vertexCount int) {
	p.backend.SetUniform(UniformColor, c.R, c.G, c.B, c.A)
	p.backend.DrawTriangles(buf, vertexCount)
}
