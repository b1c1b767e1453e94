// Package record is a headless render.Backend that records every draw
// instead of producing pixels. Tests and the trace command inspect what the
// game submitted frame by frame.
package record

import (
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/registry"
	"github.com/vovakirdan/brick-breaker/internal/render"
)

// DrawCall is one submitted triangle-list draw.
type DrawCall struct {
	Buffer      render.Buffer
	Color       core.Color
	VertexCount int
}

// Frame holds the draws between two Clear calls.
type Frame struct {
	Clear core.Color
	Draws []DrawCall
}

// Stats counts driver calls since creation.
type Stats struct {
	ShadersCompiled int
	ProgramsLinked  int
	BuffersCreated  int
	BuffersDeleted  int
	DrawCalls       int
	Frames          int
}

type program struct {
	iface    render.ProgramInterface
	uniforms map[string][]float32
}

// Backend records draws. It is not safe for concurrent use.
type Backend struct {
	frameLimit int
	frames     []Frame

	stages   map[render.Shader]render.StageInterface
	programs map[render.Program]*program
	buffers  map[render.Buffer][]float32
	current  *program
	nextID   uint32
	stats    Stats
}

// Option configures a Backend.
type Option func(*Backend)

// WithFrameLimit keeps only the most recent n frames. n <= 0 keeps all.
func WithFrameLimit(n int) Option {
	return func(b *Backend) {
		b.frameLimit = n
	}
}

// New creates a recording backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		stages:   make(map[render.Shader]render.StageInterface),
		programs: make(map[render.Program]*program),
		buffers:  make(map[render.Buffer][]float32),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Backend) id() uint32 {
	b.nextID++
	return b.nextID
}

// CompileShader checks the source the same way the raster driver does.
func (b *Backend) CompileShader(stage render.ShaderStage, source string) (render.Shader, error) {
	iface, err := render.ParseStage(stage, source)
	if err != nil {
		return 0, &render.CompileError{Stage: stage, Log: err.Error()}
	}
	h := render.Shader(b.id())
	b.stages[h] = iface
	b.stats.ShadersCompiled++
	return h, nil
}

// LinkProgram links two compiled stages.
func (b *Backend) LinkProgram(vs, fs render.Shader) (render.Program, error) {
	v, okV := b.stages[vs]
	f, okF := b.stages[fs]
	if !okV || !okF {
		return 0, &render.LinkError{Log: "shader handle is not compiled"}
	}
	iface, err := render.LinkStages(v, f)
	if err != nil {
		return 0, &render.LinkError{Log: err.Error()}
	}
	h := render.Program(b.id())
	b.programs[h] = &program{iface: iface, uniforms: make(map[string][]float32)}
	b.stats.ProgramsLinked++
	return h, nil
}

// UseProgram binds a linked program. Unknown handles unbind.
func (b *Backend) UseProgram(p render.Program) {
	b.current = b.programs[p]
}

// CreateVertexBuffer stores a copy of the vertices.
func (b *Backend) CreateVertexBuffer(vertices []float32) render.Buffer {
	data := make([]float32, len(vertices))
	copy(data, vertices)
	h := render.Buffer(b.id())
	b.buffers[h] = data
	b.stats.BuffersCreated++
	return h
}

// DeleteBuffer forgets a buffer.
func (b *Backend) DeleteBuffer(buf render.Buffer) {
	if _, ok := b.buffers[buf]; !ok {
		return
	}
	delete(b.buffers, buf)
	b.stats.BuffersDeleted++
}

// Vertices returns the data uploaded for a live buffer.
func (b *Backend) Vertices(buf render.Buffer) ([]float32, bool) {
	v, ok := b.buffers[buf]
	return v, ok
}

// LiveBuffers returns the number of buffers not yet deleted.
func (b *Backend) LiveBuffers() int {
	return len(b.buffers)
}

// SetUniform stores a declared uniform on the bound program.
func (b *Backend) SetUniform(name string, values ...float32) {
	if b.current == nil {
		return
	}
	typ, ok := b.current.iface.Uniforms[name]
	if !ok || render.ComponentCount(typ) != len(values) {
		return
	}
	v := make([]float32, len(values))
	copy(v, values)
	b.current.uniforms[name] = v
}

// Uniform returns a uniform value of the bound program.
func (b *Backend) Uniform(name string) []float32 {
	if b.current == nil {
		return nil
	}
	return b.current.uniforms[name]
}

// Clear starts a new frame.
func (b *Backend) Clear(c core.Color) {
	b.frames = append(b.frames, Frame{Clear: c})
	if b.frameLimit > 0 && len(b.frames) > b.frameLimit {
		n := copy(b.frames, b.frames[len(b.frames)-b.frameLimit:])
		b.frames = b.frames[:n]
	}
	b.stats.Frames++
}

// DrawTriangles records the draw with the bound color. Draws before the
// first Clear open an implicit frame.
func (b *Backend) DrawTriangles(buf render.Buffer, vertexCount int) {
	b.stats.DrawCalls++
	if len(b.frames) == 0 {
		b.frames = append(b.frames, Frame{})
	}
	call := DrawCall{Buffer: buf, VertexCount: vertexCount}
	if b.current != nil {
		if c := b.current.uniforms[render.UniformColor]; len(c) == 4 {
			call.Color = core.RGBA(c[0], c[1], c[2], c[3])
		}
	}
	last := &b.frames[len(b.frames)-1]
	last.Draws = append(last.Draws, call)
}

// Frames returns the retained frames, oldest first.
func (b *Backend) Frames() []Frame {
	return b.frames
}

// LastFrame returns the most recent frame.
func (b *Backend) LastFrame() (Frame, bool) {
	if len(b.frames) == 0 {
		return Frame{}, false
	}
	return b.frames[len(b.frames)-1], true
}

// Stats returns call counters.
func (b *Backend) Stats() Stats {
	return b.stats
}

func init() {
	registry.Register("record", "headless driver that records draw calls", func(_, _ int) render.Backend {
		return New(WithFrameLimit(1))
	})
}
