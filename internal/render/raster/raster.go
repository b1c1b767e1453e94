// Package raster is a software render.Backend. It rasterizes flat-colored
// triangle lists into an in-memory RGBA framebuffer, so the game can run and
// be inspected without a GPU.
package raster

import (
	"image"
	"image/color"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/registry"
	"github.com/vovakirdan/brick-breaker/internal/render"
)

type shader struct {
	iface render.StageInterface
}

type program struct {
	iface    render.ProgramInterface
	uniforms map[string][]float32
}

// Backend rasterizes into an *image.RGBA. It is not safe for concurrent use.
type Backend struct {
	fb *image.RGBA

	shaders  map[render.Shader]*shader
	programs map[render.Program]*program
	buffers  map[render.Buffer][]float32
	nextID   uint32
	current  *program

	// DrawCalls counts submitted draws since creation.
	DrawCalls int
}

// New creates a backend with a width x height framebuffer.
func New(width, height int) *Backend {
	return &Backend{
		fb:       image.NewRGBA(image.Rect(0, 0, width, height)),
		shaders:  make(map[render.Shader]*shader),
		programs: make(map[render.Program]*program),
		buffers:  make(map[render.Buffer][]float32),
	}
}

func (b *Backend) id() uint32 {
	b.nextID++
	return b.nextID
}

// CompileShader validates the source and records its interface.
func (b *Backend) CompileShader(stage render.ShaderStage, source string) (render.Shader, error) {
	iface, err := render.ParseStage(stage, source)
	if err != nil {
		return 0, &render.CompileError{Stage: stage, Log: err.Error()}
	}
	h := render.Shader(b.id())
	b.shaders[h] = &shader{iface: iface}
	return h, nil
}

// LinkProgram links two compiled stages. Beyond the generic checks, this
// driver needs a vec2 position attribute since it feeds vertices by name.
func (b *Backend) LinkProgram(vs, fs render.Shader) (render.Program, error) {
	v, ok := b.shaders[vs]
	if !ok {
		return 0, &render.LinkError{Log: "vertex shader handle is not compiled"}
	}
	f, ok := b.shaders[fs]
	if !ok {
		return 0, &render.LinkError{Log: "fragment shader handle is not compiled"}
	}
	iface, err := render.LinkStages(v.iface, f.iface)
	if err != nil {
		return 0, &render.LinkError{Log: err.Error()}
	}
	if typ := iface.Attributes[render.AttributePosition]; typ != "vec2" {
		return 0, &render.LinkError{Log: "program needs attribute vec2 " + render.AttributePosition}
	}
	h := render.Program(b.id())
	b.programs[h] = &program{iface: iface, uniforms: make(map[string][]float32)}
	return h, nil
}

// UseProgram binds a linked program. Unknown handles unbind.
func (b *Backend) UseProgram(p render.Program) {
	b.current = b.programs[p]
}

// CreateVertexBuffer copies the vertices into driver memory.
func (b *Backend) CreateVertexBuffer(vertices []float32) render.Buffer {
	data := make([]float32, len(vertices))
	copy(data, vertices)
	h := render.Buffer(b.id())
	b.buffers[h] = data
	return h
}

// DeleteBuffer frees a buffer.
func (b *Backend) DeleteBuffer(buf render.Buffer) {
	delete(b.buffers, buf)
}

// LiveBuffers returns the number of buffers not yet deleted.
func (b *Backend) LiveBuffers() int {
	return len(b.buffers)
}

// SetUniform stores a uniform on the bound program if it declares one of
// that name with a matching component count.
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

// Clear fills the framebuffer.
func (b *Backend) Clear(c core.Color) {
	r, g, bl, a := c.Bytes()
	px := color.RGBA{R: r, G: g, B: bl, A: a}
	pix := b.fb.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = px.R
		pix[i+1] = px.G
		pix[i+2] = px.B
		pix[i+3] = px.A
	}
}

// DrawTriangles rasterizes complete triangles from the buffer. Calls
// without a bound program, with an unknown buffer or with an unset
// resolution draw nothing.
func (b *Backend) DrawTriangles(buf render.Buffer, vertexCount int) {
	b.DrawCalls++
	if b.current == nil {
		return
	}
	data, ok := b.buffers[buf]
	if !ok {
		return
	}
	res := b.current.uniforms[render.UniformResolution]
	if len(res) != 2 || res[0] == 0 || res[1] == 0 {
		return
	}

	fill := color.RGBA{}
	if c := b.current.uniforms[render.UniformColor]; len(c) == 4 {
		fill.R, fill.G, fill.B, fill.A = core.RGBA(c[0], c[1], c[2], c[3]).Bytes()
	}

	if avail := len(data) / 2; vertexCount > avail {
		vertexCount = avail
	}
	stage := vertexStage{
		resW: float64(res[0]), resH: float64(res[1]),
		fbW: float64(b.fb.Rect.Dx()), fbH: float64(b.fb.Rect.Dy()),
	}
	for i := 0; i+2 < vertexCount; i += 3 {
		var tri [3]point
		for k := range tri {
			idx := (i + k) * 2
			tri[k] = stage.transform(float64(data[idx]), float64(data[idx+1]))
		}
		fillTriangle(b.fb, tri, fill)
	}
}

// Size returns the framebuffer dimensions.
func (b *Backend) Size() (int, int) {
	return b.fb.Rect.Dx(), b.fb.Rect.Dy()
}

// Framebuffer returns the live framebuffer. It changes on the next draw.
func (b *Backend) Framebuffer() *image.RGBA {
	return b.fb
}

// Snapshot returns a copy of the framebuffer.
func (b *Backend) Snapshot() *image.RGBA {
	img := image.NewRGBA(b.fb.Rect)
	copy(img.Pix, b.fb.Pix)
	return img
}

func init() {
	registry.Register("raster", "software rasterizer into an in-memory framebuffer", func(width, height int) render.Backend {
		return New(width, height)
	})
}
