//go:build js && wasm

// Package webgl is the render.Backend for browsers, a thin layer over a
// WebGL 1 context reached through syscall/js.
package webgl

import (
	"encoding/binary"
	"errors"
	"math"
	"syscall/js"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/render"
)

// ErrNoContext is returned when the canvas cannot provide a WebGL context.
var ErrNoContext = errors.New("webgl: context unavailable")

type program struct {
	value    js.Value
	position int
	uniforms map[string]js.Value
}

// Backend draws on a canvas. Like every js.Value user it must stay on the
// goroutine that created it.
type Backend struct {
	gl js.Value

	shaders  map[render.Shader]js.Value
	programs map[render.Program]*program
	buffers  map[render.Buffer]js.Value
	current  *program
	nextID   uint32

	arrayBuffer js.Value
	float       js.Value
	triangles   js.Value
}

// New sizes canvas to width x height and opens its WebGL context.
func New(canvas js.Value, width, height int) (*Backend, error) {
	canvas.Set("width", width)
	canvas.Set("height", height)

	gl := canvas.Call("getContext", "webgl")
	if gl.IsNull() || gl.IsUndefined() {
		return nil, ErrNoContext
	}
	gl.Call("viewport", 0, 0, width, height)

	return &Backend{
		gl:          gl,
		shaders:     make(map[render.Shader]js.Value),
		programs:    make(map[render.Program]*program),
		buffers:     make(map[render.Buffer]js.Value),
		arrayBuffer: gl.Get("ARRAY_BUFFER"),
		float:       gl.Get("FLOAT"),
		triangles:   gl.Get("TRIANGLES"),
	}, nil
}

func (b *Backend) id() uint32 {
	b.nextID++
	return b.nextID
}

// CompileShader compiles one stage and reports the driver's info log on
// failure.
func (b *Backend) CompileShader(stage render.ShaderStage, source string) (render.Shader, error) {
	kind := b.gl.Get("VERTEX_SHADER")
	if stage == render.StageFragment {
		kind = b.gl.Get("FRAGMENT_SHADER")
	}

	s := b.gl.Call("createShader", kind)
	b.gl.Call("shaderSource", s, source)
	b.gl.Call("compileShader", s)
	if !b.gl.Call("getShaderParameter", s, b.gl.Get("COMPILE_STATUS")).Bool() {
		info := b.gl.Call("getShaderInfoLog", s).String()
		b.gl.Call("deleteShader", s)
		return 0, &render.CompileError{Stage: stage, Log: info}
	}

	h := render.Shader(b.id())
	b.shaders[h] = s
	return h, nil
}

// LinkProgram links two compiled shaders.
func (b *Backend) LinkProgram(vs, fs render.Shader) (render.Program, error) {
	v, ok1 := b.shaders[vs]
	f, ok2 := b.shaders[fs]
	if !ok1 || !ok2 {
		return 0, &render.LinkError{Log: "unknown shader handle"}
	}

	p := b.gl.Call("createProgram")
	b.gl.Call("attachShader", p, v)
	b.gl.Call("attachShader", p, f)
	b.gl.Call("linkProgram", p)
	if !b.gl.Call("getProgramParameter", p, b.gl.Get("LINK_STATUS")).Bool() {
		info := b.gl.Call("getProgramInfoLog", p).String()
		b.gl.Call("deleteProgram", p)
		return 0, &render.LinkError{Log: info}
	}

	h := render.Program(b.id())
	b.programs[h] = &program{
		value:    p,
		position: b.gl.Call("getAttribLocation", p, render.AttributePosition).Int(),
		uniforms: make(map[string]js.Value),
	}
	return h, nil
}

// UseProgram binds the program and enables its position attribute.
func (b *Backend) UseProgram(p render.Program) {
	prog, ok := b.programs[p]
	if !ok {
		return
	}
	b.gl.Call("useProgram", prog.value)
	if prog.position >= 0 {
		b.gl.Call("enableVertexAttribArray", prog.position)
	}
	b.current = prog
}

// CreateVertexBuffer uploads vertices as a static Float32Array.
func (b *Backend) CreateVertexBuffer(vertices []float32) render.Buffer {
	buf := b.gl.Call("createBuffer")
	b.gl.Call("bindBuffer", b.arrayBuffer, buf)
	b.gl.Call("bufferData", b.arrayBuffer, float32Array(vertices), b.gl.Get("STATIC_DRAW"))

	h := render.Buffer(b.id())
	b.buffers[h] = buf
	return h
}

// DeleteBuffer releases the GL buffer.
func (b *Backend) DeleteBuffer(buf render.Buffer) {
	v, ok := b.buffers[buf]
	if !ok {
		return
	}
	b.gl.Call("deleteBuffer", v)
	delete(b.buffers, buf)
}

// SetUniform sets a float uniform on the bound program. Unknown names are
// ignored.
func (b *Backend) SetUniform(name string, values ...float32) {
	if b.current == nil {
		return
	}
	loc, ok := b.current.uniforms[name]
	if !ok {
		loc = b.gl.Call("getUniformLocation", b.current.value, name)
		b.current.uniforms[name] = loc
	}
	if loc.IsNull() {
		return
	}

	args := make([]any, 0, 1+len(values))
	args = append(args, loc)
	for _, v := range values {
		args = append(args, v)
	}
	switch len(values) {
	case 1:
		b.gl.Call("uniform1f", args...)
	case 2:
		b.gl.Call("uniform2f", args...)
	case 3:
		b.gl.Call("uniform3f", args...)
	case 4:
		b.gl.Call("uniform4f", args...)
	}
}

// Clear fills the canvas.
func (b *Backend) Clear(c core.Color) {
	b.gl.Call("clearColor", c.R, c.G, c.B, c.A)
	b.gl.Call("clear", b.gl.Get("COLOR_BUFFER_BIT"))
}

// DrawTriangles draws vertexCount vertices from buf.
func (b *Backend) DrawTriangles(buf render.Buffer, vertexCount int) {
	v, ok := b.buffers[buf]
	if !ok || b.current == nil || b.current.position < 0 || vertexCount <= 0 {
		return
	}
	b.gl.Call("bindBuffer", b.arrayBuffer, v)
	b.gl.Call("vertexAttribPointer", b.current.position, 2, b.float, false, 0, 0)
	b.gl.Call("drawArrays", b.triangles, 0, vertexCount)
}

// float32Array copies vertices into a new JS Float32Array.
func float32Array(vertices []float32) js.Value {
	raw := make([]byte, 4*len(vertices))
	for i, v := range vertices {
		binary.LittleEndian.PutUint32(raw[4*i:], math.Float32bits(v))
	}
	u8 := js.Global().Get("Uint8Array").New(len(raw))
	js.CopyBytesToJS(u8, raw)
	return js.Global().Get("Float32Array").New(u8.Get("buffer"))
}
