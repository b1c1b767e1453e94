package record

import (
	"errors"
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/render"
)

func TestPipelineSetup(t *testing.T) {
	b := New()
	p, err := render.NewPipeline(b, 650, 650)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	if p.Program() == 0 {
		t.Error("pipeline should hold a program handle")
	}

	res := b.Uniform(render.UniformResolution)
	if len(res) != 2 || res[0] != 650 || res[1] != 650 {
		t.Errorf("u_resolution = %v, expected [650 650]", res)
	}

	s := b.Stats()
	if s.ShadersCompiled != 2 || s.ProgramsLinked != 1 {
		t.Errorf("Stats = %+v, expected 2 shaders and 1 program", s)
	}
}

func TestRecordsDrawsPerFrame(t *testing.T) {
	b := New()
	p, err := render.NewPipeline(b, 100, 100)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	red := core.RGBA(1, 0, 0, 1)
	blue := core.RGBA(0, 0, 1, 1)
	buf := b.CreateVertexBuffer([]float32{0, 0, 1, 0, 0, 1})

	p.Clear(core.RGBA(0, 0, 0, 1))
	p.Draw(buf, red, 3)
	p.Draw(buf, blue, 3)
	p.Clear(core.RGBA(0, 0, 0, 1))
	p.Draw(buf, blue, 3)

	frames := b.Frames()
	if len(frames) != 2 {
		t.Fatalf("Frames() len = %d, expected 2", len(frames))
	}
	if len(frames[0].Draws) != 2 || frames[0].Draws[0].Color != red || frames[0].Draws[1].Color != blue {
		t.Errorf("first frame = %+v", frames[0])
	}
	last, ok := b.LastFrame()
	if !ok || len(last.Draws) != 1 || last.Draws[0].Buffer != buf || last.Draws[0].VertexCount != 3 {
		t.Errorf("last frame = %+v", last)
	}
}

func TestFrameLimit(t *testing.T) {
	b := New(WithFrameLimit(2))
	for i := 0; i < 5; i++ {
		b.Clear(core.RGBA(float32(i)/10, 0, 0, 1))
	}
	frames := b.Frames()
	if len(frames) != 2 {
		t.Fatalf("Frames() len = %d, expected 2", len(frames))
	}
	if frames[1].Clear.R != 0.4 {
		t.Errorf("newest frame clear = %v, expected 0.4", frames[1].Clear.R)
	}
	if b.Stats().Frames != 5 {
		t.Errorf("Stats().Frames = %d, expected 5", b.Stats().Frames)
	}
}

func TestCompileAndLinkErrors(t *testing.T) {
	b := New()
	if _, err := b.CompileShader(render.StageFragment, ""); !errors.Is(err, render.ErrCompile) {
		t.Errorf("empty source error = %v, expected compile error", err)
	}
	if _, err := b.LinkProgram(1, 2); !errors.Is(err, render.ErrLink) {
		t.Errorf("unknown handles error = %v, expected link error", err)
	}
}

func TestUniformIgnoresUndeclared(t *testing.T) {
	b := New()
	if _, err := render.NewPipeline(b, 10, 10); err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	b.SetUniform("u_missing", 1)
	b.SetUniform(render.UniformColor, 1, 2) // wrong arity
	if b.Uniform("u_missing") != nil || b.Uniform(render.UniformColor) != nil {
		t.Error("undeclared or mis-sized uniforms should be ignored")
	}
}
