package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/geometry"
	"github.com/vovakirdan/brick-breaker/internal/render"
)

var (
	clearColor = core.RGBA(0, 0, 0, 1)
	brickColor = core.RGBA(0.8, 0, 0, 1)
)

func newPipeline(t *testing.T, fbW, fbH int, resW, resH float64) (*Backend, *render.Pipeline) {
	t.Helper()
	b := New(fbW, fbH)
	p, err := render.NewPipeline(b, resW, resH)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	return b, p
}

func countColor(b *Backend, c core.Color) int {
	r, g, bl, a := c.Bytes()
	want := color.RGBA{R: r, G: g, B: bl, A: a}
	fb := b.Framebuffer()
	n := 0
	for y := fb.Rect.Min.Y; y < fb.Rect.Max.Y; y++ {
		for x := fb.Rect.Min.X; x < fb.Rect.Max.X; x++ {
			if fb.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestRectangleCoversExactPixels(t *testing.T) {
	b, p := newPipeline(t, 650, 650, 650, 650)
	p.Clear(clearColor)

	verts := geometry.Rectangle(35, 30, 60, 20)
	buf := b.CreateVertexBuffer(verts)
	p.Draw(buf, brickColor, geometry.VertexCount(verts))

	if got := countColor(b, brickColor); got != 60*20 {
		t.Errorf("brick covers %d pixels, expected %d", got, 60*20)
	}

	r, _, _, _ := brickColor.Bytes()
	fb := b.Framebuffer()
	if fb.RGBAAt(35, 30).R != r || fb.RGBAAt(94, 49).R != r {
		t.Error("corner pixels inside the brick should be filled")
	}
	if fb.RGBAAt(34, 30).R == r || fb.RGBAAt(95, 30).R == r || fb.RGBAAt(35, 50).R == r {
		t.Error("pixels outside the brick should keep the clear color")
	}
}

func TestAdjacentRectanglesNoOverlap(t *testing.T) {
	b, p := newPipeline(t, 100, 100, 100, 100)
	p.Clear(clearColor)

	left := geometry.Rectangle(10, 10, 20, 20)
	right := geometry.Rectangle(30, 10, 20, 20)
	p.Draw(b.CreateVertexBuffer(left), brickColor, 6)
	p.Draw(b.CreateVertexBuffer(right), brickColor, 6)

	if got := countColor(b, brickColor); got != 800 {
		t.Errorf("adjacent rects cover %d pixels, expected 800", got)
	}
}

func TestCircleCoverage(t *testing.T) {
	b, p := newPipeline(t, 100, 100, 100, 100)
	p.Clear(clearColor)

	verts := geometry.Circle(50, 50, 10, 10)
	ball := core.RGBA(0, 1, 0, 1)
	p.Draw(b.CreateVertexBuffer(verts), ball, geometry.VertexCount(verts))

	got := float64(countColor(b, ball))
	expected := 0.5 * 36 * 100 * math.Sin(2*math.Pi/36) // inscribed 36-gon area
	if math.Abs(got-expected) > expected*0.05 {
		t.Errorf("ball covers %v pixels, expected about %v", got, expected)
	}
	if b.Framebuffer().RGBAAt(50, 50).G != 255 {
		t.Error("center pixel should be filled")
	}
	if b.Framebuffer().RGBAAt(50, 62).G == 255 {
		t.Error("pixel beyond the radius should not be filled")
	}
}

func TestResolutionScalesToFramebuffer(t *testing.T) {
	b, p := newPipeline(t, 325, 325, 650, 650)
	p.Clear(clearColor)

	verts := geometry.Rectangle(100, 100, 60, 20)
	p.Draw(b.CreateVertexBuffer(verts), brickColor, 6)

	if got := countColor(b, brickColor); got != 30*10 {
		t.Errorf("half-resolution brick covers %d pixels, expected %d", got, 30*10)
	}
}

func TestClippingAtFramebufferEdges(t *testing.T) {
	b, p := newPipeline(t, 50, 50, 50, 50)
	p.Clear(clearColor)

	// Ball partly past the left wall, as happens before a bounce takes effect
	verts := geometry.Rectangle(-10, 10, 20, 10)
	p.Draw(b.CreateVertexBuffer(verts), brickColor, 6)

	if got := countColor(b, brickColor); got != 10*10 {
		t.Errorf("clipped rect covers %d pixels, expected %d", got, 100)
	}
}

func TestDrawWithoutStateIsNoop(t *testing.T) {
	b := New(10, 10)
	b.Clear(clearColor)
	buf := b.CreateVertexBuffer(geometry.Rectangle(0, 0, 10, 10))

	// No program bound
	b.DrawTriangles(buf, 6)
	if got := countColor(b, clearColor); got != 100 {
		t.Errorf("draw without program changed %d pixels", 100-got)
	}

	// Unknown buffer
	_, p := newPipelineOn(t, b)
	p.Draw(render.Buffer(9999), brickColor, 6)
	if got := countColor(b, clearColor); got != 100 {
		t.Errorf("draw with unknown buffer changed %d pixels", 100-got)
	}

	// Vertex count larger than the buffer is truncated to complete triangles
	p.Draw(buf, brickColor, 600)
	if got := countColor(b, brickColor); got != 100 {
		t.Errorf("oversized vertex count should still draw the full rect, got %d pixels", got)
	}
}

func newPipelineOn(t *testing.T, b *Backend) (*Backend, *render.Pipeline) {
	t.Helper()
	w, h := b.Size()
	p, err := render.NewPipeline(b, float64(w), float64(h))
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	return b, p
}

func TestCompileError(t *testing.T) {
	b := New(10, 10)
	_, err := render.NewPipelineFromSource(b, "void main() {", render.FragmentSource, 10, 10)
	if err == nil {
		t.Fatal("expected compile error")
	}
	var ce *render.CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error %v should be a *CompileError", err)
	}
	if ce.Stage != render.StageVertex {
		t.Errorf("Stage = %v, expected vertex", ce.Stage)
	}
	if !errors.Is(err, render.ErrCompile) {
		t.Error("error should match ErrCompile")
	}
}

func TestLinkErrorMissingPosition(t *testing.T) {
	b := New(10, 10)
	vs := "attribute vec2 a_pos;\nuniform vec2 u_resolution;\nvoid main() { gl_Position = vec4(a_pos, 0, 1); }"
	_, err := render.NewPipelineFromSource(b, vs, render.FragmentSource, 10, 10)
	var le *render.LinkError
	if !errors.As(err, &le) {
		t.Fatalf("error %v should be a *LinkError", err)
	}
}

func TestLinkErrorSwappedStages(t *testing.T) {
	b := New(10, 10)
	vs, err := b.CompileShader(render.StageVertex, render.VertexSource)
	if err != nil {
		t.Fatalf("CompileShader failed: %v", err)
	}
	fs, err := b.CompileShader(render.StageFragment, render.FragmentSource)
	if err != nil {
		t.Fatalf("CompileShader failed: %v", err)
	}
	if _, err := b.LinkProgram(fs, vs); !errors.Is(err, render.ErrLink) {
		t.Errorf("LinkProgram(fs, vs) error = %v, expected link error", err)
	}
	if _, err := b.LinkProgram(vs, render.Shader(42)); !errors.Is(err, render.ErrLink) {
		t.Errorf("LinkProgram with unknown handle error = %v, expected link error", err)
	}
}

func TestBufferLifecycle(t *testing.T) {
	b := New(10, 10)
	buf := b.CreateVertexBuffer([]float32{0, 0, 1, 0, 0, 1})
	if b.LiveBuffers() != 1 {
		t.Fatalf("LiveBuffers() = %d, expected 1", b.LiveBuffers())
	}
	b.DeleteBuffer(buf)
	b.DeleteBuffer(buf) // Double delete is a no-op
	b.DeleteBuffer(0)
	if b.LiveBuffers() != 0 {
		t.Errorf("LiveBuffers() = %d after delete, expected 0", b.LiveBuffers())
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	b := New(4, 4)
	b.Clear(clearColor)
	snap := b.Snapshot()
	b.Clear(brickColor)
	if snap.RGBAAt(0, 0).R != 0 {
		t.Error("snapshot should not change when the framebuffer does")
	}
}

func TestEncodePNGScale(t *testing.T) {
	b := New(4, 3)
	b.Clear(core.RGBA(1, 0, 0, 1))

	var buf bytes.Buffer
	if err := EncodePNG(&buf, b.Framebuffer(), 3); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(12, 9) {
		t.Errorf("size = %v, want (12,9)", got)
	}
	r, g, _, _ := img.At(11, 8).RGBA()
	if r>>8 != 255 || g != 0 {
		t.Errorf("corner pixel = %v", img.At(11, 8))
	}
}
