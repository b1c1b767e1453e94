package render

import (
	"errors"
	"strings"
	"testing"
)

func TestParseEmbeddedShaders(t *testing.T) {
	vs, err := ParseStage(StageVertex, VertexSource)
	if err != nil {
		t.Fatalf("ParseStage(vertex) failed: %v", err)
	}
	if d, ok := vs.Lookup("attribute", AttributePosition); !ok || d.Type != "vec2" {
		t.Errorf("vertex stage should declare vec2 %s, got %+v", AttributePosition, d)
	}
	if d, ok := vs.Lookup("uniform", UniformResolution); !ok || d.Type != "vec2" {
		t.Errorf("vertex stage should declare vec2 %s, got %+v", UniformResolution, d)
	}
	if !vs.Writes("gl_Position") {
		t.Error("vertex stage should write gl_Position")
	}

	fs, err := ParseStage(StageFragment, FragmentSource)
	if err != nil {
		t.Fatalf("ParseStage(fragment) failed: %v", err)
	}
	if d, ok := fs.Lookup("uniform", UniformColor); !ok || d.Type != "vec4" {
		t.Errorf("fragment stage should declare vec4 %s, got %+v", UniformColor, d)
	}

	pi, err := LinkStages(vs, fs)
	if err != nil {
		t.Fatalf("LinkStages failed: %v", err)
	}
	if pi.Uniforms[UniformColor] != "vec4" || pi.Uniforms[UniformResolution] != "vec2" {
		t.Errorf("merged uniforms = %v", pi.Uniforms)
	}
	if pi.Attributes[AttributePosition] != "vec2" {
		t.Errorf("merged attributes = %v", pi.Attributes)
	}
}

func TestParseStageErrors(t *testing.T) {
	tests := []struct {
		name   string
		stage  ShaderStage
		source string
		want   string
	}{
		{"empty", StageVertex, "   \n", "empty source"},
		{"no main", StageVertex, "uniform vec2 u;\nvoid other() { gl_Position = vec4(0); }", "missing entry point"},
		{"unbalanced", StageFragment, "void main() { gl_FragColor = vec4(1);", "unterminated block"},
		{"stray brace", StageFragment, "void main() { gl_FragColor = vec4(1); } }", "unexpected '}'"},
		{"unknown type", StageVertex, "uniform vec9 u;\nvoid main() { gl_Position = vec4(0); }", "unknown type"},
		{"attribute in fragment", StageFragment, "attribute vec2 a;\nvoid main() { gl_FragColor = vec4(1); }", "only valid in the vertex stage"},
		{"missing output", StageVertex, "void main() { }", "never writes gl_Position"},
		{"trailing garbage", StageFragment, "void main() { gl_FragColor = vec4(1); } uniform", "syntax error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseStage(tc.stage, tc.source)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should contain %q", err, tc.want)
			}
		})
	}
}

func TestParseIgnoresComments(t *testing.T) {
	src := `// leading comment
/* block { with braces } */
uniform vec4 u_color; // trailing
void main() {
    gl_FragColor = u_color; /* done */
}`
	fs, err := ParseStage(StageFragment, src)
	if err != nil {
		t.Fatalf("ParseStage failed: %v", err)
	}
	if _, ok := fs.Lookup("uniform", "u_color"); !ok {
		t.Error("u_color should be declared")
	}
}

func TestLinkStagesErrors(t *testing.T) {
	vs, _ := ParseStage(StageVertex, "uniform vec2 u_x;\nvoid main() { gl_Position = vec4(0); }")
	fsConflict, _ := ParseStage(StageFragment, "uniform vec4 u_x;\nvoid main() { gl_FragColor = vec4(1); }")
	fsVarying, _ := ParseStage(StageFragment, "varying vec2 v_uv;\nvoid main() { gl_FragColor = vec4(1); }")

	tests := []struct {
		name   string
		vs, fs StageInterface
		want   string
	}{
		{"swapped stages", fsConflict, vs, "expected vertex"},
		{"uniform type conflict", vs, fsConflict, "declared as vec2 and vec4"},
		{"unmatched varying", vs, fsVarying, "not written by the vertex stage"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LinkStages(tc.vs, tc.fs)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LinkStages error = %v, expected to contain %q", err, tc.want)
			}
		})
	}
}

func TestErrorClassification(t *testing.T) {
	var err error = &CompileError{Stage: StageFragment, Log: "boom"}
	if !errors.Is(err, ErrCompile) {
		t.Error("CompileError should match ErrCompile")
	}
	if errors.Is(err, ErrLink) {
		t.Error("CompileError should not match ErrLink")
	}
	if !strings.Contains(err.Error(), "fragment") {
		t.Errorf("error text should name the stage: %q", err)
	}

	err = &LinkError{Log: "bad"}
	if !errors.Is(err, ErrLink) {
		t.Error("LinkError should match ErrLink")
	}
}
