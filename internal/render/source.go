package render

import (
	"fmt"
	"strings"
)

// Declaration is one global interface variable of a shader stage.
type Declaration struct {
	Qualifier string // "attribute", "uniform" or "varying"
	Type      string // GLSL type name, e.g. "vec2"
	Name      string
}

// StageInterface is what a shader stage declares and where it writes, as
// recovered from its source. Software drivers use it in place of a real
// GLSL front end: the stage logic itself is implemented natively and only
// the declared interface is checked.
type StageInterface struct {
	Stage        ShaderStage
	Declarations []Declaration
	Functions    []string
	writes       map[string]bool
}

// Lookup returns the declaration with the given name and qualifier.
func (si StageInterface) Lookup(qualifier, name string) (Declaration, bool) {
	for _, d := range si.Declarations {
		if d.Qualifier == qualifier && d.Name == name {
			return d, true
		}
	}
	return Declaration{}, false
}

// Writes reports whether the stage assigns to the named builtin.
func (si StageInterface) Writes(builtin string) bool {
	return si.writes[builtin]
}

var glslTypes = map[string]bool{
	"float": true, "vec2": true, "vec3": true, "vec4": true,
	"mat2": true, "mat3": true, "mat4": true,
	"int": true, "bool": true, "sampler2D": true,
}

var precisionQualifiers = map[string]bool{
	"lowp": true, "mediump": true, "highp": true,
}

// requiredOutput is the builtin each stage must write.
var requiredOutput = map[ShaderStage]string{
	StageVertex:   "gl_Position",
	StageFragment: "gl_FragColor",
}

// ParseStage checks a stage source and recovers its interface. The returned
// error text is suitable as a compile log.
func ParseStage(stage ShaderStage, source string) (StageInterface, error) {
	si := StageInterface{Stage: stage, writes: make(map[string]bool)}

	src := stripComments(source)
	if strings.TrimSpace(src) == "" {
		return si, fmt.Errorf("empty source")
	}

	depth := 0
	var stmt, body strings.Builder
	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case ch == '{':
			if depth == 0 {
				header := strings.TrimSpace(stmt.String())
				stmt.Reset()
				name, err := functionName(header)
				if err != nil {
					return si, err
				}
				si.Functions = append(si.Functions, name)
				body.Reset()
			} else {
				body.WriteByte(ch)
			}
			depth++
		case ch == '}':
			depth--
			if depth < 0 {
				return si, fmt.Errorf("unexpected '}' at offset %d", i)
			}
			if depth == 0 {
				recordWrites(&si, body.String())
			} else {
				body.WriteByte(ch)
			}
		case depth > 0:
			body.WriteByte(ch)
		case ch == ';':
			if err := si.declare(strings.TrimSpace(stmt.String())); err != nil {
				return si, err
			}
			stmt.Reset()
		default:
			stmt.WriteByte(ch)
		}
	}
	if depth != 0 {
		return si, fmt.Errorf("unterminated block")
	}
	if rest := strings.TrimSpace(stmt.String()); rest != "" {
		return si, fmt.Errorf("syntax error near %q", rest)
	}

	if !si.hasFunction("main") {
		return si, fmt.Errorf("missing entry point void main()")
	}
	if out := requiredOutput[stage]; !si.writes[out] {
		return si, fmt.Errorf("%s stage never writes %s", stage, out)
	}
	return si, nil
}

func (si *StageInterface) hasFunction(name string) bool {
	for _, f := range si.Functions {
		if f == name {
			return true
		}
	}
	return false
}

// declare handles one top-level statement.
func (si *StageInterface) declare(stmt string) error {
	if stmt == "" {
		return nil
	}
	fields := strings.Fields(stmt)
	switch fields[0] {
	case "precision":
		if len(fields) != 3 || !precisionQualifiers[fields[1]] {
			return fmt.Errorf("malformed precision statement %q", stmt)
		}
		return nil
	case "attribute", "uniform", "varying":
	default:
		// Plain globals and constants are valid but not part of the interface.
		return nil
	}

	qualifier := fields[0]
	rest := fields[1:]
	if len(rest) == 3 && precisionQualifiers[rest[0]] {
		rest = rest[1:]
	}
	if len(rest) != 2 {
		return fmt.Errorf("malformed declaration %q", stmt)
	}
	typ, name := rest[0], rest[1]
	if !glslTypes[typ] {
		return fmt.Errorf("unknown type %q in %q", typ, stmt)
	}
	if qualifier == "attribute" && si.Stage != StageVertex {
		return fmt.Errorf("attribute %q is only valid in the vertex stage", name)
	}
	if _, dup := si.Lookup(qualifier, name); dup {
		return fmt.Errorf("redeclaration of %q", name)
	}
	si.Declarations = append(si.Declarations, Declaration{Qualifier: qualifier, Type: typ, Name: name})
	return nil
}

func functionName(header string) (string, error) {
	open := strings.IndexByte(header, '(')
	if open < 0 || !strings.HasSuffix(header, ")") {
		return "", fmt.Errorf("malformed function header %q", header)
	}
	fields := strings.Fields(header[:open])
	if len(fields) != 2 {
		return "", fmt.Errorf("malformed function header %q", header)
	}
	return fields[1], nil
}

func recordWrites(si *StageInterface, body string) {
	for out := range map[string]bool{"gl_Position": true, "gl_FragColor": true} {
		idx := strings.Index(body, out)
		if idx < 0 {
			continue
		}
		after := strings.TrimSpace(body[idx+len(out):])
		if strings.HasPrefix(after, "=") && !strings.HasPrefix(after, "==") {
			si.writes[out] = true
		}
	}
}

func stripComments(src string) string {
	var sb strings.Builder
	for i := 0; i < len(src); i++ {
		if i+1 < len(src) && src[i] == '/' && src[i+1] == '/' {
			for i < len(src) && src[i] != '\n' {
				i++
			}
			sb.WriteByte('\n')
			continue
		}
		if i+1 < len(src) && src[i] == '/' && src[i+1] == '*' {
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				break
			}
			i += end + 3
			sb.WriteByte(' ')
			continue
		}
		sb.WriteByte(src[i])
	}
	return sb.String()
}

// ProgramInterface is the merged interface of a linked program.
type ProgramInterface struct {
	Attributes map[string]string // name -> type
	Uniforms   map[string]string // name -> type
}

// LinkStages checks that two parsed stages form a valid program and merges
// their interfaces. The returned error text is suitable as a link log.
func LinkStages(vs, fs StageInterface) (ProgramInterface, error) {
	pi := ProgramInterface{
		Attributes: make(map[string]string),
		Uniforms:   make(map[string]string),
	}
	if vs.Stage != StageVertex {
		return pi, fmt.Errorf("first shader is a %s shader, expected vertex", vs.Stage)
	}
	if fs.Stage != StageFragment {
		return pi, fmt.Errorf("second shader is a %s shader, expected fragment", fs.Stage)
	}

	for _, d := range vs.Declarations {
		switch d.Qualifier {
		case "attribute":
			pi.Attributes[d.Name] = d.Type
		case "uniform":
			pi.Uniforms[d.Name] = d.Type
		}
	}
	for _, d := range fs.Declarations {
		switch d.Qualifier {
		case "uniform":
			if prev, ok := pi.Uniforms[d.Name]; ok && prev != d.Type {
				return pi, fmt.Errorf("uniform %q declared as %s and %s", d.Name, prev, d.Type)
			}
			pi.Uniforms[d.Name] = d.Type
		case "varying":
			out, ok := vs.Lookup("varying", d.Name)
			if !ok {
				return pi, fmt.Errorf("varying %q is not written by the vertex stage", d.Name)
			}
			if out.Type != d.Type {
				return pi, fmt.Errorf("varying %q declared as %s and %s", d.Name, out.Type, d.Type)
			}
		}
	}
	return pi, nil
}

// ComponentCount returns the float count of a uniform type, or 0 for types
// that are not float vectors.
func ComponentCount(typ string) int {
	switch typ {
	case "float":
		return 1
	case "vec2":
		return 2
	case "vec3":
		return 3
	case "vec4":
		return 4
	default:
		return 0
	}
}
