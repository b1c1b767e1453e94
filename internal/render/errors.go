package render

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching of setup failures.
var (
	ErrCompile = errors.New("render: shader compile failed")
	ErrLink    = errors.New("render: program link failed")
)

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage ShaderStage
	Log   string // Driver info log
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("render: %s shader compile failed: %s", e.Stage, e.Log)
}

// Is reports whether target is ErrCompile.
func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string // Driver info log
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("render: program link failed: %s", e.Log)
}

// Is reports whether target is ErrLink.
func (e *LinkError) Is(target error) bool {
	return target == ErrLink
}
