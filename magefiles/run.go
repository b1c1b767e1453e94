//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Plays in the terminal.
func (Run) Play() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/brick-breaker", "play"), withStream())
	return err
}

// Runs a short headless trace and writes the final frame to trace.png.
func (Run) Trace() error {
	_, err := executeCmd("go",
		withArgs("run", "./cmd/brick-breaker", "trace", "--ticks", "2000", "--renderer", "raster", "--png", "trace.png"),
		withStream(),
	)
	return err
}

// Runs the test suite.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
