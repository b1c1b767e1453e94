//go:build mage

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the terminal binary into bin/.
func (Build) Terminal() error {
	_, err := executeCmd("go", withArgs("build", "-o", filepath.Join("bin", "brick-breaker"), "./cmd/brick-breaker"), withStream())
	return err
}

// Builds web/brick-breaker.wasm and copies the matching wasm_exec.js next to it.
func (Build) Wasm() error {
	if _, err := executeCmd("go",
		withArgs("build", "-o", filepath.Join("web", "brick-breaker.wasm"), "./cmd/brick-breaker-wasm"),
		withEnv("GOOS=js", "GOARCH=wasm"),
		withStream(),
	); err != nil {
		return err
	}

	root, err := executeCmd("go", withArgs("env", "GOROOT"))
	if err != nil {
		return err
	}
	src := filepath.Join(strings.TrimSpace(root), "lib", "wasm", "wasm_exec.js")
	if err := copyFile(src, filepath.Join("web", "wasm_exec.js")); err != nil {
		return err
	}
	fmt.Println("Serve ./web and open index.html")
	return nil
}

// Builds every target.
func (Build) All() {
	mg.SerialDeps(Build.Terminal, Build.Wasm)
}
