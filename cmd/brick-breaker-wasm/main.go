//go:build js && wasm

// Command brick-breaker-wasm is the browser build. The page may define a
// global brickBreakerConfig string holding YAML overrides.
package main

import (
	"context"
	"os"
	"syscall/js"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/logging"
	"github.com/vovakirdan/brick-breaker/internal/platform/web"
)

func main() {
	logger, err := logging.New(os.Stdout, logging.Options{Prefix: "brick-breaker"})
	if err != nil {
		panic(err)
	}

	cfg := config.Default()
	if v := js.Global().Get("brickBreakerConfig"); v.Type() == js.TypeString {
		c, err := config.Parse([]byte(v.String()), config.FormatYAML)
		if err != nil {
			logger.Error("ignoring page config", "error", err)
		} else {
			cfg = c
		}
	}

	if err := web.Run(context.Background(), cfg, web.DefaultCanvasID, logger); err != nil {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
