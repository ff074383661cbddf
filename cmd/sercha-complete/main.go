// Command sercha-complete prints autocomplete suggestions from configurable sources.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/sercha-complete/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-complete/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	logCfg, err := logger.LoadConfig()
	if err != nil {
		return err
	}
	if err := logger.Configure(logCfg); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)
	return cli.Execute()
}
