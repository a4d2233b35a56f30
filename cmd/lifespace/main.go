// Package main provides lifespace, a personal activity prioritizer.
package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/calvinalkan/lifespace/internal/cli"
)

func main() {
	// Optional; variables already set in the environment win.
	_ = godotenv.Load()

	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	exitCode := cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env)

	os.Exit(exitCode)
}
