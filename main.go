package main

import (
	"os"

	"github.com/fartec0/aigp-codex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
