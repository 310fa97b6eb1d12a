package main

import (
	"os"

	"github.com/apper-canvas/fast-microlearn-frost/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
