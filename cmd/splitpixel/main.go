package main

import (
	"os"

	"github.com/splitpixel/splitpixel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
