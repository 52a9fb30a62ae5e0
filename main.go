package main

import (
	"os"

	"github.com/evanlowell/growlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
