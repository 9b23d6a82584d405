package main

import (
	"os"

	"github.com/coursekit/coursekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
