package main

import (
	"os"

	"github.com/rooshmintted/courseplay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
