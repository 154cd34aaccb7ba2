package main

import (
	"os"

	"github.com/sebastiantruijens/moviefinder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
