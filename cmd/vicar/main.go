package main

import (
	"os"

	"github.com/marsimaging/vicar/cmd/vicar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
