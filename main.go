package main

import (
	"os"

	"github.com/anvaya/paperforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
