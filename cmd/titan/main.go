package main

import (
	"os"

	"github.com/titanalgo/titan/cmd/titan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
