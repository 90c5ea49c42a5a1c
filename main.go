package main

import (
	"os"

	"github.com/codifymate/caprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
