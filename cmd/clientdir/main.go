package main

import (
	"os"

	"github.com/BruksfildServices01/client-directory/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
