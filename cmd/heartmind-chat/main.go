package main

import (
	"os"

	"github.com/MikeSquared-Agency/heartmind/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
