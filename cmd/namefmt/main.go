package main

import (
	"os"

	"github.com/krakjn/filenamefmt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
