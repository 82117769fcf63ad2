package main

import (
	"os"

	"github.com/ironsheep/hero-compose/internal/cli"
)

// Version information - set by ldflags during build
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
