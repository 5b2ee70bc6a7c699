package main

import (
	"os"

	"github.com/arah-infotech/sitebot/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
