package main

import (
	"os"

	"inventory_manager/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
