package main

import (
	"os"

	"github.com/majorcontext/teller/cmd/teller/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
