package main

import (
	"fmt"
	"os"

	"github.com/solvio-labs/simplexa/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
