package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/cli"
)

var version = "v0.1.0"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
