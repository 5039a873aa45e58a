package main

import (
	"os"

	"github.com/deepskylog/deepskygo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
