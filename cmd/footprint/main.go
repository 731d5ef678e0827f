package main

import (
	"fmt"
	"os"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/pkg/version"
)

func run() int {
	root := cli.NewRootCmd(version.String())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCode(err)
	}
	return cli.ExitCodeOK
}

func main() {
	os.Exit(run())
}
