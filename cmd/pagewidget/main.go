package main

import (
	"os"

	"github.com/rshade/pagewidget/internal/cli"
	"github.com/rshade/pagewidget/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// extractExitCode maps the command error to the process exit code.
func extractExitCode(err error) int {
	return cli.ExitCode(err)
}

func main() {
	if err := run(); err != nil {
		os.Exit(extractExitCode(err))
	}
}
