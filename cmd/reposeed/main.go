// Command reposeed provisions a GitHub repository with a project skeleton.
package main

import (
	"os"

	"github.com/kilupskalvis/reposeed/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
