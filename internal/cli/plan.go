package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/kilupskalvis/reposeed/internal/core"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the files that would be written, without writing anything",
	Args:  cobra.NoArgs,
	Run:   runPlan,
}

func runPlan(cmd *cobra.Command, args []string) {
	files := loadFiles()

	cyan := color.New(color.FgCyan)

	seenDirs := make(map[string]bool)
	writes := 0
	for _, f := range files {
		if idx := strings.LastIndex(f.Path, "/"); idx >= 0 {
			dir := f.Path[:idx]
			if !seenDirs[dir] {
				seenDirs[dir] = true
				cyan.Printf("  %s/%s", dir, core.PlaceholderName)
				fmt.Println("  (placeholder)")
				writes++
			}
		}
		fmt.Printf("  %s  (%d bytes)\n", f.Path, len(f.Content))
		writes++
	}

	fmt.Printf("\n%d file(s), %d write(s)\n", len(files), writes)
}
