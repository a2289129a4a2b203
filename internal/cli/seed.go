package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/kilupskalvis/reposeed/internal/core"
	"github.com/kilupskalvis/reposeed/internal/github"
	"github.com/spf13/cobra"
)

var seedUpdate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the project skeleton into the target repository",
	Long: `Write every file of the skeleton into the target repository, one at a
time, with a fixed delay between writes to stay under the API rate limit.

The run stops at the first file that cannot be written. Re-running against a
repository that already contains some of the files fails unless
--update is given (or update_existing is set in the config).

Examples:
  reposeed seed                      Seed using reposeed.toml and $GITHUB_TOKEN
  reposeed seed -c infra/seed.toml   Seed using a different config file
  reposeed seed --update             Overwrite files that already exist
  reposeed seed --manifest files.toml  Seed a custom file set`,
	Args: cobra.NoArgs,
	Run:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedUpdate, "update", false, "Update files that already exist instead of failing")
}

func runSeed(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	files := loadFiles()
	logger := newLogger()

	ctx := context.Background()

	client := github.NewHTTPClient(github.RepoRef{
		Owner:  cfg.Repo.Owner,
		Name:   cfg.Repo.Name,
		Branch: cfg.Repo.Branch,
	}, tokenProvider())

	// Fail before the first write if the branch does not exist.
	branch, err := client.GetBranch(ctx, cfg.Repo.Branch)
	if err != nil {
		if errors.Is(err, github.ErrNotFound) {
			exitError("branch '%s' does not exist in %s/%s", cfg.Repo.Branch, cfg.Repo.Owner, cfg.Repo.Name)
		}
		exitError("%v", err)
	}

	retry := core.RetryConfig{
		MaxRetries:     cfg.Retry.MaxRetries,
		BaseDelay:      cfg.BaseDelay(),
		MaxDelay:       cfg.MaxDelay(),
		UpdateExisting: cfg.Retry.UpdateExisting || seedUpdate,
	}
	writer := core.NewWriter(client, retry, logger)

	fmt.Printf("Seeding %s/%s (%s @ %s) with %d files...\n",
		cfg.Repo.Owner, cfg.Repo.Name, cfg.Repo.Branch, shortSHA(branch.Commit.SHA), len(files))

	bar := pb.Full.Start(len(files))
	result, err := core.Seed(ctx, writer, files, core.SeedOptions{
		Branch:     cfg.Repo.Branch,
		WriteDelay: cfg.WriteDelay(),
	}, func(path string, current, total int) {
		bar.SetCurrent(int64(current))
	})
	bar.Finish()
	if err != nil {
		exitError("%v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("Seeded %d file(s)", result.Created)
	if result.Updated > 0 {
		fmt.Printf(", updated %d existing", result.Updated)
	}
	fmt.Println()
}
