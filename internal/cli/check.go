package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/kilupskalvis/reposeed/internal/github"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the credential and that the target branch exists",
	Args:  cobra.NoArgs,
	Run:   runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	ctx := context.Background()

	tokens := tokenProvider()
	if _, err := tokens.Token(); err != nil {
		exitError("%v", err)
	}

	client := github.NewHTTPClient(github.RepoRef{
		Owner:  cfg.Repo.Owner,
		Name:   cfg.Repo.Name,
		Branch: cfg.Repo.Branch,
	}, tokens)

	branch, err := client.GetBranch(ctx, cfg.Repo.Branch)
	if err != nil {
		if errors.Is(err, github.ErrNotFound) {
			exitError("branch '%s' does not exist in %s/%s", cfg.Repo.Branch, cfg.Repo.Owner, cfg.Repo.Name)
		}
		exitError("%v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("OK")
	fmt.Printf(" %s/%s branch '%s' at %s\n", cfg.Repo.Owner, cfg.Repo.Name, branch.Name, shortSHA(branch.Commit.SHA))
}
