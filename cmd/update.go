package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	latest "github.com/tcnksm/go-latest"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		githubTag := &latest.GithubTag{
			Owner:      "marcus",
			Repository: "scandash",
		}

		res, err := latest.Check(githubTag, version)
		if err != nil {
			return fmt.Errorf("checking releases: %w", err)
		}

		if res.Outdated {
			fmt.Printf("A new version is available: %s (you have %s)\n", res.Current, version)
			fmt.Println("Download it from https://github.com/marcus/scandash/releases")
		} else {
			fmt.Printf("You are using the latest version: %s\n", version)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
