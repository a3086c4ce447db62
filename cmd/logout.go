package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/scandash/auth"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete stored backend credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := auth.NewStore()
		if err != nil {
			return err
		}
		if err := store.Delete(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
