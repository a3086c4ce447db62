package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/scandash/auth"
)

var (
	loginToken    string
	loginUserID   string
	loginUsername string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store backend credentials for the dashboard",
	Long: `Store the API token and user identity issued by the analysis backend.
Credentials are written to the XDG data directory and used by every request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginToken == "" || loginUserID == "" {
			return fmt.Errorf("both --token and --user-id are required")
		}

		store, err := auth.NewStore()
		if err != nil {
			return err
		}

		creds := auth.Credentials{
			Token:    loginToken,
			UserID:   loginUserID,
			Username: loginUsername,
		}
		if err := store.Save(creds); err != nil {
			return err
		}

		who := creds.Username
		if who == "" {
			who = creds.UserID
		}
		fmt.Printf("Logged in as %s.\n", who)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "API token issued by the backend")
	loginCmd.Flags().StringVar(&loginUserID, "user-id", "", "user id issued by the backend")
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "display name (optional)")
	rootCmd.AddCommand(loginCmd)
}
