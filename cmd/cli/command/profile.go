package command

import (
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile <userID>",
	Short: "Show a user's profile with their books, reviews and stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := apiClient.Profile(args[0])
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
