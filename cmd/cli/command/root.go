package command

// root.go defines the root command for the bookhub CLI and the shared
// client/session setup used by all subcommands.

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bookhub/cmd/cli/authentication"
	"bookhub/cmd/cli/command/client"
)

var (
	apiURL string // Global flag for API server URL

	session   *authentication.Session
	apiClient *client.HTTPClient
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookhub",
	Short: "bookhub - book review platform CLI",
	Long: `bookhub is a command line client for the book review API. Use it to:
- Browse, search and sort the book catalog
- Add, update and delete your own books
- Post star ratings and reviews
- Look up user profiles and review histories

Use "bookhub <command> -h" to see all available commands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		session, err = authentication.Load()
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		apiClient = client.NewHTTPClient(apiURL, session)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")
}

// printJSON renders a response as indented JSON on stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
