package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookhub/internal/httpapi/dto"
)

var (
	signupName     string
	signupEmail    string
	signupPassword string
	loginEmail     string
	loginPassword  string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := apiClient.Signup(&dto.SignupRequest{
			Name:     signupName,
			Email:    signupEmail,
			Password: signupPassword,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Signed up as %s (%s)\n", resp.User.Name, resp.User.Email)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := apiClient.Login(&dto.LoginRequest{
			Email:    loginEmail,
			Password: loginPassword,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupName, "name", "", "display name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "email address")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "password")
	signupCmd.MarkFlagRequired("name")
	signupCmd.MarkFlagRequired("email")
	signupCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd)
}
