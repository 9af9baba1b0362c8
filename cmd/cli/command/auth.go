package command

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Login, register, verify your email and inspect the current session`,
}

var loginEmail, loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login and store the token in the OS keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}

		email, password := loginEmail, loginPassword
		reader := bufio.NewReader(os.Stdin)
		if email == "" {
			fmt.Print("Email: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			email = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Print("Password: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimSpace(line)
		}

		result, err := session.Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Printf("Logged in as %s (%s)\n", result.User.Name, result.User.Role)
		return nil
	},
}

var registerName, registerEmail, registerPassword string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}

		err = session.Client.Auth.Register(cmd.Context(), client.RegisterInput{
			Name:     registerName,
			Email:    registerEmail,
			Password: registerPassword,
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println("Registered. Check your email for the verification code, then run 's2dash auth verify'.")
		return nil
	},
}

var verifyEmail, verifyCode string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify an email with the 6-digit code",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}

		if err := session.Client.Auth.VerifyEmail(cmd.Context(), verifyEmail, verifyCode); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		fmt.Println("Email verified, you can log in now.")
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the logged in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		user, err := session.Client.Auth.Me(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch account: %w", err)
		}

		fmt.Printf("Name:     %s\n", user.Name)
		fmt.Printf("Username: %s\n", user.Username)
		fmt.Printf("Email:    %s\n", user.Email)
		fmt.Printf("Role:     %s\n", user.Role)
		fmt.Printf("Coins:    %d\n", user.Coins)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		if err := session.Logout(); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")

	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	verifyCmd.Flags().StringVar(&verifyEmail, "email", "", "account email")
	verifyCmd.Flags().StringVar(&verifyCode, "code", "", "6-digit verification code")
	verifyCmd.MarkFlagRequired("email")
	verifyCmd.MarkFlagRequired("code")

	authCmd.AddCommand(loginCmd, registerCmd, verifyCmd, meCmd, logoutCmd)
	rootCmd.AddCommand(authCmd)
}
