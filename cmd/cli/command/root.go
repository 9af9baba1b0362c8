// Package command defines the cobra command tree for the dashboard CLI.
package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/authentication"
	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

var (
	apiURL string // global flag for the API base URL
	page   int
	limit  int
)

var rootCmd = &cobra.Command{
	Use:   "s2dash",
	Short: "s2dash - manga platform admin dashboard CLI",
	Long: `s2dash manages the manga platform catalog from the terminal:
mangas, chapters, categories, languages, tags, playlists, wallpapers,
notifications and user accounts.

Every command needs a login ("s2dash auth login"); mutations and user
management additionally need an admin account.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:3000", "API server URL")
	rootCmd.PersistentFlags().IntVar(&page, "page", 1, "page to fetch")
	rootCmd.PersistentFlags().IntVar(&limit, "limit", 10, "items per page")
}

// newSession builds a client against --api with any stored token restored.
func newSession() (*client.Session, error) {
	c, err := client.NewClient(apiURL)
	if err != nil {
		return nil, err
	}
	return client.NewSession(c, authentication.KeyringStore{}), nil
}

// requireLogin fails fast with a hint instead of letting the API answer 401.
func requireLogin() (*client.Session, error) {
	session, err := newSession()
	if err != nil {
		return nil, err
	}
	if !session.LoggedIn() {
		return nil, fmt.Errorf("not logged in, run 's2dash auth login' first")
	}
	return session, nil
}
