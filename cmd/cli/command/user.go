package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/ui"
	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User account commands (admin only)",
}

var (
	userName     string
	userUsername string
	userEmail    string
	userPassword string
	userRole     string
)

var userHeaders = []string{"ID", "Name", "Email", "Role", "Verified"}

func userRow(u client.User) []string {
	verified := "no"
	if u.EmailVerified {
		verified = "yes"
	}
	return []string{
		ui.Truncate(u.ID, 12),
		ui.Truncate(u.Name, 25),
		ui.Truncate(u.Email, 30),
		u.Role,
		verified,
	}
}

var listUserCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		return listOnce(cmd, func(ctx context.Context, p, l int) (*client.List[client.User], error) {
			return session.Client.Users.List(ctx, p, l)
		}, userHeaders, userRow)
	},
}

var browseUserCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse user accounts interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		return browse(cmd, "users", func(ctx context.Context, p, l int) (*client.List[client.User], error) {
			return session.Client.Users.List(ctx, p, l)
		}, userHeaders, userRow)
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		u, err := session.Client.Users.Create(cmd.Context(), client.CreateUser{
			Name:     userName,
			Username: userUsername,
			Email:    userEmail,
			Password: userPassword,
			Role:     userRole,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		fmt.Printf("Created user %s (%s)\n", u.Username, u.ID)
		return nil
	},
}

var updateUserCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		in := client.UpdateUser{}
		if cmd.Flags().Changed("name") {
			in.Name = &userName
		}
		if cmd.Flags().Changed("role") {
			in.Role = &userRole
		}

		u, err := session.Client.Users.Update(cmd.Context(), args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		fmt.Printf("Updated user %s\n", u.ID)
		return nil
	},
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		if err := session.Client.Users.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{createUserCmd, updateUserCmd} {
		c.Flags().StringVar(&userName, "name", "", "display name")
		c.Flags().StringVar(&userEmail, "email", "", "account email")
		c.Flags().StringVar(&userPassword, "password", "", "account password")
		c.Flags().StringVar(&userRole, "role", "user", "role: user or admin")
	}
	createUserCmd.Flags().StringVar(&userUsername, "username", "", "unique login handle")
	createUserCmd.MarkFlagRequired("name")
	createUserCmd.MarkFlagRequired("username")
	createUserCmd.MarkFlagRequired("email")
	createUserCmd.MarkFlagRequired("password")

	userCmd.AddCommand(listUserCmd, browseUserCmd, createUserCmd, updateUserCmd, deleteUserCmd)
	rootCmd.AddCommand(userCmd)
}
