package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/ui"
	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

var notificationCmd = &cobra.Command{
	Use:   "notification",
	Short: "Notification commands",
}

var (
	notificationTitle   string
	notificationMessage string
	notificationType    string
)

var listNotificationCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		return listOnce(cmd, func(ctx context.Context, p, l int) (*client.List[client.Notification], error) {
			return session.Client.Notifications.List(ctx, p, l)
		}, []string{"ID", "Type", "Title", "Message"}, func(n client.Notification) []string {
			return []string{ui.Truncate(n.ID, 12), n.Type, ui.Truncate(n.Title, 30), ui.Truncate(n.Message, 40)}
		})
	},
}

var createNotificationCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a notification",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		n, err := session.Client.Notifications.Create(cmd.Context(), client.CreateNotification{
			Title:   notificationTitle,
			Message: notificationMessage,
			Type:    notificationType,
		})
		if err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		fmt.Printf("Created notification %s (%s)\n", n.Title, n.ID)
		return nil
	},
}

var updateNotificationCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		in := client.UpdateNotification{}
		if cmd.Flags().Changed("title") {
			in.Title = &notificationTitle
		}
		if cmd.Flags().Changed("message") {
			in.Message = &notificationMessage
		}
		if cmd.Flags().Changed("type") {
			in.Type = &notificationType
		}

		n, err := session.Client.Notifications.Update(cmd.Context(), args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update notification: %w", err)
		}
		fmt.Printf("Updated notification %s\n", n.ID)
		return nil
	},
}

var deleteNotificationCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		if err := session.Client.Notifications.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete notification: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{createNotificationCmd, updateNotificationCmd} {
		c.Flags().StringVar(&notificationTitle, "title", "", "notification title")
		c.Flags().StringVar(&notificationMessage, "message", "", "notification body")
		c.Flags().StringVar(&notificationType, "type", "NEWS", "type: NEWS, UPDATE, WARNING, ERROR")
	}
	createNotificationCmd.MarkFlagRequired("title")
	createNotificationCmd.MarkFlagRequired("message")

	notificationCmd.AddCommand(listNotificationCmd, createNotificationCmd, updateNotificationCmd, deleteNotificationCmd)
	rootCmd.AddCommand(notificationCmd)
}
