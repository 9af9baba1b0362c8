package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/ui"
	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "Playlist commands",
}

var (
	playlistName string
	playlistDesc string
	playlistLink string
	playlistTags []string
)

var playlistHeaders = []string{"ID", "Name", "Tags"}

func playlistRow(p client.Playlist) []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return []string{
		ui.Truncate(p.ID, 12),
		ui.Truncate(p.Name, 40),
		ui.Truncate(strings.Join(names, ", "), 30),
	}
}

var listPlaylistCmd = &cobra.Command{
	Use:   "list",
	Short: "List playlists",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		return listOnce(cmd, func(ctx context.Context, p, l int) (*client.List[client.Playlist], error) {
			return session.Client.Playlists.List(ctx, p, l)
		}, playlistHeaders, playlistRow)
	},
}

var browsePlaylistCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse playlists interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		return browse(cmd, "playlists", func(ctx context.Context, p, l int) (*client.List[client.Playlist], error) {
			return session.Client.Playlists.List(ctx, p, l)
		}, playlistHeaders, playlistRow)
	},
}

var getPlaylistCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a playlist by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		p, err := session.Client.Playlists.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get playlist: %w", err)
		}

		fmt.Printf("ID:          %s\n", p.ID)
		fmt.Printf("Name:        %s\n", p.Name)
		fmt.Printf("Link:        %s\n", p.Link)
		fmt.Printf("Description: %s\n", p.Description)
		for _, t := range p.Tags {
			fmt.Printf("  tag: %s\n", t.Name)
		}
		return nil
	},
}

var createPlaylistCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a playlist",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		p, err := session.Client.Playlists.Create(cmd.Context(), client.CreatePlaylist{
			Name:        playlistName,
			Link:        playlistLink,
			Description: playlistDesc,
			TagIDs:      playlistTags,
		})
		if err != nil {
			return fmt.Errorf("failed to create playlist: %w", err)
		}
		fmt.Printf("Created playlist %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var updatePlaylistCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a playlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		in := client.UpdatePlaylist{}
		if cmd.Flags().Changed("name") {
			in.Name = &playlistName
		}
		if cmd.Flags().Changed("link") {
			in.Link = &playlistLink
		}
		if cmd.Flags().Changed("description") {
			in.Description = &playlistDesc
		}
		if cmd.Flags().Changed("tag") {
			in.TagIDs = playlistTags
		}

		p, err := session.Client.Playlists.Update(cmd.Context(), args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update playlist: %w", err)
		}
		fmt.Printf("Updated playlist %s\n", p.ID)
		return nil
	},
}

var deletePlaylistCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a playlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		if err := session.Client.Playlists.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete playlist: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{createPlaylistCmd, updatePlaylistCmd} {
		c.Flags().StringVar(&playlistName, "name", "", "playlist name")
		c.Flags().StringVar(&playlistLink, "link", "", "external link")
		c.Flags().StringVar(&playlistDesc, "description", "", "description")
		c.Flags().StringSliceVar(&playlistTags, "tag", nil, "tag id")
	}
	createPlaylistCmd.MarkFlagRequired("name")

	playlistCmd.AddCommand(listPlaylistCmd, browsePlaylistCmd, getPlaylistCmd, createPlaylistCmd, updatePlaylistCmd, deletePlaylistCmd)
	rootCmd.AddCommand(playlistCmd)
}
