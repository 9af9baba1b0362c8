package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/ui"
	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

var wallpaperCmd = &cobra.Command{
	Use:   "wallpaper",
	Short: "Wallpaper commands",
}

var (
	wallpaperName  string
	wallpaperCover string
)

var listWallpaperCmd = &cobra.Command{
	Use:   "list",
	Short: "List wallpapers",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		return listOnce(cmd, func(ctx context.Context, p, l int) (*client.List[client.Wallpaper], error) {
			return session.Client.Wallpapers.List(ctx, p, l)
		}, []string{"ID", "Name", "Images"}, func(w client.Wallpaper) []string {
			return []string{ui.Truncate(w.ID, 12), ui.Truncate(w.Name, 40), strconv.FormatInt(w.TotalImages, 10)}
		})
	},
}

var imagesWallpaperCmd = &cobra.Command{
	Use:   "images [id]",
	Short: "List the images of a wallpaper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		id := args[0]
		return listOnce(cmd, func(ctx context.Context, p, l int) (*client.List[client.WallpaperImage], error) {
			return session.Client.Wallpapers.ListImages(ctx, id, p, l)
		}, []string{"ID", "URL"}, func(img client.WallpaperImage) []string {
			return []string{ui.Truncate(img.ID, 12), ui.Truncate(img.URL, 60)}
		})
	},
}

var createWallpaperCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a wallpaper",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		w, err := session.Client.Wallpapers.Create(cmd.Context(), client.CreateWallpaper{
			Name:  wallpaperName,
			Cover: wallpaperCover,
		})
		if err != nil {
			return fmt.Errorf("failed to create wallpaper: %w", err)
		}
		fmt.Printf("Created wallpaper %s (%s)\n", w.Name, w.ID)
		return nil
	},
}

var updateWallpaperCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a wallpaper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		in := client.UpdateWallpaper{}
		if cmd.Flags().Changed("name") {
			in.Name = &wallpaperName
		}
		if cmd.Flags().Changed("cover") {
			in.Cover = &wallpaperCover
		}

		w, err := session.Client.Wallpapers.Update(cmd.Context(), args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update wallpaper: %w", err)
		}
		fmt.Printf("Updated wallpaper %s\n", w.ID)
		return nil
	},
}

var deleteWallpaperCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a wallpaper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		if err := session.Client.Wallpapers.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete wallpaper: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

var addImageCmd = &cobra.Command{
	Use:   "add-image [id] [url]",
	Short: "Attach an image to a wallpaper",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		img, err := session.Client.Wallpapers.AddImage(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to add image: %w", err)
		}
		fmt.Printf("Added image %s\n", img.ID)
		return nil
	},
}

var removeImageCmd = &cobra.Command{
	Use:   "remove-image [id] [imageID]",
	Short: "Remove an image from a wallpaper",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		if err := session.Client.Wallpapers.DeleteImage(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to remove image: %w", err)
		}
		fmt.Println("Removed.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{createWallpaperCmd, updateWallpaperCmd} {
		c.Flags().StringVar(&wallpaperName, "name", "", "wallpaper name")
		c.Flags().StringVar(&wallpaperCover, "cover", "", "cover image URL")
	}
	createWallpaperCmd.MarkFlagRequired("name")

	wallpaperCmd.AddCommand(listWallpaperCmd, imagesWallpaperCmd, createWallpaperCmd, updateWallpaperCmd, deleteWallpaperCmd, addImageCmd, removeImageCmd)
	rootCmd.AddCommand(wallpaperCmd)
}
