package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/ui"
)

var statisticsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard overview counts (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		stats, err := session.Client.Statistics.Overview(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch statistics: %w", err)
		}

		rows := [][]string{
			{"Mangas", strconv.FormatInt(stats.Mangas, 10)},
			{"Chapters", strconv.FormatInt(stats.Chapters, 10)},
			{"Categories", strconv.FormatInt(stats.Categories, 10)},
			{"Languages", strconv.FormatInt(stats.Languages, 10)},
			{"Tags", strconv.FormatInt(stats.Tags, 10)},
			{"Playlists", strconv.FormatInt(stats.Playlists, 10)},
			{"Wallpapers", strconv.FormatInt(stats.Wallpapers, 10)},
			{"Notifications", strconv.FormatInt(stats.Notifications, 10)},
			{"Users", strconv.FormatInt(stats.Users, 10)},
		}
		fmt.Println(ui.RenderTable([]string{"Entity", "Count"}, rows))

		if len(stats.MangasByStatus) > 0 {
			statusRows := make([][]string, 0, len(stats.MangasByStatus))
			for status, count := range stats.MangasByStatus {
				statusRows = append(statusRows, []string{status, strconv.FormatInt(count, 10)})
			}
			fmt.Println(ui.RenderTable([]string{"Manga status", "Count"}, statusRows))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statisticsCmd)
}
