package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/ui"
	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

var chapterCmd = &cobra.Command{
	Use:   "chapter",
	Short: "Chapter commands",
}

var (
	chapterManga  string
	chapterNumber float64
	chapterTitle  string
	chapterPages  []string
)

var chapterHeaders = []string{"ID", "Number", "Title", "Views"}

func chapterRow(c client.Chapter) []string {
	return []string{
		ui.Truncate(c.ID, 12),
		strconv.FormatFloat(c.ChapterNumber, 'f', -1, 64),
		ui.Truncate(c.Title, 40),
		strconv.FormatInt(c.Views, 10),
	}
}

var listChapterCmd = &cobra.Command{
	Use:   "list",
	Short: "List chapters, optionally for one manga",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		mangaID := chapterManga
		return listOnce(cmd, func(ctx context.Context, p, l int) (*client.List[client.Chapter], error) {
			return session.Client.Chapters.List(ctx, p, l, mangaID)
		}, chapterHeaders, chapterRow)
	},
}

var browseChapterCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse chapters interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		mangaID := chapterManga
		return browse(cmd, "chapters", func(ctx context.Context, p, l int) (*client.List[client.Chapter], error) {
			return session.Client.Chapters.List(ctx, p, l, mangaID)
		}, chapterHeaders, chapterRow)
	},
}

var getChapterCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a chapter by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		c, err := session.Client.Chapters.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get chapter: %w", err)
		}

		fmt.Printf("ID:     %s\n", c.ID)
		fmt.Printf("Manga:  %s\n", c.MangaID)
		fmt.Printf("Number: %g\n", c.ChapterNumber)
		fmt.Printf("Title:  %s\n", c.Title)
		fmt.Printf("Views:  %d\n", c.Views)
		fmt.Printf("Pages:  %d\n", len(c.Pages))
		return nil
	},
}

var createChapterCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a chapter",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		c, err := session.Client.Chapters.Create(cmd.Context(), client.CreateChapter{
			MangaID:       chapterManga,
			ChapterNumber: chapterNumber,
			Title:         chapterTitle,
			Pages:         chapterPages,
		})
		if err != nil {
			return fmt.Errorf("failed to create chapter: %w", err)
		}

		fmt.Printf("Created chapter %g (%s)\n", c.ChapterNumber, c.ID)
		return nil
	},
}

var updateChapterCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		in := client.UpdateChapter{}
		if cmd.Flags().Changed("number") {
			in.ChapterNumber = &chapterNumber
		}
		if cmd.Flags().Changed("title") {
			in.Title = &chapterTitle
		}
		if cmd.Flags().Changed("pages") {
			in.Pages = chapterPages
		}

		c, err := session.Client.Chapters.Update(cmd.Context(), args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update chapter: %w", err)
		}
		fmt.Printf("Updated chapter %s\n", c.ID)
		return nil
	},
}

var deleteChapterCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		if err := session.Client.Chapters.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete chapter: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{listChapterCmd, browseChapterCmd} {
		c.Flags().StringVar(&chapterManga, "manga", "", "filter by manga id")
	}

	for _, c := range []*cobra.Command{createChapterCmd, updateChapterCmd} {
		c.Flags().StringVar(&chapterManga, "manga", "", "manga id")
		c.Flags().Float64Var(&chapterNumber, "number", 0, "chapter number")
		c.Flags().StringVar(&chapterTitle, "title", "", "chapter title")
		c.Flags().StringSliceVar(&chapterPages, "pages", nil, "page image URLs")
	}
	createChapterCmd.MarkFlagRequired("manga")
	createChapterCmd.MarkFlagRequired("number")

	chapterCmd.AddCommand(listChapterCmd, browseChapterCmd, getChapterCmd, createChapterCmd, updateChapterCmd, deleteChapterCmd)
	rootCmd.AddCommand(chapterCmd)
}
