package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/ui"
	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

var mangaCmd = &cobra.Command{
	Use:   "manga",
	Short: "Manga catalog commands",
	Long:  `List, browse, inspect, create, update and delete mangas`,
}

var (
	mangaSearch     string
	mangaStatus     string
	mangaType       string
	mangaCategories []string
	mangaLanguage   string

	mangaCover string
	mangaUUID  string
	mangaName  string
	mangaDesc  string
	mangaLang  string
	mangaCats  []string
	mangaLangs []string
)

func mangaFilters() client.MangaFilters {
	return client.MangaFilters{
		Search:      mangaSearch,
		Status:      mangaStatus,
		Type:        mangaType,
		CategoryIDs: mangaCategories,
		Language:    mangaLanguage,
	}
}

var mangaHeaders = []string{"ID", "Title", "Status", "Type", "Categories"}

func mangaRow(m client.Manga) []string {
	categories := make([]string, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, c.Name)
	}
	return []string{
		ui.Truncate(m.ID, 12),
		ui.Truncate(m.Title, 40),
		m.Status,
		m.Type,
		ui.Truncate(strings.Join(categories, ", "), 30),
	}
}

var listMangaCmd = &cobra.Command{
	Use:   "list",
	Short: "List mangas",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		filters := mangaFilters()
		return listOnce(cmd, func(ctx context.Context, p, l int) (*client.List[client.Manga], error) {
			return session.Client.Mangas.List(ctx, p, l, filters)
		}, mangaHeaders, mangaRow)
	},
}

var browseMangaCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse mangas interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		filters := mangaFilters()
		return browse(cmd, "mangas", func(ctx context.Context, p, l int) (*client.List[client.Manga], error) {
			return session.Client.Mangas.List(ctx, p, l, filters)
		}, mangaHeaders, mangaRow)
	},
}

var getMangaCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a manga by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		m, err := session.Client.Mangas.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get manga: %w", err)
		}
		printManga(m)
		return nil
	},
}

func printManga(m *client.Manga) {
	fmt.Printf("ID:          %s\n", m.ID)
	fmt.Printf("UUID:        %s\n", m.MangaUUID)
	fmt.Printf("Title:       %s\n", m.Title)
	fmt.Printf("Status:      %s\n", m.Status)
	fmt.Printf("Type:        %s\n", m.Type)
	if m.Description != "" {
		fmt.Printf("Description: %s\n", m.Description)
	}
	for _, t := range m.Translations {
		fmt.Printf("  [%s] %s\n", t.Language, t.Name)
	}
}

var createMangaCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a manga",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		m, err := session.Client.Mangas.Create(cmd.Context(), client.CreateManga{
			Cover:       mangaCover,
			Status:      mangaStatus,
			Type:        mangaType,
			MangaUUID:   mangaUUID,
			CategoryIDs: mangaCats,
			LanguageIDs: mangaLangs,
			Translations: []client.TranslationInput{
				{Language: mangaLang, Name: mangaName, Description: mangaDesc},
			},
		})
		if err != nil {
			return fmt.Errorf("failed to create manga: %w", err)
		}

		fmt.Printf("Created manga %s (%s)\n", m.Title, m.ID)
		return nil
	},
}

var updateMangaCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a manga",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		in := client.UpdateManga{}
		if cmd.Flags().Changed("cover") {
			in.Cover = &mangaCover
		}
		if cmd.Flags().Changed("status") {
			in.Status = &mangaStatus
		}
		if cmd.Flags().Changed("type") {
			in.Type = &mangaType
		}
		if cmd.Flags().Changed("category") {
			in.CategoryIDs = mangaCats
		}
		if cmd.Flags().Changed("language") {
			in.LanguageIDs = mangaLangs
		}
		if cmd.Flags().Changed("name") || cmd.Flags().Changed("description") {
			in.Translations = []client.TranslationInput{
				{Language: mangaLang, Name: mangaName, Description: mangaDesc},
			}
		}

		m, err := session.Client.Mangas.Update(cmd.Context(), args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update manga: %w", err)
		}

		fmt.Printf("Updated manga %s\n", m.ID)
		return nil
	},
}

var deleteMangaCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a manga",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		if err := session.Client.Mangas.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete manga: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{listMangaCmd, browseMangaCmd} {
		c.Flags().StringVar(&mangaSearch, "search", "", "search by title")
		c.Flags().StringVar(&mangaStatus, "status", "", "filter by status")
		c.Flags().StringVar(&mangaType, "type", "", "filter by type")
		c.Flags().StringSliceVar(&mangaCategories, "category", nil, "filter by category id")
		c.Flags().StringVar(&mangaLanguage, "language", "", "filter by language code")
	}

	for _, c := range []*cobra.Command{createMangaCmd, updateMangaCmd} {
		c.Flags().StringVar(&mangaCover, "cover", "", "cover image URL")
		c.Flags().StringVar(&mangaStatus, "status", "ongoing", "status: ongoing, completed, hiatus")
		c.Flags().StringVar(&mangaType, "type", "manga", "type: manga, manhwa, manhua, webtoon")
		c.Flags().StringVar(&mangaUUID, "uuid", "", "external manga UUID")
		c.Flags().StringVar(&mangaName, "name", "", "title in --lang")
		c.Flags().StringVar(&mangaDesc, "description", "", "description in --lang")
		c.Flags().StringVar(&mangaLang, "lang", "en", "translation language code")
		c.Flags().StringSliceVar(&mangaCats, "category", nil, "category id")
		c.Flags().StringSliceVar(&mangaLangs, "language", nil, "language id")
	}
	createMangaCmd.MarkFlagRequired("name")

	mangaCmd.AddCommand(listMangaCmd, browseMangaCmd, getMangaCmd, createMangaCmd, updateMangaCmd, deleteMangaCmd)
	rootCmd.AddCommand(mangaCmd)
}
