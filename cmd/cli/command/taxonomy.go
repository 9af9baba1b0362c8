package command

// category, language and tag share the same small CRUD shape, so their
// commands live together.

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/ui"
	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

var (
	taxonomyName string
	taxonomyDesc string
	languageCode string
	tagColor     string
)

// categories

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Category commands",
}

var listCategoryCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		return listOnce(cmd, func(ctx context.Context, p, l int) (*client.List[client.Category], error) {
			return session.Client.Categories.List(ctx, p, l)
		}, []string{"ID", "Name", "Description"}, func(c client.Category) []string {
			return []string{ui.Truncate(c.ID, 12), c.Name, ui.Truncate(c.Description, 40)}
		})
	},
}

var createCategoryCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		c, err := session.Client.Categories.Create(cmd.Context(), client.CreateCategory{
			Name:        taxonomyName,
			Description: taxonomyDesc,
		})
		if err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		fmt.Printf("Created category %s (%s)\n", c.Name, c.ID)
		return nil
	},
}

var updateCategoryCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		in := client.UpdateCategory{}
		if cmd.Flags().Changed("name") {
			in.Name = &taxonomyName
		}
		if cmd.Flags().Changed("description") {
			in.Description = &taxonomyDesc
		}

		c, err := session.Client.Categories.Update(cmd.Context(), args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update category: %w", err)
		}
		fmt.Printf("Updated category %s\n", c.ID)
		return nil
	},
}

var deleteCategoryCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		if err := session.Client.Categories.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

// languages

var languageCmd = &cobra.Command{
	Use:   "language",
	Short: "Language commands",
}

var listLanguageCmd = &cobra.Command{
	Use:   "list",
	Short: "List languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		return listOnce(cmd, func(ctx context.Context, p, l int) (*client.List[client.Language], error) {
			return session.Client.Languages.List(ctx, p, l)
		}, []string{"ID", "Name", "Code"}, func(lang client.Language) []string {
			return []string{ui.Truncate(lang.ID, 12), lang.Name, lang.Code}
		})
	},
}

var createLanguageCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a language",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		lang, err := session.Client.Languages.Create(cmd.Context(), client.CreateLanguage{
			Name: taxonomyName,
			Code: languageCode,
		})
		if err != nil {
			return fmt.Errorf("failed to create language: %w", err)
		}
		fmt.Printf("Created language %s (%s)\n", lang.Name, lang.ID)
		return nil
	},
}

var updateLanguageCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		in := client.UpdateLanguage{}
		if cmd.Flags().Changed("name") {
			in.Name = &taxonomyName
		}
		if cmd.Flags().Changed("code") {
			in.Code = &languageCode
		}

		lang, err := session.Client.Languages.Update(cmd.Context(), args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update language: %w", err)
		}
		fmt.Printf("Updated language %s\n", lang.ID)
		return nil
	},
}

var deleteLanguageCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		if err := session.Client.Languages.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete language: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

// tags

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Tag commands",
}

var listTagCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		return listOnce(cmd, func(ctx context.Context, p, l int) (*client.List[client.Tag], error) {
			return session.Client.Tags.List(ctx, p, l)
		}, []string{"ID", "Name", "Color"}, func(t client.Tag) []string {
			color := ""
			if t.Color != nil {
				color = *t.Color
			}
			return []string{ui.Truncate(t.ID, 12), t.Name, color}
		})
	},
}

var createTagCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tag",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		in := client.CreateTag{Name: taxonomyName}
		if cmd.Flags().Changed("color") {
			in.Color = &tagColor
		}

		t, err := session.Client.Tags.Create(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("failed to create tag: %w", err)
		}
		fmt.Printf("Created tag %s (%s)\n", t.Name, t.ID)
		return nil
	},
}

var updateTagCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		in := client.UpdateTag{}
		if cmd.Flags().Changed("name") {
			in.Name = &taxonomyName
		}
		if cmd.Flags().Changed("color") {
			in.Color = &tagColor
		}

		t, err := session.Client.Tags.Update(cmd.Context(), args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update tag: %w", err)
		}
		fmt.Printf("Updated tag %s\n", t.ID)
		return nil
	},
}

var deleteTagCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}
		if err := session.Client.Tags.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete tag: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{createCategoryCmd, updateCategoryCmd} {
		c.Flags().StringVar(&taxonomyName, "name", "", "category name")
		c.Flags().StringVar(&taxonomyDesc, "description", "", "category description")
	}
	createCategoryCmd.MarkFlagRequired("name")
	categoryCmd.AddCommand(listCategoryCmd, createCategoryCmd, updateCategoryCmd, deleteCategoryCmd)

	for _, c := range []*cobra.Command{createLanguageCmd, updateLanguageCmd} {
		c.Flags().StringVar(&taxonomyName, "name", "", "language name")
		c.Flags().StringVar(&languageCode, "code", "", "ISO code, e.g. en or pt-br")
	}
	createLanguageCmd.MarkFlagRequired("name")
	createLanguageCmd.MarkFlagRequired("code")
	languageCmd.AddCommand(listLanguageCmd, createLanguageCmd, updateLanguageCmd, deleteLanguageCmd)

	for _, c := range []*cobra.Command{createTagCmd, updateTagCmd} {
		c.Flags().StringVar(&taxonomyName, "name", "", "tag name")
		c.Flags().StringVar(&tagColor, "color", "", "hex color, e.g. #ff0000")
	}
	createTagCmd.MarkFlagRequired("name")
	tagCmd.AddCommand(listTagCmd, createTagCmd, updateTagCmd, deleteTagCmd)

	rootCmd.AddCommand(categoryCmd, languageCmd, tagCmd)
}
