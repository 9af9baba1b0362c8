package command

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/ui"
	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

// browse runs an interactive pager over any entity list. Pages come out of
// the client-side query cache, with the following page prefetched in the
// background, so flipping back and forth is instant.
func browse[T any](cmd *cobra.Command, entity string, list client.ListFunc[T], headers []string, row func(T) []string) error {
	cache := client.NewQueryCache(5 * time.Minute)
	b := client.NewBrowser(entity, limit, list, cache, client.WithPrefetch[T]())

	ctx := cmd.Context()
	if err := b.GoToPage(ctx, page); err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		rows := make([][]string, 0, len(b.Items()))
		for _, item := range b.Items() {
			rows = append(rows, row(item))
		}
		fmt.Println(ui.RenderTable(headers, rows))
		fmt.Println(ui.RenderFooter(b.Pagination()))
		fmt.Print("[n]ext [p]rev [g N] goto [r]efresh [q]uit > ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}

		switch input := strings.TrimSpace(line); {
		case input == "q":
			return nil
		case input == "n":
			err = b.Next(ctx)
		case input == "p":
			err = b.Prev(ctx)
		case input == "r":
			err = b.Refresh(ctx)
		case strings.HasPrefix(input, "g "):
			target, convErr := strconv.Atoi(strings.TrimPrefix(input, "g "))
			if convErr != nil {
				fmt.Println("usage: g <page>")
				continue
			}
			err = b.GoToPage(ctx, target)
		default:
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "load failed:", err)
		}
	}
}

// listOnce prints a single page without the interactive loop.
func listOnce[T any](cmd *cobra.Command, list client.ListFunc[T], headers []string, row func(T) []string) error {
	result, err := list(cmd.Context(), page, limit)
	if err != nil {
		return err
	}

	if len(result.Data) == 0 {
		fmt.Println("Nothing found.")
		return nil
	}

	rows := make([][]string, 0, len(result.Data))
	for _, item := range result.Data {
		rows = append(rows, row(item))
	}
	fmt.Println(ui.RenderTable(headers, rows))
	fmt.Println(ui.RenderFooter(result.Pagination))
	return nil
}
