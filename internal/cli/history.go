package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jigsaw/pkg/i18n"
	"github.com/matzehuels/jigsaw/pkg/picture"
)

// historyCommand creates the history management command.
func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage recently played images",
	}

	cmd.AddCommand(c.historyListCommand())
	cmd.AddCommand(c.historyClearCommand())
	cmd.AddCommand(c.historyPathCommand())

	return cmd
}

// historyListCommand creates the "history list" subcommand.
func (c *CLI) historyListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recently played images",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := c.newStore()
			defer store.Close()
			loc := c.newLocalizer(store)

			entries := c.newHistory(store).List(ctx)
			if len(entries) == 0 {
				printInfo("%s", loc.T(ctx, "historyEmpty", nil))
				printNextStep("Play a puzzle", appName+" play <image>")
				return nil
			}

			t := newTable("#", "Name", "Type", "Size", "Bytes")
			for i, r := range historyRows(ctx, loc, entries) {
				t.Row(strconv.Itoa(i+1), r.Label, r.MIME, r.Size, r.Bytes)
			}

			fmt.Println(StyleTitle.Render(loc.T(ctx, "historyTitle", nil)))
			fmt.Println(t.Render())
			printNextStep("Play one again", appName+" play --from-history 1")
			return nil
		},
	}
}

// historyRows describes history entries for display. Entries that do not
// decode are kept so the numbering matches --from-history.
func historyRows(ctx context.Context, loc *i18n.Localizer, entries []string) []historyRow {
	rows := make([]historyRow, len(entries))
	for i, entry := range entries {
		rows[i].Label = loc.T(ctx, "savedN", i18n.Params{"n": i + 1})
		img, err := picture.ParseDataURL(entry)
		if err != nil {
			rows[i].MIME = StyleWarning.Render("unreadable")
			continue
		}
		rows[i].MIME = img.MIME
		rows[i].Size = img.Size().String()
		rows[i].Bytes = strconv.Itoa(len(img.Data))
	}
	return rows
}

// historyClearCommand creates the "history clear" subcommand.
func (c *CLI) historyClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget all recently played images",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := c.newStore()
			defer store.Close()

			h := c.newHistory(store)
			count := len(h.List(ctx))
			if err := h.Clear(ctx); err != nil {
				return err
			}
			printSuccess("%s", c.newLocalizer(store).T(ctx, "historyCleared", nil))
			printDetail("Removed %d entries", count)
			return nil
		},
	}
}

// historyPathCommand creates the "history path" subcommand.
func (c *CLI) historyPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the store directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get store dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
