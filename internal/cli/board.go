package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pinwall/pinwall/pkg/board"
	"github.com/pinwall/pinwall/pkg/store"
)

// boardCommand creates the board management command.
func (c *CLI) boardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage saved boards",
	}

	cmd.AddCommand(c.boardNewCommand())
	cmd.AddCommand(c.boardShowCommand())
	cmd.AddCommand(c.boardListCommand())
	cmd.AddCommand(c.boardRmCommand())

	return cmd
}

// boardNewCommand creates the "board new" subcommand.
func (c *CLI) boardNewCommand() *cobra.Command {
	var title string
	var fromFile string

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a saved board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			st, err := newStore()
			if err != nil {
				return err
			}
			defer st.Close()

			b := board.Board{Title: title}
			if fromFile != "" {
				b, err = board.ReadFile(fromFile)
				if err != nil {
					return fmt.Errorf("read board: %w", err)
				}
				if title != "" {
					b.Title = title
				}
			}
			if b.Title == "" {
				b.Title = name
			}

			if err := st.Set(cmd.Context(), store.NewRecord(name, b)); err != nil {
				return err
			}
			printSuccess("Saved board %q (%d notes)", name, len(b.Items))
			printNextStep("Show it", fmt.Sprintf("pinwall board show %s", name))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "board title (default: the name)")
	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "import items from a board JSON file")

	return cmd
}

// boardShowCommand creates the "board show" subcommand.
func (c *CLI) boardShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show a saved board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			st, err := newStore()
			if err != nil {
				return err
			}
			defer st.Close()

			rec, err := st.Get(cmd.Context(), name)
			if err != nil {
				return err
			}
			if rec == nil {
				printError("Board %q not found", name)
				return fmt.Errorf("board %q not found", name)
			}

			if asJSON {
				return board.Write(rec.Board, cmd.OutOrStdout())
			}

			printKeyValue("Name", rec.Name)
			printKeyValue("Title", rec.Board.Title)
			printKeyValue("Size", fmt.Sprintf("%.0f x %.0f", rec.Board.Width, rec.Board.Height))
			printKeyValue("Updated", rec.UpdatedAt.Local().Format("Jan 2, 2006 15:04"))
			printNewline()

			anchors := len(board.Anchors(rec.Board.Items))
			printStats(anchors, len(rec.Board.Items)-anchors, false)
			printNewline()
			fmt.Println(renderItemTable(rec.Board.Items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw board JSON")

	return cmd
}

// boardListCommand creates the "board list" subcommand.
func (c *CLI) boardListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newStore()
			if err != nil {
				return err
			}
			defer st.Close()

			records, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				printInfo("No saved boards")
				printNextStep("Create one", "pinwall board new roadmap -f board.json")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.Name,
					rec.Board.Title,
					strconv.Itoa(len(rec.Board.Items)),
					rec.UpdatedAt.Local().Format("Jan 2, 2006 15:04"),
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Name", "Title", "Notes", "Updated").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 0 {
						return StyleHighlight
					}
					return StyleValue
				})
			fmt.Println(t.Render())
			return nil
		},
	}
}

// boardRmCommand creates the "board rm" subcommand.
func (c *CLI) boardRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [name]",
		Short: "Delete a saved board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			st, err := newStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), name); err != nil {
				return err
			}
			printSuccess("Deleted board %q", name)
			return nil
		},
	}
}

// renderItemTable renders board items as a table, anchors first.
func renderItemTable(items []board.Item) string {
	ordered := append(board.Anchors(items), board.Ideas(items)...)

	rows := make([][]string, 0, len(ordered))
	for _, it := range ordered {
		rows = append(rows, []string{
			string(it.Kind),
			it.Label,
			fmt.Sprintf("%.0f, %.0f", it.X, it.Y),
			strconv.Itoa(len(it.Connections)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Label", "Position", "Strings").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}
