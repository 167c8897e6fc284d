package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/multicolumn/pkg/i18n"
	"github.com/matzehuels/multicolumn/pkg/layout"
)

// presetsCommand creates the presets command.
func (c *CLI) presetsCommand() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in layout presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lang == "" {
				st, err := c.loadSettings(cmd.Context())
				if err != nil {
					return err
				}
				lang = st.Language
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), presetTable(lang))
			return err
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "language for preset titles (default from settings)")
	return cmd
}

// presetTable renders the presets with localized titles.
func presetTable(lang string) string {
	presets := layout.Presets()
	rows := make([][]string, len(presets))
	for i, p := range presets {
		ratios := "equal"
		if len(p.Ratios) > 0 {
			ratios = layout.FormatRatios(p.Ratios)
		}
		flags := strings.Join(p.Flags, ", ")
		if flags == "" {
			flags = "-"
		}
		rows[i] = []string{p.Name, i18n.Lookup(lang, p.Title), strconv.Itoa(p.Columns), ratios, flags}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Title", "Columns", "Ratios", "Flags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col >= 2:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}
