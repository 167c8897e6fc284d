package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/multicolumn/pkg/errors"
	"github.com/matzehuels/multicolumn/pkg/observability"
	"github.com/matzehuels/multicolumn/pkg/width"
	"github.com/matzehuels/multicolumn/pkg/width/htmldoc"
)

// widthsCommand creates the widths command, the render pass over HTML
// produced by a callout-aware markdown renderer.
func (c *CLI) widthsCommand() *cobra.Command {
	var output string
	var noDivider bool

	cmd := &cobra.Command{
		Use:   "widths <file.html|->",
		Short: "Apply declared column widths to rendered HTML",
		Long: `Apply declared column widths to rendered HTML.

Every column callout whose metadata is a width between 1 and 100 gets an
inline "flex: 0 0 N%; min-width: 0" style. Multi-column containers also
receive the divider settings as CSS custom properties. Use "-" to read
from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			in, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			doc, err := htmldoc.Parse(bytes.NewReader(in))
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", args[0])
			}

			columns := len(doc.Columns())
			styled := width.Apply(doc)
			if !noDivider {
				st, err := c.loadSettings(ctx)
				if err != nil {
					return err
				}
				doc.StyleContainers(st.CSSVariables())
			}

			var buf bytes.Buffer
			if err := doc.Render(&buf); err != nil {
				return fmt.Errorf("render HTML: %w", err)
			}
			observability.Render().OnRenderPass(ctx, columns, styled, time.Since(prog.start))
			prog.done(fmt.Sprintf("Styled %d of %d columns", styled, columns))

			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Styled %d columns", styled)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noDivider, "no-divider", false, "skip the divider CSS variables on containers")
	return cmd
}

// readInput reads path, or the command's stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "file %s does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
