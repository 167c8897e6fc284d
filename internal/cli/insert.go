package cli

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/matzehuels/multicolumn/pkg/editor"
	"github.com/matzehuels/multicolumn/pkg/errors"
	"github.com/matzehuels/multicolumn/pkg/i18n"
	"github.com/matzehuels/multicolumn/pkg/layout"
	"github.com/matzehuels/multicolumn/pkg/observability"
	"github.com/matzehuels/multicolumn/pkg/settings"
)

// insertOpts holds the command-line flags for the insert command.
type insertOpts struct {
	blockOpts
	at          string // one-based "line[:ch]" insertion point, default end of file
	interactive bool   // choose the layout with the picker
	dryRun      bool   // print the result instead of writing the file
}

// insertCommand creates the insert command.
func (c *CLI) insertCommand() *cobra.Command {
	var opts insertOpts

	cmd := &cobra.Command{
		Use:   "insert <file>",
		Short: "Insert a multi-column block into a markdown file",
		Long: `Insert a multi-column callout block into a markdown file.

The block goes at --at (one-based "line" or "line:ch"), or at the end of the
file. With --interactive, a picker offers the presets and a custom ratio entry.
The command reports where the cursor lands: the first column's content line.`,
		Example: `  multicolumn insert notes.md -p two-divider
  multicolumn insert notes.md --at 12 -r 25/50/25
  multicolumn insert notes.md -i`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInsert(cmd, args[0], opts)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.at, "at", "", `insertion point as "line" or "line:ch" (one-based)`)
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the layout interactively")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the updated document instead of writing it")
	cmd.MarkFlagsMutuallyExclusive("interactive", "preset")
	cmd.MarkFlagsMutuallyExclusive("interactive", "ratios")
	cmd.MarkFlagsMutuallyExclusive("interactive", "columns")

	return cmd
}

func (c *CLI) runInsert(cmd *cobra.Command, path string, opts insertOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := errors.ValidateDocumentPath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s does not exist", path)
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	st, err := c.loadSettings(ctx)
	if err != nil {
		return err
	}

	buf := editor.NewBuffer(string(data))
	if err := placeCursor(buf, opts.at); err != nil {
		return err
	}

	req, ok, err := c.insertRequest(ctx, opts, st)
	if err != nil {
		return err
	}
	if !ok {
		printDetail("No selection made")
		return nil
	}

	at := buf.Cursor()
	pos, err := editor.InsertLayout(buf, req)
	observability.Blocks().OnInsert(ctx, req.Columns, at.Line, err)
	if errors.Is(err, errors.ErrCodeNoActiveTarget) {
		printWarning("%s", i18n.Lookup(st.Language, i18n.KeyNoticeNoEditor))
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("Inserted block", "at", at, "cursor", pos, "columns", req.Columns)

	if opts.dryRun {
		_, err := fmt.Fprint(cmd.OutOrStdout(), buf.String())
		return err
	}
	if err := os.WriteFile(path, []byte(buf.String()), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("%s", i18n.Format(st.Language, i18n.KeyNoticeInserted, req.Columns, at.Line+1))
	printDetail("Cursor: %s", pos)
	printFile(path)
	return nil
}

// insertRequest returns the request chosen by flags or by the picker. It
// reports false when the picker was dismissed.
func (c *CLI) insertRequest(ctx context.Context, opts insertOpts, st settings.Settings) (layout.Request, bool, error) {
	if !opts.interactive {
		req, err := opts.request(st)
		observability.Blocks().OnGenerate(ctx, opts.source(), req.Columns, err)
		return req, err == nil, err
	}
	req, ok, err := runPicker(ctx, st.Language)
	if err != nil || !ok {
		return layout.Request{}, false, err
	}
	req, err = withFlags(req, st, opts.extraFlags()...)
	observability.Blocks().OnGenerate(ctx, observability.SourcePicker, req.Columns, err)
	return req, err == nil, err
}

// placeCursor moves the buffer cursor to the one-based position in at, or to
// the end of the document when at is empty. A document that does not end in
// a newline gets one first, so an appended block starts on its own line.
func placeCursor(buf *editor.Buffer, at string) error {
	if at == "" {
		last := buf.LineCount() - 1
		buf.SetCursor(editor.Position{Line: last, Ch: utf8.RuneCountInString(buf.Line(last))})
		if buf.Line(last) != "" {
			return buf.ReplaceSelection("\n")
		}
		return nil
	}
	pos, err := editor.ParsePosition(at)
	if err != nil {
		return err
	}
	return buf.Select(pos, pos)
}
