package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/multicolumn/pkg/layout"
	"github.com/matzehuels/multicolumn/pkg/observability"
	"github.com/matzehuels/multicolumn/pkg/settings"
)

const defaultColumns = 2

// blockOpts holds the flags that select a block. Exactly one of preset,
// ratios or columns decides the shape; flags and bordered add metadata.
type blockOpts struct {
	columns  int      // equal-width column count
	ratios   string   // custom ratios such as "30/70"
	preset   string   // built-in preset name
	flags    []string // extra container metadata flags
	bordered bool     // shorthand for --flag bordered
}

// bind registers the block flags on cmd.
func (o *blockOpts) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&o.columns, "columns", "c", defaultColumns, "number of equal-width columns")
	f.StringVarP(&o.ratios, "ratios", "r", "", `custom column ratios summing to 100 (e.g. "30/70")`)
	f.StringVarP(&o.preset, "preset", "p", "", "built-in preset (see 'multicolumn presets')")
	f.StringArrayVar(&o.flags, "flag", nil, "extra container metadata flag (repeatable)")
	f.BoolVar(&o.bordered, "bordered", false, "draw dividers between columns")
	cmd.MarkFlagsMutuallyExclusive("columns", "ratios", "preset")

	_ = cmd.RegisterFlagCompletionFunc("preset", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		presets := layout.Presets()
		names := make([]string, len(presets))
		for i, p := range presets {
			names[i] = p.Name
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// extraFlags returns the metadata flags requested on the command line.
func (o *blockOpts) extraFlags() []string {
	flags := append([]string(nil), o.flags...)
	if o.bordered {
		flags = append(flags, layout.FlagBordered)
	}
	return flags
}

// source names how the options choose the block shape.
func (o *blockOpts) source() string {
	switch {
	case o.preset != "":
		return observability.SourcePreset
	case o.ratios != "":
		return observability.SourceCustom
	}
	return observability.SourceColumns
}

// request builds the generation request, with the horizontal divider setting
// applied to its flags.
func (o *blockOpts) request(st settings.Settings) (layout.Request, error) {
	var req layout.Request
	switch {
	case o.preset != "":
		p, err := layout.PresetByName(o.preset)
		if err != nil {
			return layout.Request{}, err
		}
		req = p.Request()
	case o.ratios != "":
		ratios, err := layout.ParseRatios(o.ratios)
		if err != nil {
			return layout.Request{}, err
		}
		req = layout.Request{Columns: len(ratios), Ratios: ratios}
	default:
		req = layout.Request{Columns: o.columns}
	}
	return withFlags(req, st, o.extraFlags()...)
}

// withFlags appends extra flags and the settings-derived flags to req and
// validates the result.
func withFlags(req layout.Request, st settings.Settings, extra ...string) (layout.Request, error) {
	req.Flags = st.MetadataFlags(req.Flags.Add(extra...)...)
	if err := req.Flags.Validate(); err != nil {
		return layout.Request{}, err
	}
	return req, nil
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts blockOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a multi-column callout block",
		Long: `Print a multi-column callout block to stdout.

The block shape comes from a preset, custom ratios, or a column count.
The horizontal divider setting adds the "horizontal" flag automatically.`,
		Example: `  multicolumn generate -c 3
  multicolumn generate -r 30/70 --bordered
  multicolumn generate -p sidebar-left`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.loadSettings(ctx)
			if err != nil {
				return err
			}
			req, err := opts.request(st)
			if err != nil {
				observability.Blocks().OnGenerate(ctx, opts.source(), 0, err)
				return err
			}
			block, err := layout.GenerateRequest(req)
			observability.Blocks().OnGenerate(ctx, opts.source(), req.Columns, err)
			if err != nil {
				return err
			}

			loggerFromContext(ctx).Debug("Generated block", "columns", req.Columns, "flags", req.Flags, "lines", block.Len())
			_, err = fmt.Fprint(cmd.OutOrStdout(), block.String())
			return err
		},
	}

	opts.bind(cmd)
	return cmd
}
