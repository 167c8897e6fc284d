package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/multicolumn/pkg/i18n"
	"github.com/matzehuels/multicolumn/pkg/settings"
)

// settingLabels maps setting keys to their localized labels.
var settingLabels = map[string]i18n.Key{
	"language":           i18n.KeySettingLanguage,
	"horizontal_divider": i18n.KeySettingHorizontal,
	"divider_width":      i18n.KeySettingDividerWidth,
	"divider_style":      i18n.KeySettingDividerStyle,
	"divider_color":      i18n.KeySettingDividerColor,
}

// settingsCommand creates the settings management command.
func (c *CLI) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change stored settings",
	}

	cmd.AddCommand(c.settingsShowCommand())
	cmd.AddCommand(c.settingsSetCommand())
	cmd.AddCommand(c.settingsPathCommand())
	cmd.AddCommand(c.settingsResetCommand())

	return cmd
}

// settingsShowCommand creates the "settings show" subcommand.
func (c *CLI) settingsShowCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.loadSettings(cmd.Context())
			if err != nil {
				return err
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), st.String())
				return err
			}
			for _, k := range settings.Keys() {
				v, _ := st.Get(k)
				printKeyValue(i18n.Lookup(st.Language, settingLabels[k]), v)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, `print plain "key = value" lines`)
	return cmd
}

// settingsSetCommand creates the "settings set" subcommand.
func (c *CLI) settingsSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Change a setting",
		Long:      "Change a setting. Keys: language, horizontal_divider, divider_width, divider_style, divider_color.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: settings.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.settingsStore()
			if err != nil {
				return err
			}
			st, err := store.Load(ctx)
			if err != nil {
				return err
			}
			if err := st.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := store.Save(ctx, st); err != nil {
				return err
			}

			v, _ := st.Get(args[0])
			loggerFromContext(ctx).Debug("Saved settings", "path", store.Path())
			printSuccess("%s = %s", args[0], StyleHighlight.Render(v))
			return nil
		},
	}
}

// settingsPathCommand creates the "settings path" subcommand.
func (c *CLI) settingsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.settingsStore()
			if err != nil {
				return fmt.Errorf("get settings dir: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return err
		},
	}
}

// settingsResetCommand creates the "settings reset" subcommand.
func (c *CLI) settingsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.settingsStore()
			if err != nil {
				return err
			}
			if err := store.Reset(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Settings reset to defaults")
			printDetail("File: %s", store.Path())
			return nil
		},
	}
}
