package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/multicolumn/pkg/buildinfo"
	"github.com/matzehuels/multicolumn/pkg/settings"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "multicolumn"

	// defaultAddr is the listen address of the serve command.
	defaultAddr = "127.0.0.1:8731"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// SettingsDir overrides the settings directory. Empty means the XDG
	// default.
	SettingsDir string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Multicolumn generates multi-column callout layouts for markdown notes",
		Long: `Multicolumn generates "> [!multi-column]" callout blocks for markdown notes,
inserts them into documents at a cursor position, and applies declared column
widths to rendered HTML.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.insertCommand())
	root.AddCommand(c.widthsCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.settingsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// settingsStore opens the settings file store.
func (c *CLI) settingsStore() (*settings.FileStore, error) {
	return settings.NewFileStore(c.SettingsDir)
}

// loadSettings reads the stored settings, logging where they came from.
func (c *CLI) loadSettings(ctx context.Context) (settings.Settings, error) {
	store, err := c.settingsStore()
	if err != nil {
		return settings.Settings{}, err
	}
	st, err := store.Load(ctx)
	if err != nil {
		return settings.Settings{}, err
	}
	loggerFromContext(ctx).Debug("Loaded settings", "path", store.Path(), "language", st.Language)
	return st, nil
}
