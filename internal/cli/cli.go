// Package cli implements the jigsaw command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jigsaw/pkg/buildinfo"
	"github.com/matzehuels/jigsaw/pkg/cache"
	"github.com/matzehuels/jigsaw/pkg/history"
	"github.com/matzehuels/jigsaw/pkg/i18n"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "jigsaw"
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
	logOut io.Writer

	// Populated by the root command before any subcommand runs.
	config     Config
	configPath string
	profile    string
	noStore    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		logOut: w,
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Jigsaw turns any picture into a puzzle in your terminal",
		Long:          `Jigsaw cuts a PNG or JPEG image into a grid of pieces, scatters them around the terminal and lets you drag them back into place with the mouse.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.prepare(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/jigsaw/config.toml)")
	flags.StringVar(&c.profile, "profile", "", "keep history and language under a named profile")
	flags.BoolVar(&c.noStore, "no-store", false, "do not read or write history and language")

	// Register all subcommands
	root.AddCommand(c.playCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.langCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// newStore opens the local key-value store. It degrades to a null store when
// no directory is available, so history and language simply stop persisting.
func (c *CLI) newStore() cache.Cache {
	if c.noStore {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no store directory, history disabled", "err", err)
		return cache.NewNullCache()
	}
	store, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("could not open store, history disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return store
}

// keyer returns the keyer of the active profile.
func (c *CLI) keyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), cache.ProfilePrefix(c.config.Profile))
}

func (c *CLI) newHistory(store cache.Cache) *history.History {
	return history.New(store,
		history.WithKeyer(c.keyer()),
		history.WithMax(c.config.History.Max),
		history.WithLogger(c.Logger),
	)
}

func (c *CLI) newLocalizer(store cache.Cache) *i18n.Localizer {
	return i18n.NewLocalizer(store,
		i18n.WithKeyer(c.keyer()),
		i18n.WithFallback(c.fallbackLang()),
		i18n.WithLogger(c.Logger),
	)
}

// fallbackLang is the language used when none is stored: the config file's,
// else the environment's locale, else the default.
func (c *CLI) fallbackLang() string {
	if i18n.Known(c.config.Lang) {
		return c.config.Lang
	}
	if lang, ok := i18n.Detect(os.Getenv); ok {
		return lang
	}
	return i18n.DefaultLang
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the store directory using XDG standard (~/.cache/jigsaw/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/jigsaw/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
