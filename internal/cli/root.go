package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jigsaw/pkg/buildinfo"
	"github.com/matzehuels/jigsaw/pkg/observability"
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time. Empty values keep the current ones.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2025-12-20T14:32:01Z")
func SetVersion(v, c, d string) {
	if v != "" {
		buildinfo.Version = v
	}
	if c != "" {
		buildinfo.Commit = c
	}
	if d != "" {
		buildinfo.Date = d
	}
}

// prepare runs before every subcommand: it loads the config file, applies
// the global flags over it, attaches the logger to the command context and
// registers log-backed observability hooks.
func (c *CLI) prepare(cmd *cobra.Command) error {
	path, required := c.configPath, c.configPath != ""
	if !required {
		p, err := defaultConfigPath()
		if err != nil {
			c.Logger.Debug("no config directory", "err", err)
		}
		path = p
	}

	if path != "" {
		cfg, unknown, err := loadConfig(path, required)
		if err != nil {
			return err
		}
		if len(unknown) > 0 {
			c.Logger.Warn("ignoring unknown config keys", "file", path, "keys", strings.Join(unknown, ", "))
		}
		c.config = cfg
		c.Logger.Debug("config loaded", "file", path)
	}
	if cmd.Flags().Changed("profile") {
		c.config.Profile = c.profile
	}

	observability.SetGameHooks(logGameHooks{logger: c.Logger})
	observability.SetStoreHooks(logStoreHooks{logger: c.Logger})

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
