package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/jigsaw/pkg/errors"
	"github.com/matzehuels/jigsaw/pkg/i18n"
	"github.com/matzehuels/jigsaw/pkg/layout"
	"github.com/matzehuels/jigsaw/pkg/picture"
)

// configFile is the name of the config file inside configDir.
const configFile = "config.toml"

// Config is the on-disk configuration.
//
//	lang = "en"
//	profile = "kids"
//
//	[game]
//	grid = "3x3"
//	fill_ratio = 0.5
//	margin = 2
//	snap_threshold = 3
//
//	[history]
//	max = 5
//	snapshot_size = 600
type Config struct {
	Lang    string        `toml:"lang"`
	Profile string        `toml:"profile"`
	Game    GameConfig    `toml:"game"`
	History HistoryConfig `toml:"history"`
}

// GameConfig holds puzzle geometry settings. Distances are in surface
// pixels: one terminal column wide, half a terminal row tall.
type GameConfig struct {
	Grid          string  `toml:"grid"`
	FillRatio     float64 `toml:"fill_ratio"`
	Margin        float64 `toml:"margin"`
	SnapThreshold float64 `toml:"snap_threshold"`
}

// HistoryConfig holds recent-image settings.
type HistoryConfig struct {
	Max          int `toml:"max"`
	SnapshotSize int `toml:"snapshot_size"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Grid:          layout.DefaultGrid.String(),
			FillRatio:     layout.DefaultFillRatio,
			Margin:        2,
			SnapThreshold: 3,
		},
		History: HistoryConfig{
			Max:          5,
			SnapshotSize: picture.DefaultSnapshotSize,
		},
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/jigsaw/config.toml.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// loadConfig reads the config at path over the defaults. A missing file is
// not an error unless required is set.
func loadConfig(path string, required bool) (Config, []string, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			return cfg, nil, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return cfg, nil, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, unknown, err
	}
	return cfg, unknown, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.Lang != "" && !i18n.Known(c.Lang) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown lang %q (available: %s)", c.Lang, strings.Join(i18n.Languages(), ", "))
	}
	if _, err := layout.ParseGrid(c.Game.Grid); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "game.grid")
	}
	if err := errors.ValidateRatio("game.fill_ratio", c.Game.FillRatio); err != nil {
		return err
	}
	if c.Game.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "game.margin must not be negative, got %v", c.Game.Margin)
	}
	if c.Game.SnapThreshold <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "game.snap_threshold must be positive, got %v", c.Game.SnapThreshold)
	}
	if c.History.Max < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "history.max must be at least 1, got %d", c.History.Max)
	}
	if c.History.SnapshotSize < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "history.snapshot_size must be at least 1, got %d", c.History.SnapshotSize)
	}
	return nil
}
