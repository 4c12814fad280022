package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pinwall/pinwall/pkg/pipeline"
)

// Config is the user configuration read from ~/.config/pinwall/config.toml.
// Every field has a working default, so the file is entirely optional.
type Config struct {
	// Layout defaults applied when the corresponding flag is not given.
	Strategy    string  `toml:"strategy"`
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Seed        uint64  `toml:"seed"`
	Orientation string  `toml:"orientation"`

	// Server holds defaults for the serve command.
	Server ServerConfig `toml:"server"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	RedisURL string `toml:"redis_url"`
	MongoURI string `toml:"mongo_uri"`
	MongoDB  string `toml:"mongo_db"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:    string(pipeline.DefaultStrategy),
		Width:       pipeline.DefaultWidth,
		Height:      pipeline.DefaultHeight,
		Seed:        pipeline.DefaultSeed,
		Orientation: "rows",
		Server: ServerConfig{
			Addr:    ":8080",
			MongoDB: appName,
		},
	}
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
