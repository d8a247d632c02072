package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/preload/pkg/errors"
	"github.com/arthur-debert/preload/pkg/paths"
)

// EnvPrefix is the prefix of environment overrides, e.g. PRELOAD_RENDER_STYLE
const EnvPrefix = "PRELOAD_"

// Config is the fully merged configuration
type Config struct {
	Content ContentConfig `koanf:"content"`
	Render  RenderConfig  `koanf:"render"`
	Output  OutputConfig  `koanf:"output"`
}

// ContentConfig selects where slots are loaded from
type ContentConfig struct {
	// Source is a directory or bundle path. Empty means the embedded catalog.
	Source string `koanf:"source"`
}

// RenderConfig controls how slots are shown in a terminal
type RenderConfig struct {
	Enabled bool   `koanf:"enabled"`
	Style   string `koanf:"style"`
	Width   int    `koanf:"width"`
}

// OutputConfig controls styling of everything that is not slot content
type OutputConfig struct {
	Color bool `koanf:"color"`
}

// Options tells Load where to look for the user file
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string
	// Dir is searched for config.toml, config.yaml and config.yml when File
	// is empty. Defaults to paths.ConfigDir().
	Dir string
}

// DefaultDir returns the directory searched for a user config file
func DefaultDir() string {
	return paths.ConfigDir()
}

// Load merges defaults, the user file and environment into a Config
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load user config if it exists
	path, err := userConfigPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			// PRELOAD_LOG_* and PRELOAD_CONFIG_DIR belong to other packages
			ErrorUnused: false,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps PRELOAD_RENDER_STYLE to render.style
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func userConfigPath(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", opts.File)
		}
		return opts.File, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir()
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config file type: %s", path)
	}
}

func validate(cfg *Config) error {
	if cfg.Render.Width < 0 {
		return errors.Newf(errors.ErrConfigParse, "render.width must not be negative, got %d", cfg.Render.Width)
	}
	if strings.TrimSpace(cfg.Render.Style) == "" {
		return errors.New(errors.ErrConfigParse, "render.style must not be empty")
	}
	return nil
}
