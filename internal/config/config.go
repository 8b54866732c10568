// Package config loads avatarmaker settings from defaults, an optional
// config file, AVATARMAKER_* environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rook-computer/avatarmaker/internal/avatar"
)

const EnvPrefix = "AVATARMAKER"

// Keys, also usable as flag names. Nested keys map to env vars by
// replacing dots with underscores: defaults.width -> AVATARMAKER_DEFAULTS_WIDTH.
const (
	KeyListen    = "listen"
	KeyDevMode   = "dev"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyLogFile   = "log.file"
	KeyCacheSize = "cache.size"

	KeyWidth        = "defaults.width"
	KeyHeight       = "defaults.height"
	KeyStrokeWidth  = "defaults.stroke_width"
	KeyCornerRadius = "defaults.corner_radius"
	KeyTextSize     = "defaults.text_size"
	KeyTextUnit     = "defaults.text_unit"
	KeyDPI          = "display.dpi"
	KeyFontScale    = "display.font_scale"
)

// ServerConfig contains settings for running the HTTP server.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
}

// LogConfig selects the log level, format and destination.
type LogConfig struct {
	Level string
	JSON  bool
	File  string
}

// Config is the resolved configuration shared by every command.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CacheSize int
	Defaults  avatar.Defaults
}

// New returns a viper instance with every default registered and the
// environment bound.
func New() *viper.Viper {
	v := viper.New()
	d := avatar.DefaultDefaults()

	v.SetDefault(KeyListen, ":8080")
	v.SetDefault(KeyDevMode, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyCacheSize, avatar.DefaultCacheSize)
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyStrokeWidth, d.StrokeWidth)
	v.SetDefault(KeyCornerRadius, d.CornerRadius)
	v.SetDefault(KeyTextSize, d.TextSize)
	v.SetDefault(KeyTextUnit, d.TextSizeUnit.String())
	v.SetDefault(KeyDPI, d.Display.DPI)
	v.SetDefault(KeyFontScale, d.Display.FontScale)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlag binds key to the named flag of flags, when that flag exists.
func BindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) error {
	flag := flags.Lookup(name)
	if flag == nil {
		return nil
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("bind flag %s: %w", name, err)
	}
	return nil
}

// Load reads file, when not empty, and returns the resolved configuration.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	return FromViper(v)
}

// FromViper resolves and validates the settings held by v.
func FromViper(v *viper.Viper) (Config, error) {
	unit, err := avatar.ParseTextSizeUnit(v.GetString(KeyTextUnit))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyTextUnit, err)
	}

	format := strings.ToLower(v.GetString(KeyLogFormat))
	if format != "text" && format != "json" {
		return Config{}, fmt.Errorf("%s must be text or json (got %q)", KeyLogFormat, format)
	}

	cfg := Config{
		Server: ServerConfig{
			ListenAddr: v.GetString(KeyListen),
			DevMode:    v.GetBool(KeyDevMode),
		},
		Log: LogConfig{
			Level: v.GetString(KeyLogLevel),
			JSON:  format == "json",
			File:  v.GetString(KeyLogFile),
		},
		CacheSize: v.GetInt(KeyCacheSize),
		Defaults: avatar.Defaults{
			Width:        v.GetInt(KeyWidth),
			Height:       v.GetInt(KeyHeight),
			StrokeWidth:  v.GetInt(KeyStrokeWidth),
			CornerRadius: v.GetFloat64(KeyCornerRadius),
			TextSize:     v.GetFloat64(KeyTextSize),
			TextSizeUnit: unit,
			Display: avatar.DisplayMetrics{
				DPI:       v.GetFloat64(KeyDPI),
				FontScale: v.GetFloat64(KeyFontScale),
			},
		},
	}

	probe := avatar.NewBuilder(cfg.Defaults)
	if _, err := probe.Config(); err != nil {
		return Config{}, fmt.Errorf("defaults: %w", err)
	}
	if dpi := cfg.Defaults.Display.DPI; dpi <= 0 || math.IsNaN(dpi) || math.IsInf(dpi, 0) {
		return Config{}, fmt.Errorf("%s must be positive (got %g)", KeyDPI, cfg.Defaults.Display.DPI)
	}
	if scale := cfg.Defaults.Display.FontScale; scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return Config{}, fmt.Errorf("%s must be a finite, non-negative number (got %g)", KeyFontScale, scale)
	}
	return cfg, nil
}
