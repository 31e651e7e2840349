package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/flipclock/internal/util"
	"github.com/spf13/viper"
)

// Settings is the runtime configuration after defaults, the config file and
// FLIPCLOCK_* environment variables have been merged.
type Settings struct {
	Variant       string        `mapstructure:"variant"`
	FlipDuration  time.Duration `mapstructure:"flip-duration"`
	FrameInterval time.Duration `mapstructure:"frame-interval"`
	Scale         float64       `mapstructure:"scale"`
	Aspect        float64       `mapstructure:"aspect"`
	Theme         string        `mapstructure:"theme"`
	StartMode     string        `mapstructure:"mode"`
	LogFile       string        `mapstructure:"log-file"`
	Debug         bool          `mapstructure:"debug"`
	Bell          bool          `mapstructure:"bell"`
	SetupArrows   bool          `mapstructure:"-"`
	ConfigPath    string        `mapstructure:"-"`
}

// DefaultConfigPath is $XDG_CONFIG_HOME/flipclock/config.yml.
func DefaultConfigPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// DefaultLogPath is $XDG_STATE_HOME/flipclock/flipclock.log.
func DefaultLogPath() string {
	return filepath.Join(util.StateDir(AppName), LogFileName)
}

// Load reads settings from configPath, or from DefaultConfigPath when empty.
// A missing file is fine; defaults apply.
func Load(configPath string) (Settings, error) {
	return LoadWithOverrides(configPath, nil)
}

// LoadWithOverrides is Load with command line values layered on top of the
// file and environment. Keys use the config file names.
func LoadWithOverrides(configPath string, overrides map[string]any) (Settings, error) {
	var s Settings

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("variant", DefaultVariant)
	v.SetDefault("flip-duration", time.Duration(0))
	v.SetDefault("frame-interval", FrameInterval)
	v.SetDefault("scale", 0.0)
	v.SetDefault("aspect", DefaultAspect)
	v.SetDefault("theme", "default")
	v.SetDefault("mode", "clock")
	v.SetDefault("log-file", DefaultLogPath())
	v.SetDefault("debug", false)
	v.SetDefault("bell", true)

	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return s, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	}

	for key, val := range overrides {
		v.Set(key, val)
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decoding config: %w", err)
	}
	s.ConfigPath = configPath

	if err := s.ApplyVariant(s.Variant); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// ApplyVariant fills flip duration, scale and arrow support from the named
// variant. Explicit flip-duration and scale values win over the variant.
func (s *Settings) ApplyVariant(name string) error {
	variant, err := LookupVariant(name)
	if err != nil {
		return err
	}
	s.Variant = variant.Name
	if s.FlipDuration <= 0 {
		s.FlipDuration = variant.FlipDuration
	}
	if s.Scale <= 0 {
		s.Scale = variant.Scale
	}
	s.SetupArrows = variant.SetupArrows
	return nil
}

// Validate rejects values the renderer or animator cannot use.
func (s Settings) Validate() error {
	if s.FlipDuration <= 0 {
		return fmt.Errorf("flip-duration must be positive, got %s", s.FlipDuration)
	}
	if s.FrameInterval <= 0 {
		return fmt.Errorf("frame-interval must be positive, got %s", s.FrameInterval)
	}
	if s.Scale <= 0 || s.Scale > MaxScale {
		return fmt.Errorf("scale must be in (0, %.0f], got %g", MaxScale, s.Scale)
	}
	if s.Aspect <= 0 {
		return fmt.Errorf("aspect must be positive, got %g", s.Aspect)
	}
	return nil
}
