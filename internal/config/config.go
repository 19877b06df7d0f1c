package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for the telegraph CLI.
type Config struct {
	Alphabet string        `mapstructure:"alphabet"`
	Text     TextConfig    `mapstructure:"text"`
	Audio    AudioConfig   `mapstructure:"audio"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

// TextConfig selects the textual output representation.
type TextConfig struct {
	Format string `mapstructure:"format"` // plain, spoken, block
}

// AudioConfig holds tone synthesis and file output settings.
type AudioConfig struct {
	Format     string  `mapstructure:"format"`      // container for file output, e.g. wav
	Encoding   string  `mapstructure:"encoding"`    // pcm16, pcm24, pcm32
	Frequency  float64 `mapstructure:"frequency"`   // tone pitch in Hz
	WPM        int     `mapstructure:"wpm"`         // keying speed, words per minute
	SampleRate int     `mapstructure:"sample_rate"` // PCM sample rate in Hz
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and
// defaults. If configFile is non-empty it is used directly; otherwise the
// standard search order applies: ./telegraph.yaml, ./configs/telegraph.yaml,
// /etc/telegraph/telegraph.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("alphabet", "international")
	v.SetDefault("text.format", "plain")
	v.SetDefault("audio.format", "wav")
	v.SetDefault("audio.encoding", "pcm16")
	v.SetDefault("audio.frequency", 660.0)
	v.SetDefault("audio.wpm", 20)
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("telegraph")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/telegraph")
	}

	// Environment variables: TELEGRAPH_AUDIO_WPM, TELEGRAPH_TEXT_FORMAT, etc.
	v.SetEnvPrefix("TELEGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars and defaults are sufficient.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Audio.WPM <= 0 {
		return fmt.Errorf("audio.wpm must be positive, got %d", c.Audio.WPM)
	}
	if c.Audio.Frequency <= 0 {
		return fmt.Errorf("audio.frequency must be positive, got %v", c.Audio.Frequency)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
