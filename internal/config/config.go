package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the lux CLI configuration. Everything here can also be
// supplied through flags; the file only provides defaults.
type Config struct {
	// Device is the default device identifier: "usb" for the first USB
	// connected light, otherwise a webhook device ID.
	Device   string         `yaml:"device"`
	Log      LogConfig      `yaml:"log"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Patterns PatternsConfig `yaml:"patterns"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// LogConfig contains logging settings. The -v flag overrides Level.
type LogConfig struct {
	Level   string `yaml:"level"`
	UseJSON bool   `yaml:"json"`
	Colors  bool   `yaml:"colors"`
}

// WebhookConfig contains webhook transport settings.
type WebhookConfig struct {
	BaseURL string   `yaml:"base_url"` // empty selects the Luxafor API
	Timeout Duration `yaml:"timeout"`  // HTTP timeout per request
}

// PatternsConfig gates the extended pattern set. The extra patterns are
// only honored by devices driven through the vendor's Windows software,
// so they are opt-in rather than tied to the build platform.
type PatternsConfig struct {
	Extended bool `yaml:"extended"`
}

// DefaultsConfig contains the command timing defaults used when the
// corresponding flag is not given.
type DefaultsConfig struct {
	StrobeSpeed   uint8 `yaml:"strobe_speed"`
	StrobeRepeat  uint8 `yaml:"strobe_repeat"`
	FadeDuration  uint8 `yaml:"fade_duration"`
	WaveSpeed     uint8 `yaml:"wave_speed"`
	WaveRepeat    uint8 `yaml:"wave_repeat"`
	PatternRepeat uint8 `yaml:"pattern_repeat"`
}

// Duration is a wrapper around time.Duration for YAML unmarshalling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads and parses the configuration file. A missing file is not
// an error: the CLI must work with flags alone, so defaults are
// returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	// Expand environment variables
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no file is present. The
// timing values match the original lux tool's flag defaults.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Webhook.Timeout == 0 {
		cfg.Webhook.Timeout = Duration(30 * time.Second)
	}
	if cfg.Defaults.StrobeSpeed == 0 {
		cfg.Defaults.StrobeSpeed = 10
	}
	if cfg.Defaults.StrobeRepeat == 0 {
		cfg.Defaults.StrobeRepeat = 255
	}
	if cfg.Defaults.FadeDuration == 0 {
		cfg.Defaults.FadeDuration = 60
	}
	if cfg.Defaults.WaveSpeed == 0 {
		cfg.Defaults.WaveSpeed = 30
	}
	if cfg.Defaults.WaveRepeat == 0 {
		cfg.Defaults.WaveRepeat = 255
	}
	if cfg.Defaults.PatternRepeat == 0 {
		cfg.Defaults.PatternRepeat = 255
	}
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}
func expandEnvVars(input string) string {
	re := regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

	return re.ReplaceAllStringFunc(input, func(match string) string {
		parts := re.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		varName := parts[1]
		defaultVal := ""
		if len(parts) >= 3 {
			defaultVal = parts[2]
		}

		if val := os.Getenv(varName); val != "" {
			return val
		}
		return defaultVal
	})
}
