package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds application settings
type Config struct {
	Port       string `yaml:"port" validate:"required"`
	DataSource string `yaml:"data_source" validate:"oneof=csv sqlite"`
	DataPath   string `yaml:"data_path" validate:"required_if=DataSource csv"`
	DBPath     string `yaml:"db_path" validate:"required_if=DataSource sqlite"`

	// Bearer auth is enabled only when set
	JWTSecret string `yaml:"jwt_secret"`

	// Requests per second per client IP, 0 disables limiting
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"`
	RateBurst int     `yaml:"rate_burst" validate:"gte=0"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`

	Heatmap HeatmapConfig `yaml:"heatmap"`
}

// HeatmapConfig holds color scale settings
type HeatmapConfig struct {
	HueUpperBound float64 `yaml:"hue_upper_bound" validate:"gt=0,lte=360"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Port:       ":8080",
		DataSource: "csv",
		DataPath:   "./data/london_borough_records.csv",
		DBPath:     "./data/records.db",
		RateLimit:  20,
		RateBurst:  40,
		LogLevel:   "info",
		LogFormat:  "text",
		Heatmap: HeatmapConfig{
			HueUpperBound: 135,
		},
	}
}

// Load builds the config from defaults, the YAML file named by CONFIG_PATH
// and environment overrides, in that order.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"PORT":        &c.Port,
		"DATA_SOURCE": &c.DataSource,
		"DATA_PATH":   &c.DataPath,
		"DB_PATH":     &c.DBPath,
		"JWT_SECRET":  &c.JWTSecret,
		"LOG_LEVEL":   &c.LogLevel,
		"LOG_FORMAT":  &c.LogFormat,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	floats := map[string]*float64{
		"RATE_LIMIT":      &c.RateLimit,
		"HUE_UPPER_BOUND": &c.Heatmap.HueUpperBound,
	}
	for key, dst := range floats {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = f
	}

	if v := os.Getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_BURST %q: %w", v, err)
		}
		c.RateBurst = n
	}
	return nil
}

var validate = validator.New()

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// AuthEnabled reports whether API routes require a bearer token
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}
