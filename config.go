package storeinsights

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultUserAgent mirrors a desktop browser; some storefront firewalls
// reject the Go default agent outright.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Duration wraps time.Duration with YAML support for human-readable values
// like "10s" or "1m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return Errorf(EINVALID, "invalid duration %q: %v", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds the tunables consumed by the pipeline and its collaborators.
// Values are plain data; behavior lives with the components that read them.
type Config struct {
	// Transport.
	RequestTimeout    Duration `yaml:"request_timeout" validate:"gt=0"`
	MaxRetries        int      `yaml:"max_retries" validate:"gte=0,lte=10"`
	RetryDelay        Duration `yaml:"retry_delay" validate:"gt=0"`
	RequestsPerSecond float64  `yaml:"requests_per_second" validate:"gt=0"`
	UserAgent         string   `yaml:"user_agent" validate:"required"`

	// Pipeline.
	PipelineDeadline Duration `yaml:"pipeline_deadline" validate:"gt=0"`
	Concurrency      int      `yaml:"concurrency" validate:"gt=0,lte=64"`

	// Content limits.
	MaxProducts           int `yaml:"max_products" validate:"gt=0"`
	MaxFAQs               int `yaml:"max_faqs" validate:"gt=0"`
	MaxHeroProducts       int `yaml:"max_hero_products" validate:"gt=0"`
	MaxPolicyLength       int `yaml:"max_policy_length" validate:"gt=0"`
	MaxBrandContextLength int `yaml:"max_brand_context_length" validate:"gt=0"`

	// Serving and persistence (unused by the core pipeline).
	ListenAddr string `yaml:"listen_addr"`
	DBPath     string `yaml:"db_path"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return Config{
		RequestTimeout:        Duration(10 * time.Second),
		MaxRetries:            3,
		RetryDelay:            Duration(time.Second),
		RequestsPerSecond:     4,
		UserAgent:             DefaultUserAgent,
		PipelineDeadline:      Duration(60 * time.Second),
		Concurrency:           10,
		MaxProducts:           1000,
		MaxFAQs:               10,
		MaxHeroProducts:       6,
		MaxPolicyLength:       1000,
		MaxBrandContextLength: 500,
		ListenAddr:            ":8000",
		DBPath:                "storeinsights.db",
	}
}

var validate = validator.New()

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return Errorf(EINVALID, "invalid configuration: %v", err)
	}
	return nil
}

// ParseConfig decodes a YAML document over the defaults and validates the
// result.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, Errorf(EINVALID, "invalid config file: %v", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadConfig reads a YAML config file. A missing path returns the validated
// defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, Errorf(EINVALID, "cannot read config file %s: %v", path, err)
	}
	return ParseConfig(data)
}
