package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"shark-tracker/internal/core/proxy"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
// - validate: go-playground/validator rules checked after unmarshal
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080" validate:"gt=0,lte=65535"`

	// DataSource holds the shark data source selection.
	DataSource DataSourceConfig `mapstructure:",squash"`

	// Tracking holds the refresh loop settings.
	Tracking TrackingConfig `mapstructure:",squash"`

	// Redis holds the Redis connection used by the redis data source.
	Redis RedisConfig `mapstructure:",squash"`

	// Surfaces holds presentation settings.
	Surfaces SurfacesConfig `mapstructure:",squash"`

	// Proxy holds the optional upstream proxy for outgoing HTTP.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// DataSourceConfig selects and configures where sharks and pings come from.
type DataSourceConfig struct {
	// Kind is one of mock, api or redis.
	Kind string `mapstructure:"DATA_SOURCE" default:"mock" required:"true" validate:"oneof=mock api redis"`
	// OcearchURL is the base URL of the OCEARCH REST API, with trailing slash.
	OcearchURL string `mapstructure:"OCEARCH_URL" default:"https://www.ocearch.org/api/v1/" validate:"url"`
	// HTTPTimeoutSeconds bounds every upstream request.
	HTTPTimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS" default:"10" validate:"gt=0"`
	// MockSharksDelayMS simulates network latency for the mock sharks fetch.
	MockSharksDelayMS int `mapstructure:"MOCK_SHARKS_DELAY_MS" default:"1000" validate:"gte=0"`
	// MockPingsDelayMS simulates network latency for the mock pings fetch.
	MockPingsDelayMS int `mapstructure:"MOCK_PINGS_DELAY_MS" default:"1500" validate:"gte=0"`
}

// TrackingConfig holds the periodic refresh settings.
type TrackingConfig struct {
	// RefreshIntervalSeconds is the wait between periodic ping refreshes.
	RefreshIntervalSeconds int `mapstructure:"REFRESH_INTERVAL_SECONDS" default:"30" validate:"gt=0"`
	// AutoRefresh enables the periodic loop at startup.
	AutoRefresh bool `mapstructure:"AUTO_REFRESH" default:"true"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL is in the format redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// Seed writes the built-in dataset to Redis at startup.
	Seed bool `mapstructure:"REDIS_SEED" default:"false"`
}

// SurfacesConfig holds presentation settings.
type SurfacesConfig struct {
	// LocationPermission is one of granted, denied, prompt-granted, prompt-denied.
	LocationPermission string `mapstructure:"LOCATION_PERMISSION" default:"prompt-granted" validate:"oneof=granted denied prompt-granted prompt-denied"`
}

// ProxyConfig holds upstream proxy details for outgoing requests.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Settings converts the proxy configuration into proxy.Settings.
func (p ProxyConfig) Settings() proxy.Settings {
	return proxy.Settings{
		Enabled:  p.Enabled,
		Hostname: p.Hostname,
		Port:     p.Port,
		Username: p.Username,
		Password: p.Password,
	}
}

// HTTPTimeout returns the upstream request timeout.
func (d DataSourceConfig) HTTPTimeout() time.Duration {
	return time.Duration(d.HTTPTimeoutSeconds) * time.Second
}

// RefreshInterval returns the periodic refresh interval.
func (t TrackingConfig) RefreshInterval() time.Duration {
	return time.Duration(t.RefreshIntervalSeconds) * time.Second
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
