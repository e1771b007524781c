// README: Config loader; viper defaults overlaid by an optional deck.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	GinMode         string
}

type CORSConfig struct {
	Origins          []string
	AllowCredentials bool
}

// AllowAll reports whether the origin list is the wildcard.
func (c CORSConfig) AllowAll() bool {
	if len(c.Origins) == 0 {
		return true
	}
	for _, o := range c.Origins {
		if o == "*" {
			return true
		}
	}
	return false
}

type DatabaseConfig struct {
	URL  string
	Name string
}

type DiagnosticConfig struct {
	Timeout time.Duration
}

type Config struct {
	HTTP       HTTPConfig
	CORS       CORSConfig
	Database   DatabaseConfig
	Diagnostic DiagnosticConfig
	Log        struct {
		Level string
	}
}

// Load reads configuration. configFile may be empty, in which case deck.yaml in the
// working directory is used when present.
func Load(configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("deck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("http.addr", "")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("http.gin_mode", "release")
	v.SetDefault("cors.origins", "*")
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("database.url", "")
	v.SetDefault("database.name", "")
	v.SetDefault("diagnostic.timeout", 3*time.Second)
	v.SetDefault("log.level", "INFO")

	bind := map[string]string{
		"port":                   "PORT",
		"http.addr":              "DECK_HTTP_ADDR",
		"http.read_timeout":      "DECK_HTTP_READ_TIMEOUT",
		"http.write_timeout":     "DECK_HTTP_WRITE_TIMEOUT",
		"http.shutdown_timeout":  "DECK_SHUTDOWN_TIMEOUT",
		"http.gin_mode":          "DECK_GIN_MODE",
		"cors.origins":           "DECK_CORS_ORIGINS",
		"cors.allow_credentials": "DECK_CORS_ALLOW_CREDENTIALS",
		"database.url":           "DATABASE_URL",
		"database.name":          "DATABASE_NAME",
		"diagnostic.timeout":     "DECK_DIAG_TIMEOUT",
		"log.level":              "DECK_LOG_LEVEL",
	}
	for key, env := range bind {
		_ = v.BindEnv(key, env)
	}
}

func fromViper(v *viper.Viper) (Config, error) {
	var cfg Config

	cfg.HTTP.Addr = strings.TrimSpace(v.GetString("http.addr"))
	if cfg.HTTP.Addr == "" {
		port := strings.TrimSpace(v.GetString("port"))
		if port == "" {
			port = "8000"
		}
		cfg.HTTP.Addr = ":" + port
	}
	cfg.HTTP.ReadTimeout = v.GetDuration("http.read_timeout")
	cfg.HTTP.WriteTimeout = v.GetDuration("http.write_timeout")
	cfg.HTTP.ShutdownTimeout = v.GetDuration("http.shutdown_timeout")
	cfg.HTTP.GinMode = v.GetString("http.gin_mode")

	cfg.CORS.Origins = stringList(v, "cors.origins")
	cfg.CORS.AllowCredentials = v.GetBool("cors.allow_credentials")
	for _, o := range cfg.CORS.Origins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return Config{}, fmt.Errorf("cors origin %q must be \"*\" or start with http:// or https://", o)
		}
	}

	cfg.Database.URL = strings.TrimSpace(v.GetString("database.url"))
	cfg.Database.Name = strings.TrimSpace(v.GetString("database.name"))

	cfg.Diagnostic.Timeout = v.GetDuration("diagnostic.timeout")
	if cfg.Diagnostic.Timeout <= 0 {
		return Config{}, fmt.Errorf("diagnostic timeout must be positive, got %s", cfg.Diagnostic.Timeout)
	}

	cfg.Log.Level = strings.ToUpper(v.GetString("log.level"))
	return cfg, nil
}

// stringList accepts either a YAML sequence or a comma separated string.
func stringList(v *viper.Viper, key string) []string {
	if s, ok := v.Get(key).(string); ok {
		return splitList(s)
	}
	return splitList(strings.Join(v.GetStringSlice(key), ","))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
