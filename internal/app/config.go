package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Flarenzy/netregistry/internal/addrspace"
	apihttp "github.com/Flarenzy/netregistry/internal/http"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port            string        `yaml:"port"`
	DBDriver        string        `yaml:"db_driver"`
	DSN             string        `yaml:"db_conn"`
	SQLitePath      string        `yaml:"sqlite_path"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	AuthEnabled     bool          `yaml:"auth_enabled"`
	Issuer          string        `yaml:"auth_issuer"`
	JWKSURL         string        `yaml:"auth_jwks_url"`
	Audience        string        `yaml:"auth_audience"`
	AdminRole       string        `yaml:"auth_admin_role"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	ReservedDefault int           `yaml:"reserved_default"`
	UnusedListLimit int           `yaml:"unused_list_limit"`
	Zones           []string      `yaml:"zones"`
}

func defaultConfig() Config {
	return Config{
		Port:            "4040",
		DBDriver:        DriverPostgres,
		SQLitePath:      "netregistry.db",
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
		ReservedDefault: addrspace.DefaultReserved,
		UnusedListLimit: apihttp.DefaultUnusedListLimit,
	}
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first if present, and CONFIG_FILE may name
// a YAML file whose values the environment overrides.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.DBDriver, "DB_DRIVER")
	setString(&cfg.DSN, "DB_CONN")
	setString(&cfg.SQLitePath, "SQLITE_PATH")
	setString(&cfg.Issuer, "AUTH_ISSUER")
	setString(&cfg.JWKSURL, "AUTH_JWKS_URL")
	setString(&cfg.Audience, "AUTH_AUDIENCE")
	setString(&cfg.AdminRole, "AUTH_ADMIN_ROLE")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")

	if v, ok := os.LookupEnv("ZONES"); ok {
		cfg.Zones = splitList(v)
	}

	for key, dst := range map[string]*time.Duration{
		"READ_TIMEOUT":  &cfg.ReadTimeout,
		"WRITE_TIMEOUT": &cfg.WriteTimeout,
	} {
		if v, ok := os.LookupEnv(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = d
		}
	}

	for key, dst := range map[string]*int{
		"RESERVED_DEFAULT":  &cfg.ReservedDefault,
		"UNUSED_LIST_LIMIT": &cfg.UnusedListLimit,
	} {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = n
		}
	}

	if v, ok := os.LookupEnv("AUTH_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AUTH_ENABLED: %w", err)
		}
		cfg.AuthEnabled = enabled
	}
	return nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DSN == "" {
			return fmt.Errorf("missing required environment variable: DB_CONN")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("missing required environment variable: SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT %q", c.LogFormat)
	}
	if c.ReservedDefault < 0 || c.ReservedDefault > addrspace.MaxReserved {
		return fmt.Errorf("RESERVED_DEFAULT must be between 0 and %d", addrspace.MaxReserved)
	}
	if c.UnusedListLimit <= 0 {
		return fmt.Errorf("UNUSED_LIST_LIMIT must be positive")
	}
	if c.AuthEnabled && c.Issuer == "" {
		return fmt.Errorf("AUTH_ISSUER is required when AUTH_ENABLED is set")
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
