package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the application. It is loaded
// once at startup from config.yaml plus environment overrides.
type Config struct {
	ServerPort   string `mapstructure:"server_port"`
	ClientOrigin string `mapstructure:"client_origin"`
	JWTSecret    string `mapstructure:"jwt_secret"`

	// DatabaseURL enables the notification audit trail when set.
	// Everything else works without a database.
	DatabaseURL string `mapstructure:"database_url"`

	// Users is the login allow-list. Passwords may be stored plain or as
	// bcrypt hashes; entries starting with "$2" are treated as hashes.
	Users []UserCredential `mapstructure:"users"`

	PlacesTable   TableSchema `mapstructure:"places_table"`
	ContactsTable TableSchema `mapstructure:"contacts_table"`

	Routing RoutingConfig `mapstructure:"routing"`
	Mail    MailConfig    `mapstructure:"mail"`
}

type UserCredential struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// TableSchema describes one delimited reference file. Columns are located
// by header name; Positions is the legacy fallback used when Columns is
// empty (older exports had no stable header text).
type TableSchema struct {
	Path      string            `mapstructure:"path"`
	Delimiter string            `mapstructure:"delimiter"`
	Encoding  string            `mapstructure:"encoding"` // "utf-8" or "latin-1"
	Columns   map[string]string `mapstructure:"columns"`
	Positions map[string]int    `mapstructure:"positions"`
}

// ByName reports whether the schema locates columns by header name.
func (s TableSchema) ByName() bool { return len(s.Columns) > 0 }

type RoutingConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`

	// DurationPolicy selects how leg minutes are derived from the route:
	// "per-step-floor" (default) or the legacy "simple-cap".
	DurationPolicy string `mapstructure:"duration_policy"`
	AvoidTolls     bool   `mapstructure:"avoid_tolls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (r RoutingConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

type MailConfig struct {
	// Provider selects the transport: "smtp" (relay, the default) or "ses".
	Provider     string `mapstructure:"provider"`
	From         string `mapstructure:"from"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	SESRegion    string `mapstructure:"ses_region"`
}

// LoadConfig reads config.yaml from the given path and applies
// environment overrides (e.g. ROUTING_API_KEY, MAIL_SMTP_PASSWORD).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetDefault("server_port", "8080")
	v.SetDefault("places_table.path", "tiempos.csv")
	v.SetDefault("places_table.delimiter", ";")
	v.SetDefault("places_table.encoding", "utf-8")
	v.SetDefault("places_table.columns", map[string]string{
		"name":               "Población",
		"work_center":        "Centro de trabajo",
		"province":           "Provincia",
		"distance_km":        "Distancia (km)",
		"minutes_total":      "Minutos totales",
		"minutes_chargeable": "Minutos a cargo",
	})
	v.SetDefault("contacts_table.path", "contactos.csv")
	v.SetDefault("contacts_table.delimiter", ";")
	v.SetDefault("contacts_table.encoding", "utf-8")
	v.SetDefault("contacts_table.columns", map[string]string{
		"province":  "Provincia",
		"team":      "Equipo",
		"full_name": "Nombre",
		"email":     "Email",
	})
	v.SetDefault("routing.base_url", "https://maps.googleapis.com")
	v.SetDefault("routing.duration_policy", "per-step-floor")
	v.SetDefault("routing.avoid_tolls", true)
	v.SetDefault("routing.timeout_seconds", 10)
	v.SetDefault("mail.provider", "smtp")
	v.SetDefault("mail.smtp_port", 587)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: defaults plus environment may be enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
