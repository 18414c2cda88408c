package config

import (
	"fmt"
	"net/url"
	"strconv"
)

// DatabaseConfig locates the durable Postgres store. An empty config disables the tier.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		URL:      envOrDefault(envDatabaseURL, ""),
		Host:     envOrDefault(envDBHost, ""),
		Port:     intEnvOrDefault(envDBPort, defaultDBPort),
		User:     envOrDefault(envDBUser, ""),
		Password: envOrDefault(envDBPassword, ""),
		Database: envOrDefault(envDBName, ""),
		SSLMode:  envOrDefault(envDBSSLMode, defaultDBSSLMode),
	}
}

// Configured reports whether a durable store should be opened.
func (c DatabaseConfig) Configured() bool {
	return c.DSN() != ""
}

// DSN returns DATABASE_URL when set, otherwise a URL composed from the DB_* parts.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Host == "" || c.Database == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     c.Host + ":" + strconv.Itoa(c.Port),
		Path:     "/" + c.Database,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	return u.String()
}

// String hides the password when the config is logged.
func (c DatabaseConfig) String() string {
	if !c.Configured() {
		return "disabled"
	}
	if c.URL != "" {
		if u, err := url.Parse(c.URL); err == nil {
			return u.Redacted()
		}
		return "configured"
	}
	return fmt.Sprintf("postgres://%s@%s:%d/%s", c.User, c.Host, c.Port, c.Database)
}
