package config

import "os"

type Config struct {
	BackendURL   string
	BackendPath  string
	CookieSecret string
	CookieName   string
	AuditDBHost  string
	AuditDBPort  string
	AuditDBUser  string
	AuditDBPass  string
	AuditDBName  string
	AuditSSLMode string
	UIAddr       string
	UIPort       string
}

const (
	// Remote catalog API origin and the per-tenant path segment used in
	// admin routes (/api/<path>/admin/...)
	DefaultBackendURL  = "https://ec-course-api.hexschool.io/v2"
	DefaultBackendPath = "rabbitoyo"

	DefaultCookieSecret = "fly-me-to-the-moon"
	DefaultCookieName   = "catalogToken"

	// Audit trail is disabled unless AUDIT_DB_HOST is set
	DefaultAuditDBHost  = ""
	DefaultAuditDBPort  = "5432"
	DefaultAuditDBUser  = "postgres"
	DefaultAuditDBPass  = "postgres"
	DefaultAuditDBName  = "catalogadmin"
	DefaultAuditSSLMode = "disable"

	// Console listening address/port (service binding). UI_ADDR takes precedence, then UI_PORT
	DefaultUIAddr = "localhost"
	DefaultUIPort = "60000"
)

func LoadConfig() *Config {
	return &Config{
		BackendURL:   getEnvOrDefault("BACKEND_URL", DefaultBackendURL),
		BackendPath:  getEnvOrDefault("BACKEND_PATH", DefaultBackendPath),
		CookieSecret: getEnvOrDefault("COOKIE_SECRET", DefaultCookieSecret),
		CookieName:   getEnvOrDefault("COOKIE_NAME", DefaultCookieName),
		AuditDBHost:  getEnvOrDefault("AUDIT_DB_HOST", DefaultAuditDBHost),
		AuditDBPort:  getEnvOrDefault("AUDIT_DB_PORT", DefaultAuditDBPort),
		AuditDBUser:  getEnvOrDefault("AUDIT_DB_USER", DefaultAuditDBUser),
		AuditDBPass:  getEnvOrDefault("AUDIT_DB_PASSWORD", DefaultAuditDBPass),
		AuditDBName:  getEnvOrDefault("AUDIT_DB_NAME", DefaultAuditDBName),
		AuditSSLMode: getEnvOrDefault("AUDIT_DB_SSL_MODE", DefaultAuditSSLMode),
		UIAddr:       getEnvOrDefault("UI_ADDR", DefaultUIAddr),
		UIPort:       getEnvOrDefault("UI_PORT", DefaultUIPort),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
