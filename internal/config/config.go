package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	TrustedProxies []string

	// Sync client settings.
	DocumentURL       string
	LocalStorePath    string
	AdminPassword     string
	HeartbeatInterval time.Duration
	RequestTimeout    time.Duration
	SyncRequireAdmin  bool

	// Document store server settings.
	DocstorePort string
	DbHost       string
	DbPort       string
	DbUser       string
	DbPassword   string
	DbName       string
	DbParams     string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),

		DocumentURL:       getEnv("DOCUMENT_URL", "http://localhost:9090/documents/default"),
		LocalStorePath:    getEnv("LOCAL_STORE_PATH", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "prep2024"),
		HeartbeatInterval: getDuration("HEARTBEAT_INTERVAL", 10*time.Second),
		RequestTimeout:    getDuration("REQUEST_TIMEOUT", 10*time.Second),
		SyncRequireAdmin:  getBool("SYNC_REQUIRE_ADMIN", false),

		DocstorePort: getEnv("DOCSTORE_PORT", "9090"),
		DbHost:       getEnv("MYSQL_HOST", "db"),
		DbPort:       getEnv("MYSQL_PORT", "3306"),
		DbUser:       getEnv("MYSQL_USER", "planetevent"),
		DbPassword:   getEnv("MYSQL_PASSWORD", "planetevent"),
		DbName:       getEnv("MYSQL_DATABASE", "planetevent"),
		DbParams:     getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
