package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MySQLConfig holds connection settings for one logical MySQL database.
type MySQLConfig struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

// AppConfig holds application configuration loaded from environment variables and .env file.
type AppConfig struct {
	// Server config
	Port          string
	SessionSecret string
	SessionMaxAge int // seconds

	// One logical database per concern. The licence store holds credentials
	// and the connector XML column, the sync store holds planning schedules,
	// the history store holds per-record sync results, the queue store holds
	// pending re-sync records and agent endpoint registrations.
	AuthDB    MySQLConfig
	SyncDB    MySQLConfig
	HistoryDB MySQLConfig
	QueueDB   MySQLConfig

	// Logging config
	LogLevel      string
	LogFile       string
	LogMaxSize    int // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool

	// Remote agent config
	AgentRequestTimeout time.Duration // Timeout for the outbound sync trigger call
	AgentStaleAfter     time.Duration // Endpoint older than this is reported as inactive

	// Google Calendar OAuth config
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// Mobile config download base (per-product XML bundles)
	MobileConfigBaseURL string
}

// Cfg is the global application configuration instance.
var Cfg AppConfig

// LoadConfig loads and validates application configuration from .env file and environment variables.
func LoadConfig() error {
	err := godotenv.Load()
	if err != nil {
		// Use standard log here since logger is not initialized yet
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	} else {
		log.Printf("[INFO] .env file loaded successfully")
	}

	Cfg.Port = getEnv("PORT", "5000")
	Cfg.SessionSecret = getEnv("SESSION_SECRET", "connector-admin-secret")
	Cfg.SessionMaxAge = getEnvInt("SESSION_MAX_AGE", 86400)

	Cfg.AuthDB = loadMySQLConfig("AUTH")
	Cfg.SyncDB = loadMySQLConfig("SYNC")
	Cfg.HistoryDB = loadMySQLConfig("HISTOSYNC")
	Cfg.QueueDB = loadMySQLConfig("SYNCNUXIDEV")

	// Load logging config
	Cfg.LogLevel = getEnv("LOG_LEVEL", "DEBUG")
	Cfg.LogFile = getEnv("LOG_FILE", "/var/log/connectoradmin/connectoradminapi.log")

	Cfg.LogMaxSize = getEnvInt("LOG_MAX_SIZE", 10)
	Cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 3)
	Cfg.LogMaxAge = getEnvInt("LOG_MAX_AGE", 28)
	Cfg.LogCompress = getEnvBool("LOG_COMPRESS", true)

	// Load remote agent config
	Cfg.AgentRequestTimeout = time.Duration(getEnvInt("AGENT_REQUEST_TIMEOUT", 30)) * time.Second // Default: 30 seconds
	Cfg.AgentStaleAfter = time.Duration(getEnvInt("AGENT_STALE_HOURS", 24)) * time.Hour           // Default: 24 hours

	// Load Google Calendar OAuth config
	Cfg.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", "")
	Cfg.GoogleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", "")
	Cfg.GoogleRedirectURL = getEnv("GOOGLE_REDIRECT_URL", "http://localhost:5000/api/google-calendar/callback")

	Cfg.MobileConfigBaseURL = getEnv("MOBILE_CONFIG_BASE_URL", "https://nuxidev.fr/download/config")

	log.Printf("[INFO] Config loaded - AuthDB: %s@%s:%d/%s, LogLevel: %s",
		Cfg.AuthDB.User, Cfg.AuthDB.Host, Cfg.AuthDB.Port, Cfg.AuthDB.Name, Cfg.LogLevel)
	log.Printf("[INFO] Agent config - RequestTimeout: %v, StaleAfter: %v",
		Cfg.AgentRequestTimeout, Cfg.AgentStaleAfter)

	return nil
}

// loadMySQLConfig reads one logical database configuration by env prefix,
// e.g. AUTH -> AUTH_MYSQL_HOST, AUTH_MYSQL_PORT, AUTH_MYSQL_USER...
func loadMySQLConfig(prefix string) MySQLConfig {
	return MySQLConfig{
		Host: getEnv(prefix+"_MYSQL_HOST", "127.0.0.1"),
		Port: getEnvInt(prefix+"_MYSQL_PORT", 3306),
		User: getEnv(prefix+"_MYSQL_USER", "root"),
		Pass: getEnv(prefix+"_MYSQL_PASSWORD", ""),
		Name: getEnv(prefix+"_MYSQL_DATABASE", strings.ToLower(prefix)),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
