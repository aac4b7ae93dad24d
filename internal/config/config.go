package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cricverse/cricstats/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	DBDriver          string
	DatabaseURL       string
	SQLitePath        string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	CacheEnabled bool
	CacheTTL     time.Duration

	CORSAllowedOrigins []string
	InternalJobToken   string
	SeedDemoData       bool

	CricbuzzEnabled             bool
	CricbuzzBaseURL             string
	RapidAPIKey                 string
	RapidAPIHost                string
	CricbuzzTimeout             time.Duration
	CricbuzzMaxRetries          int
	CricbuzzCircuitEnabled      bool
	CricbuzzCircuitFailureCount int
	CricbuzzCircuitOpenTimeout  time.Duration
	CricbuzzCircuitHalfOpenReq  int
	IngestionThrottle           time.Duration

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbDriver := strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", "sqlite")))
	if dbDriver != "postgres" && dbDriver != "sqlite" {
		return Config{}, fmt.Errorf("invalid DB_DRIVER %q: valid values are postgres, sqlite", dbDriver)
	}
	databaseURL := strings.TrimSpace(getEnv("DATABASE_URL", ""))
	if dbDriver == "postgres" && databaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
	}
	sqlitePath := strings.TrimSpace(getEnv("SQLITE_PATH", "cricstats.db"))
	if dbDriver == "sqlite" && sqlitePath == "" {
		return Config{}, fmt.Errorf("SQLITE_PATH cannot be empty when DB_DRIVER=sqlite")
	}

	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	dbMaxIdleConns, err := getEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_IDLE_CONNS: %w", err)
	}
	if dbMaxIdleConns < 0 {
		return Config{}, fmt.Errorf("DB_MAX_IDLE_CONNS must be >= 0")
	}
	dbConnMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_CONN_MAX_LIFETIME: %w", err)
	}
	if dbConnMaxLifetime <= 0 {
		return Config{}, fmt.Errorf("DB_CONN_MAX_LIFETIME must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	seedDemoData, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_DEMO_DATA: %w", err)
	}

	cricbuzzEnabled, err := strconv.ParseBool(getEnv("CRICBUZZ_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_ENABLED: %w", err)
	}
	cricbuzzTimeout, err := time.ParseDuration(getEnv("CRICBUZZ_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_TIMEOUT: %w", err)
	}
	if cricbuzzTimeout <= 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_TIMEOUT must be > 0")
	}
	cricbuzzMaxRetries, err := getEnvAsInt("CRICBUZZ_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_MAX_RETRIES: %w", err)
	}
	if cricbuzzMaxRetries < 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_MAX_RETRIES must be >= 0")
	}
	cricbuzzCircuitEnabled, err := strconv.ParseBool(getEnv("CRICBUZZ_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_ENABLED: %w", err)
	}
	cricbuzzCircuitFailureCount, err := getEnvAsInt("CRICBUZZ_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cricbuzzCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("CRICBUZZ_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	cricbuzzCircuitOpenTimeout, err := time.ParseDuration(getEnv("CRICBUZZ_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if cricbuzzCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	cricbuzzCircuitHalfOpenReq, err := getEnvAsInt("CRICBUZZ_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cricbuzzCircuitHalfOpenReq < 1 {
		return Config{}, fmt.Errorf("CRICBUZZ_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	rapidAPIKey := strings.TrimSpace(getEnv("RAPIDAPI_KEY", ""))
	if cricbuzzEnabled && rapidAPIKey == "" {
		return Config{}, fmt.Errorf("RAPIDAPI_KEY is required when CRICBUZZ_ENABLED=true")
	}
	ingestionThrottle, err := time.ParseDuration(getEnv("INGESTION_THROTTLE", "250ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse INGESTION_THROTTLE: %w", err)
	}
	if ingestionThrottle < 0 {
		return Config{}, fmt.Errorf("INGESTION_THROTTLE must be >= 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofAddr == "" {
		pprofAddr = ":6060"
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "cricstats-api"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		LogLevel:       logLevel,

		DBDriver:          dbDriver,
		DatabaseURL:       databaseURL,
		SQLitePath:        sqlitePath,
		DBMaxOpenConns:    dbMaxOpenConns,
		DBMaxIdleConns:    dbMaxIdleConns,
		DBConnMaxLifetime: dbConnMaxLifetime,

		CacheEnabled: cacheEnabled,
		CacheTTL:     cacheTTL,

		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		InternalJobToken:   strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		SeedDemoData:       seedDemoData,

		CricbuzzEnabled:             cricbuzzEnabled,
		CricbuzzBaseURL:             strings.TrimSpace(getEnv("CRICBUZZ_BASE_URL", "https://cricbuzz-cricket.p.rapidapi.com")),
		RapidAPIKey:                 rapidAPIKey,
		RapidAPIHost:                strings.TrimSpace(getEnv("RAPIDAPI_HOST", "cricbuzz-cricket.p.rapidapi.com")),
		CricbuzzTimeout:             cricbuzzTimeout,
		CricbuzzMaxRetries:          cricbuzzMaxRetries,
		CricbuzzCircuitEnabled:      cricbuzzCircuitEnabled,
		CricbuzzCircuitFailureCount: cricbuzzCircuitFailureCount,
		CricbuzzCircuitOpenTimeout:  cricbuzzCircuitOpenTimeout,
		CricbuzzCircuitHalfOpenReq:  cricbuzzCircuitHalfOpenReq,
		IngestionThrottle:           ingestionThrottle,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		UptraceLogsEnabled: uptraceLogsEnabled,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

// DatabaseDSN returns the DSN matching the configured driver.
func (c Config) DatabaseDSN() string {
	if c.DBDriver == "postgres" {
		return c.DatabaseURL
	}
	return c.SQLitePath
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
