package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/raoldfi/tennis-app-sub000/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv              string
	ServiceName         string
	ServiceVersion      string
	HTTPAddr            string
	DBURL               string
	CORSAllowedOrigins  []string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	PprofEnabled        bool
	PprofAddr           string
	UptraceEnabled      bool
	UptraceDSN          string
	PyroscopeEnabled    bool
	PyroscopeServerAddr string
	PyroscopeAppName    string
	PyroscopeAuthToken  string
	PyroscopeUploadRate time.Duration
	InternalJobToken    string
	SeasonStart         *time.Time
	SeasonEnd           *time.Time
	AutoScheduleWorkers int
	LogLevel            logging.Level
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

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddr := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddr == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	seasonStart, err := getEnvAsDate("SEASON_START_DATE")
	if err != nil {
		return Config{}, fmt.Errorf("parse SEASON_START_DATE: %w", err)
	}
	seasonEnd, err := getEnvAsDate("SEASON_END_DATE")
	if err != nil {
		return Config{}, fmt.Errorf("parse SEASON_END_DATE: %w", err)
	}
	if seasonStart != nil && seasonEnd != nil && seasonEnd.Before(*seasonStart) {
		return Config{}, fmt.Errorf("SEASON_END_DATE must not be before SEASON_START_DATE")
	}

	autoScheduleWorkers, err := getEnvAsInt("AUTO_SCHEDULE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTO_SCHEDULE_WORKERS: %w", err)
	}
	if autoScheduleWorkers < 1 {
		return Config{}, fmt.Errorf("AUTO_SCHEDULE_WORKERS must be >= 1")
	}

	cfg := Config{
		AppEnv:              appEnv,
		ServiceName:         getEnv("APP_SERVICE_NAME", "tennis-league-api"),
		ServiceVersion:      getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:            getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:               strings.TrimSpace(getEnv("DB_URL", "")),
		CORSAllowedOrigins:  splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:         readTimeout,
		WriteTimeout:        writeTimeout,
		PprofEnabled:        pprofEnabled,
		PprofAddr:           pprofAddr,
		UptraceEnabled:      uptraceEnabled,
		UptraceDSN:          uptraceDSN,
		PyroscopeEnabled:    pyroscopeEnabled,
		PyroscopeServerAddr: pyroscopeServerAddr,
		PyroscopeAuthToken:  strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate: pyroscopeUploadRate,
		InternalJobToken:    strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		SeasonStart:         seasonStart,
		SeasonEnd:           seasonEnd,
		AutoScheduleWorkers: autoScheduleWorkers,
		LogLevel:            parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	return cfg, nil
}

// UseMemoryRepositories reports whether the service should run on the
// in-memory repositories instead of postgres.
func (c Config) UseMemoryRepositories() bool {
	return c.DBURL == ""
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

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
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

func getEnvAsDate(key string) (*time.Time, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil, nil
	}

	out, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return nil, err
	}

	return &out, nil
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
