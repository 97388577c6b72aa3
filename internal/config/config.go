package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/bonus-tracker/internal/domain/gamemode"
	"github.com/riskibarqy/bonus-tracker/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv              string
	ServiceName         string
	ServiceVersion      string
	HTTPAddr            string
	HTTPShutdownTimeout time.Duration
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	CORSAllowedOrigins  []string
	SwaggerEnabled      bool
	PprofEnabled        bool
	PprofAddr           string

	DreamTeamBaseURL               string
	DreamTeamEmail                 string
	DreamTeamPassword              string
	DreamTeamGameMode              gamemode.ID
	DreamTeamTimeout               time.Duration
	DreamTeamCircuitEnabled        bool
	DreamTeamCircuitFailureCount   int
	DreamTeamCircuitOpenTimeout    time.Duration
	DreamTeamCircuitHalfOpenMaxReq int

	LeagueMaxTeams      int
	LeagueFanoutWorkers int

	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	UptraceCaptureRequestBody  bool
	UptraceRequestBodyMaxBytes int

	BetterStackEnabled   bool
	BetterStackIngestURL string
	BetterStackToken     string
	BetterStackTimeout   time.Duration
	BetterStackMinLevel  logging.Level

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}
	uptraceCaptureRequestBody, err := strconv.ParseBool(getEnv("UPTRACE_CAPTURE_REQUEST_BODY", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_CAPTURE_REQUEST_BODY: %w", err)
	}
	uptraceRequestBodyMaxBytes, err := getEnvAsInt("UPTRACE_REQUEST_BODY_MAX_BYTES", 8192)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_REQUEST_BODY_MAX_BYTES: %w", err)
	}
	if uptraceRequestBodyMaxBytes <= 0 {
		return Config{}, fmt.Errorf("UPTRACE_REQUEST_BODY_MAX_BYTES must be > 0")
	}

	betterStackEnabled, err := strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	betterStackIngestURL := strings.TrimSpace(getEnv("BETTERSTACK_INGEST_URL", ""))
	if betterStackEnabled && betterStackIngestURL == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_INGEST_URL is required when BETTERSTACK_ENABLED=true")
	}
	betterStackTimeout, err := time.ParseDuration(getEnv("BETTERSTACK_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_TIMEOUT: %w", err)
	}
	if betterStackTimeout <= 0 {
		return Config{}, fmt.Errorf("BETTERSTACK_TIMEOUT must be > 0")
	}
	betterStackMinLevel := parseLogLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error"))

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
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

	dreamTeamBaseURL := strings.TrimSpace(getEnv("DREAMTEAM_BASE_URL", "https://dreamteam.sport5.co.il"))
	if dreamTeamBaseURL == "" {
		return Config{}, fmt.Errorf("DREAMTEAM_BASE_URL cannot be empty")
	}
	// Credentials may be absent at boot: auth happens lazily and the
	// credentials can arrive later through /v1/auth/login or CLI flags.
	dreamTeamEmail := strings.TrimSpace(getEnv("DREAMTEAM_EMAIL", ""))
	dreamTeamPassword := strings.TrimSpace(getEnv("DREAMTEAM_PASSWORD", ""))
	if (dreamTeamEmail == "") != (dreamTeamPassword == "") {
		return Config{}, fmt.Errorf("DREAMTEAM_EMAIL and DREAMTEAM_PASSWORD must be set together")
	}
	dreamTeamGameMode, err := getEnvAsInt("DREAMTEAM_GAME_MODE", int(gamemode.Default))
	if err != nil {
		return Config{}, fmt.Errorf("parse DREAMTEAM_GAME_MODE: %w", err)
	}
	if !gamemode.Valid(gamemode.ID(dreamTeamGameMode)) {
		return Config{}, fmt.Errorf("DREAMTEAM_GAME_MODE %d is not a supported game mode", dreamTeamGameMode)
	}
	dreamTeamTimeout, err := time.ParseDuration(getEnv("DREAMTEAM_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DREAMTEAM_TIMEOUT: %w", err)
	}
	if dreamTeamTimeout <= 0 {
		return Config{}, fmt.Errorf("DREAMTEAM_TIMEOUT must be > 0")
	}
	dreamTeamCircuitEnabled, err := strconv.ParseBool(getEnv("DREAMTEAM_CB_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DREAMTEAM_CB_ENABLED: %w", err)
	}
	dreamTeamCircuitFailureCount, err := getEnvAsInt("DREAMTEAM_CB_FAILURE_THRESHOLD", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DREAMTEAM_CB_FAILURE_THRESHOLD: %w", err)
	}
	if dreamTeamCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("DREAMTEAM_CB_FAILURE_THRESHOLD must be >= 1")
	}
	dreamTeamCircuitOpenTimeout, err := time.ParseDuration(getEnv("DREAMTEAM_CB_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DREAMTEAM_CB_OPEN_TIMEOUT: %w", err)
	}
	if dreamTeamCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("DREAMTEAM_CB_OPEN_TIMEOUT must be > 0")
	}
	dreamTeamCircuitHalfOpenMaxReq, err := getEnvAsInt("DREAMTEAM_CB_HALF_OPEN_REQUESTS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DREAMTEAM_CB_HALF_OPEN_REQUESTS: %w", err)
	}
	if dreamTeamCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("DREAMTEAM_CB_HALF_OPEN_REQUESTS must be >= 1")
	}

	leagueMaxTeams, err := getEnvAsInt("LEAGUE_MAX_TEAMS", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_MAX_TEAMS: %w", err)
	}
	if leagueMaxTeams < 1 {
		return Config{}, fmt.Errorf("LEAGUE_MAX_TEAMS must be >= 1")
	}
	leagueFanoutWorkers, err := getEnvAsInt("LEAGUE_FANOUT_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_FANOUT_WORKERS: %w", err)
	}
	if leagueFanoutWorkers < 1 {
		return Config{}, fmt.Errorf("LEAGUE_FANOUT_WORKERS must be >= 1")
	}

	httpPort, err := getEnvAsInt("HTTP_PORT", 8080)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_PORT: %w", err)
	}
	if httpPort < 1 || httpPort > 65535 {
		return Config{}, fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	httpShutdownTimeout, err := time.ParseDuration(getEnv("HTTP_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_SHUTDOWN_TIMEOUT: %w", err)
	}
	if httpShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be > 0")
	}
	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:              appEnv,
		ServiceName:         getEnv("APP_SERVICE_NAME", "bonus-tracker-api"),
		ServiceVersion:      getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:            fmt.Sprintf(":%d", httpPort),
		HTTPShutdownTimeout: httpShutdownTimeout,
		ReadTimeout:         readTimeout,
		WriteTimeout:        writeTimeout,
		CORSAllowedOrigins:  splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:      swaggerEnabled,
		PprofEnabled:        pprofEnabled,
		PprofAddr:           pprofAddr,

		DreamTeamBaseURL:               dreamTeamBaseURL,
		DreamTeamEmail:                 dreamTeamEmail,
		DreamTeamPassword:              dreamTeamPassword,
		DreamTeamGameMode:              gamemode.ID(dreamTeamGameMode),
		DreamTeamTimeout:               dreamTeamTimeout,
		DreamTeamCircuitEnabled:        dreamTeamCircuitEnabled,
		DreamTeamCircuitFailureCount:   dreamTeamCircuitFailureCount,
		DreamTeamCircuitOpenTimeout:    dreamTeamCircuitOpenTimeout,
		DreamTeamCircuitHalfOpenMaxReq: dreamTeamCircuitHalfOpenMaxReq,

		LeagueMaxTeams:      leagueMaxTeams,
		LeagueFanoutWorkers: leagueFanoutWorkers,

		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		UptraceCaptureRequestBody:  uptraceCaptureRequestBody,
		UptraceRequestBodyMaxBytes: uptraceRequestBodyMaxBytes,

		BetterStackEnabled:   betterStackEnabled,
		BetterStackIngestURL: betterStackIngestURL,
		BetterStackToken:     strings.TrimSpace(getEnv("BETTERSTACK_SOURCE_TOKEN", "")),
		BetterStackTimeout:   betterStackTimeout,
		BetterStackMinLevel:  betterStackMinLevel,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,

		LogLevel: parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
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

// HasDreamTeamCredentials reports whether both boot credentials are present.
func (c Config) HasDreamTeamCredentials() bool {
	return c.DreamTeamEmail != "" && c.DreamTeamPassword != ""
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

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
