package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	NotifierModeDirect = "direct"
	NotifierModeKafka  = "kafka"
)

const (
	defaultTokenTTL           = 30 * 24 * time.Hour
	defaultPhoneCountryCode   = "+254"
	defaultNotifierTimeout    = 5 * time.Second
	defaultFCMEndpoint        = "https://fcm.googleapis.com/fcm/send"
	defaultBlacklistCleanup   = time.Hour
	defaultRedisDB            = 0
	defaultPushProcessTimeout = 10 * time.Second
	defaultDBMaxConns         = 10
	defaultDBMinConns         = 2
)

type (
	Tasks struct {
		BlacklistCleanupInterval time.Duration
	}

	HTTPServer struct {
		Port               string
		GRPCPort           string
		RequestTimeout     time.Duration // middleware timeout
		RateLimiterQPS     int           // middleware rate limiter capacity
		RateLimiterBurst   int           // middleware rate limiter refill
		PprofEnabled       bool
		PprofPort          string
		CORSAllowedOrigins []string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int32
		MinConns int32
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Auth struct {
		JWTSecret        string
		TokenTTL         time.Duration
		BcryptCost       int
		PhoneCountryCode string
	}

	Orders struct {
		StrictTransitions bool
	}

	Notifier struct {
		Mode        string
		Timeout     time.Duration
		FCMEndpoint string
		FCMAPIKey   string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PushRequested PushRequested
	}

	PushRequested struct {
		ProcessTimeout time.Duration
	}

	Logging struct {
		Level string
		File  string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Auth     Auth
		Orders   Orders
		Notifier Notifier
		Kafka    Kafka
		Logging  Logging
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// KafkaBrokers список брокеров из KAFKA_BROKERS через запятую.
func (k Kafka) KafkaBrokers() []string {
	brokers := strings.Split(k.Brokers, ",")
	result := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			result = append(result, b)
		}
	}
	return result
}

func loadFromEnv() (*Config, error) {
	blacklistCleanup, err := osGetEnvDuration("BACKGROUND_BLACKLIST_CLEANUP_INTERVAL", defaultBlacklistCleanup)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED", false)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB", defaultRedisDB)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbMaxConns, err := osGetInt("POSTGRES_MAX_CONNS", defaultDBMaxConns)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbMinConns, err := osGetInt("POSTGRES_MIN_CONNS", defaultDBMinConns)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tokenTTL, err := osGetEnvDuration("AUTH_TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	bcryptCost, err := osGetInt("AUTH_BCRYPT_COST", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	strictTransitions, err := osGetBool("ORDER_STRICT_TRANSITIONS", true)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	notifierTimeout, err := osGetEnvDuration("NOTIFIER_TIMEOUT", defaultNotifierTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT", false)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pushProcessTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PUSH_REQUESTED_PROCESS_TIMEOUT", defaultPushProcessTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			BlacklistCleanupInterval: blacklistCleanup,
		},
		Server: HTTPServer{
			Port:               os.Getenv("PORT"),
			GRPCPort:           os.Getenv("GRPC_PORT"),
			RequestTimeout:     requestTimeout,
			RateLimiterQPS:     rateLimiterQPS,
			RateLimiterBurst:   rateLimiterBurst,
			PprofEnabled:       pprofEnabled,
			PprofPort:          os.Getenv("PPROF_PORT"),
			CORSAllowedOrigins: osGetList("CORS_ALLOWED_ORIGINS"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			MaxConns: int32(dbMaxConns), //nolint:gosec // размер пула
			MinConns: int32(dbMinConns), //nolint:gosec // размер пула
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Auth: Auth{
			JWTSecret:        os.Getenv("AUTH_JWT_SECRET"),
			TokenTTL:         tokenTTL,
			BcryptCost:       bcryptCost,
			PhoneCountryCode: osGetString("PHONE_COUNTRY_CODE", defaultPhoneCountryCode),
		},
		Orders: Orders{
			StrictTransitions: strictTransitions,
		},
		Notifier: Notifier{
			Mode:        osGetString("NOTIFIER_MODE", NotifierModeDirect),
			Timeout:     notifierTimeout,
			FCMEndpoint: osGetString("FCM_ENDPOINT", defaultFCMEndpoint),
			FCMAPIKey:   os.Getenv("FCM_API_KEY"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PushRequested: PushRequested{
					ProcessTimeout: pushProcessTimeout,
				},
			},
		},
		Logging: Logging{
			Level: os.Getenv("LOG_LEVEL"),
			File:  os.Getenv("LOG_FILE"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if cfg.Database.MaxConns <= 0 || cfg.Database.MinConns < 0 || cfg.Database.MinConns > cfg.Database.MaxConns {
		return errors.New("POSTGRES_MIN_CONNS and POSTGRES_MAX_CONNS must satisfy 0 <= min <= max, max > 0")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}
	if !strings.HasPrefix(cfg.Auth.PhoneCountryCode, "+") {
		return errors.New("PHONE_COUNTRY_CODE must start with +")
	}

	if cfg.Tasks.BlacklistCleanupInterval <= 0 {
		return errors.New("BACKGROUND_BLACKLIST_CLEANUP_INTERVAL must be positive")
	}

	switch cfg.Notifier.Mode {
	case NotifierModeDirect:
		if cfg.Notifier.FCMAPIKey == "" {
			return errors.New("FCM_API_KEY is required for NOTIFIER_MODE=direct")
		}
	case NotifierModeKafka:
		if err := validateKafkaProducer(&cfg.Kafka); err != nil {
			return err
		}
	default:
		return fmt.Errorf("NOTIFIER_MODE=%q is not supported", cfg.Notifier.Mode)
	}

	return nil
}

// ValidateWorker проверяет конфиг воркера push-уведомлений (cmd/worker-push-requested).
func ValidateWorker(cfg *Config) error {
	if err := validateKafkaProducer(&cfg.Kafka); err != nil {
		return err
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Handlers.PushRequested.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_PUSH_REQUESTED_PROCESS_TIMEOUT must be positive")
	}
	if cfg.Notifier.FCMAPIKey == "" {
		return errors.New("FCM_API_KEY is required")
	}
	return nil
}

func validateKafkaProducer(cfg *Kafka) error {
	if len(cfg.KafkaBrokers()) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	return nil
}

// LoadWorker загружает конфиг без проверок HTTP сервиса.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := ValidateWorker(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase только то, что нужно миграциям.
func LoadDatabase() (*Database, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, errors.New("validation: POSTGRES_HOST and POSTGRES_DB are required")
	}
	return &cfg.Database, nil
}

func osGetString(s, def string) string {
	val := os.Getenv(s)
	if val == "" {
		return def
	}
	return val
}

func osGetList(s string) []string {
	val := os.Getenv(s)
	if val == "" {
		return nil
	}

	parts := strings.Split(val, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func osGetInt(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string, def bool) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
