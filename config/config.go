package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"

	"feedback_service/internal/domain"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Storage   StorageConfig   `yaml:"storage"`
	DB        DBConfig        `yaml:"db"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Worker    WorkerConfig    `yaml:"worker"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Log       LogConfig       `yaml:"log"`
	Users     []UserSeed      `yaml:"users"`
}

type HTTPConfig struct {
	Address         string        `yaml:"address"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	WritesPerMinute float64       `yaml:"writes_per_minute"`
	WriteBurst      int           `yaml:"write_burst"`
}

type GRPCConfig struct {
	Address        string        `yaml:"address"`
	HealthInterval time.Duration `yaml:"health_interval"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
}

type DBConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"` //nolint:gosec // config struct, not hardcoded cred
	DBName         string `yaml:"dbname"`
	SSLMode        string `yaml:"sslmode"`
	MaxConns       int32  `yaml:"max_conns"`
	MinConns       int32  `yaml:"min_conns"`
	MigrationsPath string `yaml:"migrations_path"`
	ConnectRetries int    `yaml:"connect_retries"`
}

// RedisConfig enables the identity cache when Address is set.
type RedisConfig struct {
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"` //nolint:gosec // config struct, not hardcoded cred
	DB       int           `yaml:"db"`
	UserTTL  time.Duration `yaml:"user_ttl"`
}

// KafkaConfig enables event publishing when Brokers is non-empty.
type KafkaConfig struct {
	Brokers          []string      `yaml:"brokers"`
	FeedbackTopic    string        `yaml:"feedback_topic"`
	BacklogTopic     string        `yaml:"backlog_topic"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	BatchTimeout     time.Duration `yaml:"batch_timeout"`
	FailureThreshold int           `yaml:"failure_threshold"`
	ResetTimeout     time.Duration `yaml:"reset_timeout"`
}

type WorkerConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Interval    time.Duration `yaml:"interval"`
	BacklogAge  time.Duration `yaml:"backlog_age"`
	DigestLimit int           `yaml:"digest_limit"`
}

type AnalyticsConfig struct {
	TrendMonths int `yaml:"trend_months"`
	TopReasons  int `yaml:"top_reasons"`
	RecentLimit int `yaml:"recent_limit"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Production bool   `yaml:"production"`
}

// UserSeed is upserted into the user table at startup.
type UserSeed struct {
	ID       string `yaml:"id"`
	Role     string `yaml:"role"`
	Inactive bool   `yaml:"inactive"`
}

func Load() (*Config, error) {
	configPath := getConfigPath()
	data, err := os.ReadFile(configPath) //nolint:gosec // config path from env/flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse applies defaults, environment overrides and validation to raw YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	possiblePaths := []string{
		"config/config.yaml",
		"/etc/feedback-service/config.yaml",
		"./config.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "config.yaml"
}

func setDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 10 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.HTTP.WriteBurst == 0 {
		cfg.HTTP.WriteBurst = 5
	}

	if cfg.GRPC.HealthInterval == 0 {
		cfg.GRPC.HealthInterval = 15 * time.Second
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}

	if cfg.DB.Port == 0 {
		cfg.DB.Port = 5432
	}
	if cfg.DB.SSLMode == "" {
		cfg.DB.SSLMode = "disable"
	}
	if cfg.DB.MigrationsPath == "" {
		cfg.DB.MigrationsPath = "migrations"
	}
	if cfg.DB.ConnectRetries == 0 {
		cfg.DB.ConnectRetries = 5
	}

	if cfg.Redis.UserTTL == 0 {
		cfg.Redis.UserTTL = 5 * time.Minute
	}

	if cfg.Kafka.FeedbackTopic == "" {
		cfg.Kafka.FeedbackTopic = "feedback-events"
	}
	if cfg.Kafka.BacklogTopic == "" {
		cfg.Kafka.BacklogTopic = "moderation-backlog"
	}
	if cfg.Kafka.WriteTimeout == 0 {
		cfg.Kafka.WriteTimeout = 10 * time.Second
	}
	if cfg.Kafka.BatchTimeout == 0 {
		cfg.Kafka.BatchTimeout = 5 * time.Millisecond
	}

	if cfg.Worker.Interval == 0 {
		cfg.Worker.Interval = 10 * time.Minute
	}
	if cfg.Worker.BacklogAge == 0 {
		cfg.Worker.BacklogAge = 48 * time.Hour
	}
	if cfg.Worker.DigestLimit == 0 {
		cfg.Worker.DigestLimit = 20
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func overrideFromEnv(cfg *Config) {
	if val := os.Getenv("HTTP_ADDRESS"); val != "" {
		cfg.HTTP.Address = val
	}
	if val := os.Getenv("HTTP_CORS_ORIGINS"); val != "" {
		cfg.HTTP.CORSOrigins = strings.Split(val, ",")
	}
	if val := os.Getenv("GRPC_ADDRESS"); val != "" {
		cfg.GRPC.Address = val
	}

	if val := os.Getenv("STORAGE_DRIVER"); val != "" {
		cfg.Storage.Driver = val
	}

	if val := os.Getenv("DB_HOST"); val != "" {
		cfg.DB.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			cfg.DB.Port = port
		}
	}
	if val := os.Getenv("DB_USER"); val != "" {
		cfg.DB.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		cfg.DB.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		cfg.DB.DBName = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		cfg.DB.SSLMode = val
	}
	if val := os.Getenv("DB_MIGRATIONS_PATH"); val != "" {
		cfg.DB.MigrationsPath = val
	}

	if val := os.Getenv("REDIS_ADDRESS"); val != "" {
		cfg.Redis.Address = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		cfg.Redis.Password = val
	}

	if val := os.Getenv("KAFKA_BROKERS"); val != "" {
		cfg.Kafka.Brokers = strings.Split(val, ",")
	}
	if val := os.Getenv("KAFKA_FEEDBACK_TOPIC"); val != "" {
		cfg.Kafka.FeedbackTopic = val
	}
	if val := os.Getenv("KAFKA_BACKLOG_TOPIC"); val != "" {
		cfg.Kafka.BacklogTopic = val
	}

	if val := os.Getenv("WORKER_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			cfg.Worker.Enabled = enabled
		}
	}
	if val := os.Getenv("WORKER_INTERVAL"); val != "" {
		if interval, err := time.ParseDuration(val); err == nil {
			cfg.Worker.Interval = interval
		}
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("LOG_PRODUCTION"); val != "" {
		if production, err := strconv.ParseBool(val); err == nil {
			cfg.Log.Production = production
		}
	}
}

func validateConfig(cfg *Config) error {
	if cfg.GRPC.Address == "" {
		return fmt.Errorf("GRPC address must be set")
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.DBName == "" {
			return fmt.Errorf("database configuration is incomplete")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Worker.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("backlog worker requires at least one Kafka broker")
	}

	if _, err := cfg.SeedUsers(); err != nil {
		return err
	}

	return nil
}

// SeedUsers converts the users section into domain users.
func (c *Config) SeedUsers() ([]domain.User, error) {
	users := make([]domain.User, 0, len(c.Users))
	for i, seed := range c.Users {
		id, err := uuid.Parse(seed.ID)
		if err != nil {
			return nil, fmt.Errorf("users[%d]: invalid id %q", i, seed.ID)
		}
		role := domain.UserRole(strings.ToLower(seed.Role))
		if !role.IsValid() {
			return nil, fmt.Errorf("users[%d]: invalid role %q", i, seed.Role)
		}
		users = append(users, domain.User{ID: id, Role: role, IsActive: !seed.Inactive})
	}
	return users, nil
}
