package config

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	MetricsAddr     string        `yaml:"metrics_address" env:"METRICS_ADDRESS" env-default:""`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"1m"`
	RunMigrations   bool          `yaml:"RUN_MIGRATIONS" env:"PG_RUN_MIGRATIONS" env-default:"true"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// RateConfig bounds checkout attempts per customer inside a sliding window.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY"`
}

type OtelConfig struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"retail-platform"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Security     Security     `yaml:"security"`
	Otel         OtelConfig   `yaml:"otel"`
	Cache        CacheConfig  `yaml:"cache"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the YAML config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg
}

// LoadConfigFromPath reads the YAML file at path and applies env overrides.
func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}

	return u.String()
}

func (r *RedisConnect) GetDSN() string {
	u := url.URL{
		Scheme: "redis",
		Host:   r.Host + ":" + r.Port,
		Path:   fmt.Sprintf("%d", r.DB),
	}

	if r.Username != "" || r.Password != "" {
		u.User = url.UserPassword(r.Username, r.Password)
	}

	return u.String()
}
