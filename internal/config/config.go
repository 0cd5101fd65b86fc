package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig    `toml:"server"`
	Logs           LogsConfig      `toml:"logs"`
	Metrics        MetricsConfig   `toml:"metrics"`
	RoomDirectory  UpstreamConfig  `toml:"room_directory"`
	BookingGateway UpstreamConfig  `toml:"booking_gateway"`
	Booking        BookingConfig   `toml:"booking"`
	Cache          CacheConfig     `toml:"cache"`
	Journal        JournalConfig   `toml:"journal"`
	Database       DatabaseConfig  `toml:"database"`
	RateLimit      RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"gt=0,lt=65536"`
	ReadTimeout     int `toml:"read_timeout" validate:"gt=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"gt=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"gt=0"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"startswith=/"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// UpstreamConfig адрес удаленного сервиса (таймаут в секундах)
type UpstreamConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Timeout int    `toml:"timeout" validate:"gt=0"`
}

// TimeoutDuration таймаут как time.Duration
func (u UpstreamConfig) TimeoutDuration() time.Duration {
	return time.Duration(u.Timeout) * time.Second
}

// BookingConfig правила бронирования, зависящие от площадки
type BookingConfig struct {
	// Timezone IANA-зона, в которой трактуются дата и время черновика ("Local" - зона процесса)
	Timezone string `toml:"timezone"`
}

// Location загружает часовой пояс
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" || b.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(b.Timezone)
}

// CacheConfig настройки redis-кеша списков аудиторий
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr" validate:"required_if=Enabled true"`
	Password   string `toml:"password"`
	DB         int    `toml:"db" validate:"gte=0"`
	TTLSeconds int    `toml:"ttl_seconds" validate:"gte=0"`
}

// TTL время жизни кешированного списка
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// JournalConfig журнал попыток отправки (требует database)
type JournalConfig struct {
	Enabled bool `toml:"enabled"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RateLimitConfig ограничение частоты запросов на пользователя
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute" validate:"required_if=Enabled true,gte=0"`
	Burst             int  `toml:"burst" validate:"required_if=Enabled true,gte=0"`
}

// Переменные окружения, перекрывающие значения из файла
const (
	envRoomDirectoryURL  = "ROOM_DIRECTORY_URL"
	envBookingGatewayURL = "BOOKING_GATEWAY_URL"
	envDatabasePassword  = "DB_PASSWORD"
	envRedisPassword     = "REDIS_PASSWORD"
	envHTTPPort          = "HTTP_PORT"
	envTimezone          = "BOOKING_TIMEZONE"
)

// Load читает конфигурацию из TOML-файла, применяет .env и переменные окружения,
// заполняет значения по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env необязателен: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(envRoomDirectoryURL); v != "" {
		cfg.RoomDirectory.URL = v
	}
	if v := os.Getenv(envBookingGatewayURL); v != "" {
		cfg.BookingGateway.URL = v
	}
	if v := os.Getenv(envDatabasePassword); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(envRedisPassword); v != "" {
		cfg.Cache.Password = v
	}
	if v := os.Getenv(envTimezone); v != "" {
		cfg.Booking.Timezone = v
	}
	if v := os.Getenv(envHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a number: %w", envHTTPPort, err)
		}
		cfg.Server.HTTPPort = port
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.RoomDirectory.Timeout == 0 {
		cfg.RoomDirectory.Timeout = 5
	}
	if cfg.BookingGateway.Timeout == 0 {
		cfg.BookingGateway.Timeout = 10
	}
	if cfg.Booking.Timezone == "" {
		cfg.Booking.Timezone = "Local"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 60
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}

	if _, err := cfg.Booking.Location(); err != nil {
		return fmt.Errorf("config: invalid booking.timezone %q: %w", cfg.Booking.Timezone, err)
	}

	// Отправка с конфликтом ждет BookingGateway, затем RoomDirectory: ответ должен успеть уйти клиенту
	if submitPath := cfg.BookingGateway.Timeout + cfg.RoomDirectory.Timeout; cfg.Server.WriteTimeout <= submitPath {
		return fmt.Errorf("config: server.write_timeout (%ds) must exceed booking_gateway.timeout + room_directory.timeout (%ds)",
			cfg.Server.WriteTimeout, submitPath)
	}

	if cfg.Journal.Enabled && (cfg.Database.Host == "" || cfg.Database.DBName == "") {
		return errors.New("config: journal.enabled requires database.host and database.dbname")
	}

	return nil
}
