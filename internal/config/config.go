package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/StayFinder-BookingService/internal/availability"
)

// Источники данных об объектах размещения
const (
	SourceAPI      = "api"
	SourcePostgres = "postgres"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при недопустимых значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	StayAPI      StayAPIConfig      `toml:"stay_api"`
	Availability AvailabilityConfig `toml:"availability"`
	Picker       PickerConfig       `toml:"picker"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки подключения к read-модели календаря
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

// DSN формирует строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки кэша объектов
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// TTL возвращает время жизни записи кэша
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// StayAPIConfig настройки клиента StayFinder API
type StayAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`

	// Circuit breaker
	BreakerMaxRequests  uint32  `toml:"breaker_max_requests"`
	BreakerInterval     int     `toml:"breaker_interval"`
	BreakerTimeout      int     `toml:"breaker_timeout"`
	BreakerFailureRatio float64 `toml:"breaker_failure_ratio"`
	BreakerMinRequests  uint32  `toml:"breaker_min_requests"`
}

// AvailabilityConfig настройки движка доступности
type AvailabilityConfig struct {
	Source          string `toml:"source"`
	MalformedRanges string `toml:"malformed_ranges"`
}

// PickerConfig настройки календаря
type PickerConfig struct {
	Timezone  string `toml:"timezone"`
	WeekStart string `toml:"week_start"`
}

// Load читает конфигурацию из TOML файла.
// Переменная окружения CONFIG_PATH имеет приоритет над path.
func Load(path string) (*Config, error) {
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		path = envPath
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "stayfinder-booking"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.TTLSeconds == 0 {
		c.Redis.TTLSeconds = 60
	}

	if c.StayAPI.Timeout == 0 {
		c.StayAPI.Timeout = 5
	}
	if c.StayAPI.BreakerMaxRequests == 0 {
		c.StayAPI.BreakerMaxRequests = 1
	}
	if c.StayAPI.BreakerInterval == 0 {
		c.StayAPI.BreakerInterval = 60
	}
	if c.StayAPI.BreakerTimeout == 0 {
		c.StayAPI.BreakerTimeout = 30
	}
	if c.StayAPI.BreakerFailureRatio == 0 {
		c.StayAPI.BreakerFailureRatio = 0.6
	}
	if c.StayAPI.BreakerMinRequests == 0 {
		c.StayAPI.BreakerMinRequests = 5
	}

	if c.Availability.Source == "" {
		c.Availability.Source = SourceAPI
	}
	if c.Availability.MalformedRanges == "" {
		c.Availability.MalformedRanges = string(availability.DefaultPolicy)
	}

	if c.Picker.Timezone == "" {
		c.Picker.Timezone = "Local"
	}
	if c.Picker.WeekStart == "" {
		c.Picker.WeekStart = "sunday"
	}
}

// Секреты не хранятся в файле конфигурации
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// Validate проверяет значения перечислений и обязательные поля
func (c *Config) Validate() error {
	switch c.Availability.Source {
	case SourceAPI:
	case SourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database host and dbname are required for source %q", ErrInvalidConfig, SourcePostgres)
		}
	default:
		return fmt.Errorf("%w: unknown availability source %q", ErrInvalidConfig, c.Availability.Source)
	}

	// Бронирования всегда уходят в StayFinder API
	if c.StayAPI.URL == "" {
		return fmt.Errorf("%w: stay_api.url is required", ErrInvalidConfig)
	}

	if _, err := availability.ParsePolicy(c.Availability.MalformedRanges); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if _, err := c.WeekStartDay(); err != nil {
		return err
	}

	return nil
}

// MalformedRangePolicy возвращает политику обработки некорректных диапазонов
func (c *Config) MalformedRangePolicy() availability.MalformedRangePolicy {
	policy, err := availability.ParsePolicy(c.Availability.MalformedRanges)
	if err != nil {
		return availability.DefaultPolicy
	}
	return policy
}

// Location возвращает часовой пояс, в котором календарь выдает даты
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Picker.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", ErrInvalidConfig, c.Picker.Timezone, err)
	}
	return loc, nil
}

// WeekStartDay возвращает первый день недели в сетке календаря
func (c *Config) WeekStartDay() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.Picker.WeekStart)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("%w: week_start must be sunday or monday, got %q", ErrInvalidConfig, c.Picker.WeekStart)
	}
}
