package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается один раз при старте
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	JWT       JWTConfig       `toml:"jwt"`
	CORS      CORSConfig      `toml:"cors"`
	AdminSeed AdminSeedConfig `toml:"admin_seed"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// JWTConfig настройки подписи и валидации токенов
// Issuer и Audience опциональны: пустые значения отключают соответствующую проверку
type JWTConfig struct {
	Key      string `toml:"key"`
	Issuer   string `toml:"issuer"`
	Audience string `toml:"audience"`
}

// CORSConfig список разрешенных origin для кросс-доменных запросов
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// AdminSeedConfig стартовый администратор
// Создается при старте сервиса, только если таблица администраторов пуста
type AdminSeedConfig struct {
	Enabled  bool   `toml:"enabled"`
	Email    string `toml:"email"`
	Password string `toml:"password"`
	Profile  string `toml:"profile"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.JWT.Key == "" {
		return fmt.Errorf("config: jwt.key is required")
	}
	if len(c.JWT.Key) < 32 {
		return fmt.Errorf("config: jwt.key must be at least 32 bytes for HMAC-SHA256")
	}
	return nil
}
