package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
	StoreRedis  = "redis"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string        `mapstructure:"server_port"`
	StoreDriver     string        `mapstructure:"store_driver"`
	MySQLDSN        string        `mapstructure:"mysql_dsn"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisDB         int           `mapstructure:"redis_db"`
	RedisPass       string        `mapstructure:"redis_password"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	SwaggerHost     string        `mapstructure:"swagger_host"`
	PasswordHashing string        `mapstructure:"password_hashing"`
	LoginLatency    time.Duration `mapstructure:"login_latency"`
	SignupLatency   time.Duration `mapstructure:"signup_latency"`
	LogLevel        string        `mapstructure:"log_level"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

var defaults = map[string]any{
	"server_port":      "8080",
	"store_driver":     StoreMemory,
	"mysql_dsn":        "user:password@tcp(localhost:3306)/kenyareal?charset=utf8mb4&parseTime=True&loc=Local",
	"redis_addr":       "localhost:6379",
	"redis_db":         0,
	"redis_password":   "",
	"jwt_secret":       "change-me",
	"swagger_host":     "",
	"password_hashing": "plain",
	"login_latency":    600 * time.Millisecond,
	"signup_latency":   700 * time.Millisecond,
	"log_level":        "info",
	"cors_origins":     "http://localhost:5173",
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
		// Unmarshal only sees keys viper knows about, so bind each one explicitly.
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.CORSOrigins = splitList(v.GetString("cors_origins"))
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
