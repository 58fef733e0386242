package config

import (
	"github.com/caarlos0/env/v6"
)

// Config 应用配置
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://127.0.0.1:27017"`
	MongoDB  string `env:"MONGO_DB" envDefault:"estate_crm"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
}

// Debug 是否为调试模式
func (c *Config) Debug() bool {
	return c.GinMode == "debug"
}

// LoadConfig 从环境变量加载配置
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
