package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost   string
	ServicePort   int
	GinMode       string
	LogLevel      string
	TemplatesGlob string
	StaticDir     string
	SessionTTL    time.Duration
	MaxUploadMB   int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("GinMode", "release")
	v.SetDefault("LogLevel", "info")
	v.SetDefault("TemplatesGlob", "templates/*")
	v.SetDefault("StaticDir", "./resources")
	v.SetDefault("SessionTTL", "30m")
	v.SetDefault("MaxUploadMB", 16)
}

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("SKINLAB")
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		// без файла работаем на значениях по умолчанию
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Warn("config file not found, using defaults")
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

// SetupLogger выставляет уровень логов из конфига
func (c *Config) SetupLogger() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithError(err).Warn("bad log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
