package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Storage drivers: "memory" keeps everything in-process.
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	ChatDriver    string `mapstructure:"CHAT_DRIVER"`
	StatusQueue   string `mapstructure:"STATUS_QUEUE"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisChatDB   int    `mapstructure:"REDIS_CHAT_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking lifecycle timings.
	EnRouteDelay   time.Duration `mapstructure:"EN_ROUTE_DELAY"`
	ArrivalWindow  time.Duration `mapstructure:"ARRIVAL_WINDOW"`
	ChatReplyDelay time.Duration `mapstructure:"CHAT_REPLY_DELAY"`
	ChatTTL        time.Duration `mapstructure:"CHAT_TTL"`
}

const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
	DriverRedis  = "redis"
	QueueTimer   = "timer"
	QueueAsynq   = "asynq"
)

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STORAGE_DRIVER", DriverMemory)
	viper.SetDefault("CHAT_DRIVER", DriverMemory)
	viper.SetDefault("STATUS_QUEUE", QueueTimer)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "calmfix")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CHAT_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("EN_ROUTE_DELAY", "5s")
	viper.SetDefault("ARRIVAL_WINDOW", "20m")
	viper.SetDefault("CHAT_REPLY_DELAY", "2s")
	viper.SetDefault("CHAT_TTL", "24h")
}

// bootstrapLogger logs while loading config, before utils.InitializeLogger can read LOG_LEVEL.
func bootstrapLogger() *zap.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func LoadConfig() {
	logger := bootstrapLogger()
	defer logger.Sync() //nolint:errcheck

	// A local .env is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		logger.Info("no config file found, using environment variables only", zap.Error(err))
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
