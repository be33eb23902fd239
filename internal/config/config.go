package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Storage backend identifiers accepted in configuration.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	Logger  LoggerConfig
	Storage StorageConfig
	Redis   RedisConfig
	Quiz    QuizConfig
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

type StorageConfig struct {
	Backend    string `yaml:"backend"`
	DataDir    string `yaml:"data_dir"`
	SQLitePath string `yaml:"sqlite_path"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type QuizConfig struct {
	DefaultQuestionCount int `yaml:"default_question_count"`
}

// LoadConfig reads configuration from an optional config.yaml, falling back to
// defaults so the application runs with no config file at all. Environment
// variables override file values.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	dataDir := defaultDataDir()
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("storage.backend", BackendFile)
	viper.SetDefault("storage.data_dir", dataDir)
	viper.SetDefault("storage.sqlite_path", filepath.Join(dataDir, "flashdeck.db"))
	viper.SetDefault("redis.address", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("quiz.default_question_count", 10)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Storage: StorageConfig{
			Backend:    viper.GetString("storage.backend"),
			DataDir:    viper.GetString("storage.data_dir"),
			SQLitePath: viper.GetString("storage.sqlite_path"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Quiz: QuizConfig{
			DefaultQuestionCount: viper.GetInt("quiz.default_question_count"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		config.Storage.Backend = backend
	}
	if dir := os.Getenv("STORAGE_DATA_DIR"); dir != "" {
		config.Storage.DataDir = dir
	}
	if path := os.Getenv("STORAGE_SQLITE_PATH"); path != "" {
		config.Storage.SQLitePath = path
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	switch config.Storage.Backend {
	case BackendFile, BackendSQLite, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", config.Storage.Backend)
	}

	return config, nil
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".flashdeck"
	}
	return filepath.Join(base, "flashdeck")
}
