package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// Database
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// Redis
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// OpenAI-compatible completion API
	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIAPIEndpoint string `mapstructure:"OPENAI_API_ENDPOINT"`
	OpenAIModel       string `mapstructure:"OPENAI_MODEL"`

	// JWT
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Shared secret for /internal routes
	InternalAuthToken string `mapstructure:"INTERNAL_AUTH_TOKEN"`

	// Daily summary batch
	SummaryCronSpec  string `mapstructure:"SUMMARY_CRON_SPEC"`
	ClassifyTimeoutS int    `mapstructure:"CLASSIFY_TIMEOUT_SECONDS"`
}

// LoadConfig reads configuration from an optional .env file and the environment.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	// 00:05 KST, right after the day boundary
	viper.SetDefault("SUMMARY_CRON_SPEC", "5 0 * * *")
	viper.SetDefault("CLASSIFY_TIMEOUT_SECONDS", 30)

	err = viper.ReadInConfig()
	if err != nil {
		// The config file is optional; environment variables still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

// GetDBConnString returns the MySQL DSN.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString returns the Redis address.
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// ClassifyTimeout bounds a single remote classification call.
func (c *Config) ClassifyTimeout() time.Duration {
	if c.ClassifyTimeoutS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.ClassifyTimeoutS) * time.Second
}
