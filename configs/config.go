package configs

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values. Connection handles are not kept
// here; the process entry point opens them and passes them down.
type Config struct {
	Port      string
	JWTSecret string
	JWTExpire time.Duration

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDB       string

	RedisURL string

	KafkaBrokers []string
	KafkaTopic   string
}

var (
	configInstance *Config
	once           sync.Once
)

// Load loads configuration from the .env file and environment
func Load() *Config {
	once.Do(func() {
		viper.SetConfigName(".env")
		viper.SetConfigType("env")
		viper.AddConfigPath(".")

		viper.SetDefault("INVEST_PORT", "8080")
		viper.SetDefault("INVEST_JWT_SECRET", "secret")
		viper.SetDefault("INVEST_JWT_EXPIRE", "24h")
		viper.SetDefault("MYSQL_USER", "root")
		viper.SetDefault("MYSQL_PASSWORD", "password")
		viper.SetDefault("MYSQL_HOST", "localhost")
		viper.SetDefault("MYSQL_PORT", "3306")
		viper.SetDefault("MYSQL_DB", "invest")
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("KAFKA_BROKERS", "")
		viper.SetDefault("KAFKA_TOPIC", "vote-events")
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			log.Printf("Warning: Error reading .env file: %v", err)
			log.Printf("Using environment variables and defaults")
		}

		expire, err := time.ParseDuration(viper.GetString("INVEST_JWT_EXPIRE"))
		if err != nil {
			log.Fatal("Invalid INVEST_JWT_EXPIRE format")
		}

		var brokers []string
		if raw := viper.GetString("KAFKA_BROKERS"); raw != "" {
			for _, b := range strings.Split(raw, ",") {
				brokers = append(brokers, strings.TrimSpace(b))
			}
		}

		configInstance = &Config{
			Port:          viper.GetString("INVEST_PORT"),
			JWTSecret:     viper.GetString("INVEST_JWT_SECRET"),
			JWTExpire:     expire,
			MySQLUser:     viper.GetString("MYSQL_USER"),
			MySQLPassword: viper.GetString("MYSQL_PASSWORD"),
			MySQLHost:     viper.GetString("MYSQL_HOST"),
			MySQLPort:     viper.GetString("MYSQL_PORT"),
			MySQLDB:       viper.GetString("MYSQL_DB"),
			RedisURL:      viper.GetString("REDIS_URL"),
			KafkaBrokers:  brokers,
			KafkaTopic:    viper.GetString("KAFKA_TOPIC"),
		}
	})
	return configInstance
}
