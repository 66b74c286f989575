package configs

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port     string
		Env      string
		LogLevel string
	}
	Database struct {
		Host         string
		Port         string
		User         string
		Password     string
		Name         string
		SSLMode      string
		MaxOpenConns int
		MaxIdleConns int
	}
	WebSocket struct {
		MaxMessageSize int
		RateLimit      float64
		RateBurst      int
	}
	// The signing secret itself stays in the environment (AUTH_SECRET),
	// loaded from .env; it never passes through the config file.
	Auth struct {
		SessionTTL string
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("./configs/.env"); err != nil {
		log.Info("No .env file found")
	}

	viper.SetConfigName("config")    // Name of the config file (without extension)
	viper.SetConfigType("yaml")      // Config file type
	viper.AddConfigPath("./configs") // Path to look for the config file
	viper.AutomaticEnv()             // Automatically map environment variables

	// Allow dots in environment variables to map to nested keys
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read the config file
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	// Substitute ${VAR} references with environment values
	substituteEnvVarsInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Helper function to manually replace environment variables in config file values
func substituteEnvVarsInConfig() {
	for _, key := range viper.AllKeys() {
		value := viper.GetString(key)
		if strings.Contains(value, "${") {
			replacedValue := os.Expand(value, func(name string) string {
				return os.Getenv(name)
			})
			viper.Set(key, replacedValue)
		}
	}
}
