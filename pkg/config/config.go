package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Local development secrets live in .env; missing file is fine
		_ = godotenv.Load()

		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("ARCHIVE")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		fmt.Println("Warning: No database path configured")
	}

	switch backend := viper.GetString("storage.backend"); backend {
	case "s3", "filesystem":
	default:
		return fmt.Errorf("invalid storage backend: %s", backend)
	}

	if err := validateAPIKeys(); err != nil {
		return err
	}

	// Auto-correct nonsensical inter-item delay
	if viper.GetDuration("workflow.process_all_delay") < 0 {
		viper.Set("workflow.process_all_delay", 500*time.Millisecond)
	}

	return nil
}

// validateAPIKeys validates that API keys are not using placeholder values
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	// List of placeholder values that shouldn't be used
	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
		"",
	}

	genaiKey := viper.GetString("genai.api_key")
	for _, placeholder := range placeholders {
		if genaiKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid generative AI API key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: generative AI API key is using a placeholder value")
			break
		}
	}

	jwtSecret := viper.GetString("auth.jwt_secret")
	for _, placeholder := range placeholders {
		if jwtSecret == placeholder {
			if isProduction {
				return fmt.Errorf("invalid JWT secret: cannot use placeholder values in production")
			}
			fmt.Println("Warning: JWT secret is using a placeholder value - this is insecure!")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Storage.Backend {
	case "s3", "filesystem":
	default:
		return fmt.Errorf("invalid storage backend: %s", c.Storage.Backend)
	}

	if c.Workflow.ProcessAllDelay < 0 {
		c.Workflow.ProcessAllDelay = 500 * time.Millisecond
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/archive.db")
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.backend", "filesystem")
	viper.SetDefault("storage.base_dir", "./data/objects")
	viper.SetDefault("storage.base_url", "http://localhost:8080/files")
	viper.SetDefault("storage.s3.endpoint", "")
	viper.SetDefault("storage.s3.region", "us-east-1")
	viper.SetDefault("storage.s3.bucket", "archive-media")
	viper.SetDefault("storage.s3.use_ssl", true)
	viper.SetDefault("storage.s3.public_url", "")

	// Generative AI defaults
	viper.SetDefault("genai.model", "gemini-1.5-flash")
	viper.SetDefault("genai.temperature", 0.4)
	viper.SetDefault("genai.timeout", 60*time.Second)

	// Vision endpoint defaults
	viper.SetDefault("vision.face_detect_url", "http://localhost:5001/detect")
	viper.SetDefault("vision.face_identify_url", "http://localhost:5001/identify")
	viper.SetDefault("vision.element_detect_url", "http://localhost:5002/detect")
	viper.SetDefault("vision.timeout", 60*time.Second)

	// Workflow defaults
	viper.SetDefault("workflow.process_all_delay", 500*time.Millisecond)
	viper.SetDefault("workflow.session_ttl", 2*time.Hour)
	viper.SetDefault("workflow.classify_default_label", "diplomatic")

	// Recognition defaults
	viper.SetDefault("recognition.create_missing_people", false)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "changeme")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.max_request_bytes", 1024*1024)
	viper.SetDefault("security.upload_max_bytes", 32*1024*1024)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
