// Package config handles application configuration loading and management
package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration
// It contains nested configurations for application, server, and infrastructure settings
type Config struct {
	// Application contains application-level settings
	Application ApplicationConfig `mapstructure:"application"`
	// Server contains HTTP server settings
	Server ServerConfig `mapstructure:"server"`
	// Infrastructure contains infrastructure connection settings
	Infrastructure InfrastructureConfig `mapstructure:"infrastructure"`
}

// ApplicationConfig holds the application-level configuration
type ApplicationConfig struct {
	// Name specifies the name of the application
	Name string `mapstructure:"name"`
	// Version specifies the version of the application
	Version string `mapstructure:"version"`
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	// Port specifies the port number the server will listen on
	Port int `mapstructure:"port"`
	// ReadTimeout defines the maximum duration for reading the entire request, in seconds
	ReadTimeout int `mapstructure:"read_timeout"` // seconds
	// WriteTimeout defines the maximum duration before timing out writes of the response, in seconds
	WriteTimeout int `mapstructure:"write_timeout"` // seconds
	// ShutdownTimeout defines the maximum duration the server will wait during shutdown, in seconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // seconds
}

// InfrastructureConfig holds the infrastructure configuration
type InfrastructureConfig struct {
	// Database contains relational database settings
	Database DatabaseConfig `mapstructure:"database"`
	// Secrets contains the secret-store settings
	Secrets SecretsConfig `mapstructure:"secrets"`
}

// DatabaseConfig holds the database configuration
// When Host is empty the application runs against a local SQLite file
type DatabaseConfig struct {
	// Host specifies the database server host
	Host string `mapstructure:"host"`
	// Port specifies the database server port
	Port int `mapstructure:"port"`
	// User specifies the database user
	User string `mapstructure:"user"`
	// Password specifies the database password
	Password string `mapstructure:"password"`
	// DBName specifies the database name
	DBName string `mapstructure:"dbname"`
	// SSLMode specifies the SSL mode for database connection
	SSLMode string `mapstructure:"sslmode"`
	// SQLitePath specifies the file used by the local SQLite fallback
	SQLitePath string `mapstructure:"sqlite_path"`
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int `mapstructure:"max_idle_conns"`
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// ConnMaxIdleTime specifies the maximum amount of time a connection may be idle, in minutes
	ConnMaxIdleTime int `mapstructure:"conn_max_idle_time"` // minutes
	// ConnMaxLifetime specifies the maximum amount of time a connection may be reused, in minutes
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"` // minutes
	// Debug enables or disables debug mode for database operations
	Debug bool `mapstructure:"debug"`
	// IsUseMigrate specifies whether to run schema migration at startup
	IsUseMigrate bool `mapstructure:"is_use_migrate"`
	// IsUseSeed specifies whether to insert starter records into an empty table
	IsUseSeed bool `mapstructure:"is_use_seed"`
}

// SecretsConfig holds the secret-store configuration
// When SecretID is set and no password is configured directly, the
// database credentials are resolved from AWS Secrets Manager at startup
type SecretsConfig struct {
	// SecretID is the name or ARN of the secret holding the database credentials
	SecretID string `mapstructure:"secret_id"`
	// Region is the AWS region of the secret store
	Region string `mapstructure:"region"`
}

// LoadConfig loads the application configuration from various sources
// It first looks for a contact-book.yaml file in the current directory and config directory
// If no config file is found, it uses environment variables and default values
// Returns a Config struct and an error if loading fails
func LoadConfig() (*Config, error) {
	viper.SetConfigName("contact-book")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("configs")

	// Environment variables override file values, with dots mapped to
	// underscores (infrastructure.database.host -> INFRASTRUCTURE_DATABASE_HOST)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("application.name", "Email Contact Database")
	viper.SetDefault("application.version", "1.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 15)     // seconds
	viper.SetDefault("server.write_timeout", 15)    // seconds
	viper.SetDefault("server.shutdown_timeout", 30) // seconds
	// Empty defaults register the credential keys so environment
	// overrides are visible to Unmarshal; an empty host selects the
	// SQLite fallback
	viper.SetDefault("infrastructure.database.host", "")
	viper.SetDefault("infrastructure.database.user", "")
	viper.SetDefault("infrastructure.database.password", "")
	viper.SetDefault("infrastructure.database.port", 5432)
	viper.SetDefault("infrastructure.database.dbname", "contacts")
	viper.SetDefault("infrastructure.database.sslmode", "disable")
	viper.SetDefault("infrastructure.database.sqlite_path", "email.db")
	viper.SetDefault("infrastructure.database.max_idle_conns", 10)
	viper.SetDefault("infrastructure.database.max_open_conns", 100)
	viper.SetDefault("infrastructure.database.conn_max_idle_time", 5) // minutes
	viper.SetDefault("infrastructure.database.conn_max_lifetime", 60) // minutes
	viper.SetDefault("infrastructure.database.debug", false)
	viper.SetDefault("infrastructure.database.is_use_migrate", true)
	viper.SetDefault("infrastructure.database.is_use_seed", true)
	viper.SetDefault("infrastructure.secrets.secret_id", "")
	viper.SetDefault("infrastructure.secrets.region", "eu-central-1")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("Config file not found, using environment variables and defaults")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that a server-backed database has a credential source
// The SQLite fallback needs no credentials at all
func (c *Config) Validate() error {
	db := c.Infrastructure.Database
	if db.Host == "" {
		return nil
	}

	if db.DBName == "" {
		return errors.New("database name is required")
	}

	// Either direct credentials or a secret to resolve them from
	if db.Password == "" && c.Infrastructure.Secrets.SecretID == "" {
		return errors.New("database password or a secret id is required")
	}
	if db.Password != "" && db.User == "" {
		return errors.New("database user is required")
	}

	return nil
}

// GetConfigPath returns the path of the loaded config file
// If no config file was loaded, it returns an empty string
func GetConfigPath() string {
	return viper.ConfigFileUsed()
}
