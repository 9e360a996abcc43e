// Package database provides the relational database infrastructure components
package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Client defines the interface for database operations
// It provides methods for schema migration, connectivity checks,
// getting the database instance, and closing connections
type Client interface {
	// Migrate runs auto-migration for the given models
	// Table creation is idempotent: running it against an existing
	// schema is a no-op
	Migrate(dst ...any) error
	// Ping verifies the database connection is alive
	Ping() error
	// GetDB returns the underlying gorm.DB instance
	GetDB() *gorm.DB
	// Close closes the database connection
	Close() error
}

// client manages database connections and operations
type client struct {
	// DB is the GORM database instance
	DB *gorm.DB
}

// NewClient creates a new database client based on the configuration
// PostgreSQL is used when a host is configured; otherwise it opens a
// local SQLite file so the application runs without any server
// Returns a Client interface and an error if initialization fails
func NewClient(cfg Config) (Client, error) {
	var loggerInterface logger.Interface
	if cfg.Debug {
		loggerInterface = logger.Default.LogMode(logger.Info)
	} else {
		loggerInterface = logger.Default.LogMode(logger.Silent)
	}

	dialector := openDialector(cfg)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: loggerInterface,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool
	dbSQL, err := db.DB()
	if err != nil {
		return nil, err
	}

	dbSQL.SetMaxIdleConns(cfg.MaxIdleConns)
	dbSQL.SetMaxOpenConns(cfg.MaxOpenConns)
	dbSQL.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)
	dbSQL.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	// Test the database connection
	if err := dbSQL.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &client{
		DB: db,
	}, nil
}

// openDialector selects the GORM dialector for the configured backend
func openDialector(cfg Config) gorm.Dialector {
	if cfg.Host == "" {
		path := cfg.SQLitePath
		if path == "" {
			path = "email.db"
		}
		return sqlite.Open(path)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
	if cfg.ConnectTimeout > 0 {
		dsn += fmt.Sprintf(" connect_timeout=%d", cfg.ConnectTimeout)
	}
	return postgres.Open(dsn)
}

// Migrate runs auto-migration for the given models
// Returns an error if the migration fails
func (c *client) Migrate(dst ...any) error {
	if err := c.DB.AutoMigrate(dst...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	return nil
}

// Ping verifies the database connection is alive
func (c *client) Ping() error {
	dbSQL, err := c.DB.DB()
	if err != nil {
		return err
	}
	return dbSQL.Ping()
}

// GetDB returns the underlying gorm.DB instance
// This allows direct access to the GORM database for custom operations
func (c *client) GetDB() *gorm.DB {
	return c.DB
}

// Close closes the database connection
// Returns an error if closing the connection fails
func (c *client) Close() error {
	dbSQL, err := c.DB.DB()
	if err != nil {
		return err
	}
	return dbSQL.Close()
}
