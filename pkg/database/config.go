// Package database provides the relational database infrastructure components
package database

// Config holds the database configuration
// When Host is empty the client falls back to a local SQLite file,
// otherwise it connects to PostgreSQL with the parameters below
type Config struct {
	// Host specifies the database server host; empty selects the SQLite fallback
	Host string
	// Port specifies the database server port
	Port int
	// User specifies the database user
	User string
	// Password specifies the database password
	Password string
	// DBName specifies the database name
	DBName string
	// SSLMode specifies the SSL mode for the PostgreSQL connection
	SSLMode string
	// SQLitePath specifies the file path used by the SQLite fallback
	SQLitePath string
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int
	// ConnMaxIdleTime specifies the maximum amount of time a connection may be idle, in minutes
	ConnMaxIdleTime int
	// ConnMaxLifetime specifies the maximum amount of time a connection may be reused, in minutes
	ConnMaxLifetime int
	// Debug enables or disables debug mode for database operations
	Debug bool
	// ConnectTimeout specifies the connection timeout in seconds
	ConnectTimeout int
}
