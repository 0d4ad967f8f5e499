package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development production test"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	// A single "*" allows any origin.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"required,min=1"`

	ReadTimeoutSeconds     int `mapstructure:"read_timeout_seconds"     validate:"gte=0"`
	WriteTimeoutSeconds    int `mapstructure:"write_timeout_seconds"    validate:"gte=0"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// IsDevelopment reports whether the server runs in development mode.
// Development mode exposes error details in 5xx responses.
func (c ServerConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`

	// MaxConns bounds the connection pool shared by all requests.
	MaxConns int32 `mapstructure:"max_conns" validate:"gt=0"`
	MinConns int32 `mapstructure:"min_conns" validate:"gte=0,ltefield=MaxConns"`

	// AutoMigrate applies pending migrations on startup.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=1440"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"required,gte=4,lte=31"`

	// BooksReadRequiresAuth puts GET /books and GET /books/{id} behind the
	// session guard. Mutating book routes are always guarded.
	BooksReadRequiresAuth bool `mapstructure:"books_read_requires_auth"`
}
