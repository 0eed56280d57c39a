package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	SMTP      SMTPConfig
	Auth      AuthConfig
	Inference InferenceConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SMTPConfig contains email transport configuration for the OTP mailer
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// AuthConfig contains second-factor authentication configuration.
// SecondFactor selects exactly one mechanism per deployment: "email" or "totp".
type AuthConfig struct {
	SecondFactor     string
	OTPExpiryMinutes int
	TOTPIssuer       string
	VerifyRateLimit  int
	VerifyRatePeriod int // in minutes
}

// InferenceConfig contains model serving configuration.
// ModelPaths is ordered; one ONNX session is loaded per path at startup.
type InferenceConfig struct {
	ModelPaths []string
	InputName  string
	OutputName string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}
