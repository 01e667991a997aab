package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Blockchain BlockchainConfig
	Profile    ProfileConfig
	Loans      LoanConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds wallet session token configuration
type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

// BlockchainConfig holds the loan contract location
type BlockchainConfig struct {
	PolygonAmoyRPC      string
	LoanContractAddress string
}

// ProfileConfig tunes merchant profile assembly
type ProfileConfig struct {
	CacheTTL time.Duration
}

// LoanConfig tunes loan request handling
type LoanConfig struct {
	RequestMaxAge time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "solvi"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			SessionExpiry: getEnvAsDuration("JWT_SESSION_EXPIRY", 24*time.Hour),
		},
		Blockchain: BlockchainConfig{
			PolygonAmoyRPC:      getEnv("POLYGON_AMOY_RPC_URL", "https://rpc-amoy.polygon.technology"),
			LoanContractAddress: getEnv("LOAN_CONTRACT_ADDRESS", "0xf8e81D47203A594245E36C48e151709F0C19fBe8"),
		},
		Profile: ProfileConfig{
			CacheTTL: getEnvAsDuration("PROFILE_CACHE_TTL", 15*time.Minute),
		},
		Loans: LoanConfig{
			RequestMaxAge: getEnvAsDuration("LOAN_REQUEST_MAX_AGE", 7*24*time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
