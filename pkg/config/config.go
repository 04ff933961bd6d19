package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/xerrors"
)

// Config holds settings shared by the CLI and the web server. Values come
// from the environment, optionally seeded from a .env file.
type Config struct {
	Workers       int    // RT_WORKERS, 0 = one per CPU
	MaxDepth      int    // RT_MAX_DEPTH, 0 = renderer default
	OutputDir     string // RT_OUTPUT_DIR
	CacheDir      string // RT_CACHE_DIR, empty disables the render cache
	ServerAddress string // RT_SERVER_ADDRESS

	S3AccessKey string // S3_ACCESS_KEY
	S3SecretKey string // S3_SECRET_KEY
	S3Endpoint  string // S3_ENDPOINT
	S3Region    string // S3_REGION
	S3Bucket    string // S3_BUCKET, empty disables uploads
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		OutputDir:     "output",
		ServerAddress: ":8080",
		S3Region:      "us-east-1",
	}
}

// Load reads the given .env files (missing files are ignored) and then the
// environment. Variables already set in the environment win over .env
// values.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, xerrors.Errorf("while loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a config from the current environment on top of Default
func FromEnv() (Config, error) {
	cfg := Default()

	var err error
	if cfg.Workers, err = getInt("RT_WORKERS", cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.MaxDepth, err = getInt("RT_MAX_DEPTH", cfg.MaxDepth); err != nil {
		return Config{}, err
	}

	cfg.OutputDir = getEnv("RT_OUTPUT_DIR", cfg.OutputDir)
	cfg.CacheDir = getEnv("RT_CACHE_DIR", cfg.CacheDir)
	cfg.ServerAddress = getEnv("RT_SERVER_ADDRESS", cfg.ServerAddress)

	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", cfg.S3SecretKey)
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3Region = getEnv("S3_REGION", cfg.S3Region)
	cfg.S3Bucket = getEnv("S3_BUCKET", cfg.S3Bucket)

	return cfg, nil
}

// UploadsEnabled reports whether enough S3 settings are present to upload
func (c Config) UploadsEnabled() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// getEnv returns the variable's value or fallback when it is unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, xerrors.Errorf("invalid %s=%q: %w", key, value, err)
	}
	if n < 0 {
		return 0, xerrors.Errorf("%s must not be negative, got %d", key, n)
	}
	return n, nil
}
