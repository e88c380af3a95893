package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is
// loaded once in main and handed to the handler constructors; nothing else
// touches os.Getenv after startup.
type Config struct {
	Port         string
	DatabaseURI  string
	DatabaseName string

	JWTSecret string
	AdminKey  string

	FrontendURL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:                os.Getenv("PORT"),
		DatabaseName:        os.Getenv("DATABASE_NAME"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		AdminKey:            os.Getenv("ADMIN_KEY"),
		FrontendURL:         strings.TrimSpace(os.Getenv("FRONTEND_URL")),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "7000"
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "amanat"
	}

	cfg.DatabaseURI = BuildDatabaseURI(os.Getenv("DATABASE"), os.Getenv("DATABASE_PASSWORD"))
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("missing DATABASE env var")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing JWT_SECRET env var")
	}
	if cfg.AdminKey == "" {
		return nil, fmt.Errorf("missing ADMIN_KEY env var")
	}

	return cfg, nil
}

// BuildDatabaseURI substitutes the <PASSWORD> placeholder in the connection
// string with the configured password.
func BuildDatabaseURI(uri, password string) string {
	return strings.ReplaceAll(uri, "<PASSWORD>", password)
}
