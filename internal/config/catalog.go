package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultHTTPAddr          = ":5000"
	defaultCredentialsFile   = "assets/configkey.json"
	defaultCollection        = "products"
	defaultImagesDir         = "images"
	defaultAllowedOrigin     = "https://updatedatahomesale.netlify.app"
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

type Catalog struct {
	HTTPAddr          string
	CredentialsFile   string
	Collection        string
	ImagesDir         string
	AllowedOrigin     string
	RabbitMQURL       string
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

// LoadCatalog reads the catalog service configuration from the environment.
// RABBITMQ_URL may be empty, in which case event publishing is disabled.
func LoadCatalog() (Catalog, error) {
	cfg := Catalog{
		HTTPAddr:          getEnv("HTTP_ADDR", defaultHTTPAddr),
		CredentialsFile:   getEnv("FIREBASE_CREDENTIALS_FILE", defaultCredentialsFile),
		Collection:        getEnv("FIRESTORE_COLLECTION", defaultCollection),
		ImagesDir:         getEnv("IMAGES_DIR", defaultImagesDir),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", defaultAllowedOrigin),
		RabbitMQURL:       getEnv("RABBITMQ_URL", ""),
		ShutdownTimeout:   defaultShutdownTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	if cfg.CredentialsFile == "" {
		return Catalog{}, fmt.Errorf("FIREBASE_CREDENTIALS_FILE is required")
	}
	if _, err := os.Stat(cfg.CredentialsFile); err != nil {
		return Catalog{}, fmt.Errorf("credentials file %q: %w", cfg.CredentialsFile, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
