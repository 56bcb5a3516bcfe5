package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCredentialsFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "configkey.json")
	if err := os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600); err != nil {
		t.Fatalf("write credentials file: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Run("missing credentials file fails", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("FIREBASE_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "missing.json"))

		if _, err := LoadCatalog(); err == nil {
			t.Fatal("expected error for missing credentials file, got nil")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("FIREBASE_CREDENTIALS_FILE", writeCredentialsFile(t))

		cfg, err := LoadCatalog()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.HTTPAddr != defaultHTTPAddr {
			t.Fatalf("want default HTTPAddr %q, got %q", defaultHTTPAddr, cfg.HTTPAddr)
		}
		if cfg.Collection != defaultCollection {
			t.Fatalf("want default collection %q, got %q", defaultCollection, cfg.Collection)
		}
		if cfg.ImagesDir != defaultImagesDir {
			t.Fatalf("want default images dir %q, got %q", defaultImagesDir, cfg.ImagesDir)
		}
		if cfg.AllowedOrigin != defaultAllowedOrigin {
			t.Fatalf("want default origin %q, got %q", defaultAllowedOrigin, cfg.AllowedOrigin)
		}
		if cfg.RabbitMQURL != "" {
			t.Fatalf("want empty RabbitMQURL, got %q", cfg.RabbitMQURL)
		}
		if cfg.ShutdownTimeout != defaultShutdownTimeout {
			t.Fatalf("want ShutdownTimeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("FIREBASE_CREDENTIALS_FILE", writeCredentialsFile(t))
		t.Setenv("HTTP_ADDR", ":9090")
		t.Setenv("FIRESTORE_COLLECTION", "catalog")
		t.Setenv("ALLOWED_ORIGIN", "http://localhost:3000")
		t.Setenv("RABBITMQ_URL", "amqp://localhost")

		cfg, err := LoadCatalog()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.HTTPAddr != ":9090" {
			t.Fatalf("want HTTPAddr :9090, got %q", cfg.HTTPAddr)
		}
		if cfg.Collection != "catalog" {
			t.Fatalf("want collection catalog, got %q", cfg.Collection)
		}
		if cfg.AllowedOrigin != "http://localhost:3000" {
			t.Fatalf("want overridden origin, got %q", cfg.AllowedOrigin)
		}
		if cfg.RabbitMQURL != "amqp://localhost" {
			t.Fatalf("want RabbitMQURL set, got %q", cfg.RabbitMQURL)
		}
	})
}

func TestLoadNotifier(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing RABBITMQ_URL",
			env:     map[string]string{},
			wantErr: "RABBITMQ_URL is required",
		},
		{
			name: "valid config",
			env:  map[string]string{"RABBITMQ_URL": "amqp://localhost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadNotifier()
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got nil", tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Fatalf("want error %q, got %q", tt.wantErr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.RabbitMQURL != tt.env["RABBITMQ_URL"] {
				t.Fatalf("want RabbitMQURL %q, got %q", tt.env["RABBITMQ_URL"], cfg.RabbitMQURL)
			}
			if cfg.ShutdownTimeout != defaultShutdownTimeout {
				t.Fatalf("want ShutdownTimeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
			}
		})
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"HTTP_ADDR", "FIREBASE_CREDENTIALS_FILE", "FIRESTORE_COLLECTION",
		"IMAGES_DIR", "ALLOWED_ORIGIN", "RABBITMQ_URL",
	}
	for _, key := range keys {
		if val, ok := os.LookupEnv(key); ok {
			t.Setenv(key, val)
		}
		os.Unsetenv(key)
	}
}
