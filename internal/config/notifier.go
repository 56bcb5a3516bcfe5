package config

import (
	"fmt"
	"time"
)

type Notifier struct {
	RabbitMQURL     string
	ShutdownTimeout time.Duration
}

func LoadNotifier() (Notifier, error) {
	cfg := Notifier{
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if cfg.RabbitMQURL == "" {
		return Notifier{}, fmt.Errorf("RABBITMQ_URL is required")
	}

	return cfg, nil
}
