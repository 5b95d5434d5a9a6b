package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type APIConfig struct {
	App    App
	DB     DB
	Logger Logger
	Server Server
}

func LoadAPIConfig() (APIConfig, error) {
	var config APIConfig

	if err := env.Parse(&config); err != nil {
		return APIConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

type PollCleanupServiceConfig struct {
	App       App
	DB        DB
	Logger    Logger
	Retention Retention
}

func LoadPollCleanupServiceConfig() (PollCleanupServiceConfig, error) {
	var config PollCleanupServiceConfig

	if err := env.Parse(&config); err != nil {
		return PollCleanupServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
