package config

import (
	"time"

	"github.com/maxviazov/cricket-roster-service/internal/logger"
)

type Config struct {
	App       AppConfig           `mapstructure:"app"`
	Logger    logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Roster    RosterConfig        `mapstructure:"roster"`
	Generator GeneratorConfig     `mapstructure:"generator"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version"`
	Env             string        `mapstructure:"env"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// RosterConfig holds the startup state of a session.
type RosterConfig struct {
	DefaultTeamName  string `mapstructure:"default_team_name" validate:"required"`
	MaxTeamSize      int    `mapstructure:"max_team_size" validate:"min=1"`
	AllowedTeamSizes []int  `mapstructure:"allowed_team_sizes" validate:"dive,min=1"`
	InitialPoolSize  int    `mapstructure:"initial_pool_size" validate:"min=0,max=500"`
}

// GeneratorConfig picks the player generation collaborator.
type GeneratorConfig struct {
	Provider string        `mapstructure:"provider" validate:"oneof=gemini synthetic"`
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Seed     uint64        `mapstructure:"seed"`
}

const (
	ProviderGemini    = "gemini"
	ProviderSynthetic = "synthetic"
)
