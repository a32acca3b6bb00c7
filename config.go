package client

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-provided part of the client setup.
// Variables are read with the ROADMAP_ prefix, e.g. ROADMAP_API_URL.
type Config struct {
	// APIURL is the base address for every roadmap path.
	APIURL string `envconfig:"API_URL" default:"/api"`

	// Debug dumps full requests and responses. DEBUG=true also enables it.
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("ROADMAP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultBaseURL
	}
	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}
	return &cfg, nil
}
