// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	TelegramToken string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	// MaxResults caps how many candidates a report shows per site.
	MaxResults int `yaml:"max_results"`
	// Headless controls the search browser. Turn it off to watch the
	// site navigation while debugging selectors.
	Headless bool `yaml:"headless"`
	LogJSON  bool `yaml:"log_json"`
	LogDebug bool `yaml:"log_debug"`
	// ScreenshotsPath is where failed-search page captures go.
	ScreenshotsPath string `yaml:"screenshots_path"`
	// ServerAddr is the HTTP API listen address.
	ServerAddr string `yaml:"server_addr"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	// Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if v := os.Getenv("MAX_RESULTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid MAX_RESULTS: %v", err)
		}
		cfg.MaxResults = n
	}

	if v := os.Getenv("HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("Invalid HEADLESS: %v", err)
		}
		cfg.Headless = headless
	}

	// Set default values if not set
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 5
	}

	if cfg.ScreenshotsPath == "" {
		cfg.ScreenshotsPath = "logs/screenshots"
	}

	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}

	return cfg
}
