package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Port            string        `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	DBPath          string        `envconfig:"DB_PATH" default:"vitisense.db" validate:"required"`
	GeocodeEndpoint string        `envconfig:"GEOCODE_ENDPOINT" default:"https://nominatim.openstreetmap.org" validate:"required,url"`
	WeatherEndpoint string        `envconfig:"WEATHER_ENDPOINT" default:"https://api.open-meteo.com" validate:"required,url"`
	UserAgent       string        `envconfig:"HTTP_USER_AGENT" default:"vitisense/1.0 (farm boundary planner)" validate:"required"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
	Offline         bool          `envconfig:"OFFLINE" default:"false"`
	CookieSecure    bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SessionTTL      time.Duration `envconfig:"SESSION_TTL" default:"24h" validate:"gt=0"`
}

// Load reads .env (if any) and the environment.
func Load() (AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: %w", err)
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg, nil
}
