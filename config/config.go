package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Port         string `envconfig:"PORT" default:"8080"`
	GinMode      string `envconfig:"GIN_MODE" default:"debug"`
	SeedDemoData bool   `envconfig:"SEED_DEMO_DATA" default:"true"`

	DB struct {
		Host     string `envconfig:"HOST" default:"127.0.0.1"`
		Port     string `envconfig:"PORT" default:"3306"`
		User     string `envconfig:"USER" default:"root"`
		Password string `envconfig:"PASSWORD"`
		Name     string `envconfig:"NAME" default:"restaurant_pos"`
	} `envconfig:"DB"`

	JWT struct {
		Secret      string `envconfig:"SECRET"`
		ExpireHours int    `envconfig:"EXPIRE_HOURS" default:"24"`
	} `envconfig:"JWT"`
}

// Load fills the config from environment variables. godotenv is loaded
// by main before this runs, so a .env file works too.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
