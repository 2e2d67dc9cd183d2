// Package config loads command configuration with Viper.
//
// LoadConfig reads cmd/<service>/config.yml, applies a .env file through
// godotenv and lets environment variables override any nested key:
// OBSERVABILITY_SAMPLE_RATE sets observability.sample_rate.
//
// Commands embed ServiceConfig in their own config struct:
//
//	type DemoConfig struct {
//	    config.ServiceConfig `mapstructure:",squash"`
//	    Count int `mapstructure:"count" validate:"gte=1"`
//	}
//
//	var cfg DemoConfig
//	if err := config.LoadConfig("streamdemo", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	err := cfg.Validate()
package config
