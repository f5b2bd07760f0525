package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Load decodes the settings held by v over the defaults and validates them.
// Keys are the mapstructure names of the Config fields. A zero seed is
// replaced by one taken from the clock.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
