package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Playfield dimensions handed to every session.
	PlayfieldWidth  float64 `env:"PLAYFIELD_WIDTH" envDefault:"800"`
	PlayfieldHeight float64 `env:"PLAYFIELD_HEIGHT" envDefault:"600"`
	PlayfieldTop    float64 `env:"PLAYFIELD_TOP" envDefault:"130"`

	// FrameRate only paces the frame ticker; the simulated step is fixed.
	FrameRate int `env:"FRAME_RATE" envDefault:"60"`
}

// MaxFrameRate keeps the frame ticker interval at one millisecond or more.
const MaxFrameRate = 1000

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.FrameRate <= 0 || c.FrameRate > MaxFrameRate {
		return fmt.Errorf("FRAME_RATE must be in 1..%d, got %d", MaxFrameRate, c.FrameRate)
	}
	if c.PlayfieldWidth <= 40 || c.PlayfieldHeight <= 0 {
		return fmt.Errorf("playfield %vx%v is too small", c.PlayfieldWidth, c.PlayfieldHeight)
	}
	if c.PlayfieldTop < 0 || c.PlayfieldTop > c.PlayfieldHeight-60 {
		return fmt.Errorf("PLAYFIELD_TOP %v outside playfield", c.PlayfieldTop)
	}
	return nil
}
