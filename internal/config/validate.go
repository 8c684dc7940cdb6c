package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Scanner.validate(); err != nil {
		return fmt.Errorf("scanner: %w", err)
	}

	if err := c.Push.validate(); err != nil {
		return fmt.Errorf("push: %w", err)
	}

	return nil
}

func (s *ScannerConfig) validate() error {
	if s.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %v)", s.Interval)
	}
	if s.ConfirmDays <= 0 {
		return fmt.Errorf("confirm_days must be > 0 (got %d)", s.ConfirmDays)
	}
	if s.CatchUpDays < 0 {
		return fmt.Errorf("catch_up_days must be >= 0 (got %d)", s.CatchUpDays)
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	return nil
}

func (p *PushConfig) validate() error {
	if p.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be > 0 (got %d)", p.BufferSize)
	}
	if p.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be > 0 (got %v)", p.WriteTimeout)
	}
	if p.PingInterval <= 0 {
		return fmt.Errorf("ping_interval must be > 0 (got %v)", p.PingInterval)
	}
	return nil
}
