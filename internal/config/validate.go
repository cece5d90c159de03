package config

import (
	"fmt"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Parser.validate(); err != nil {
		return fmt.Errorf("parser: %w", err)
	}
	if err := c.Ingest.validate(); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	return nil
}

func (p *ParserConfig) validate() error {
	if p.MaxJodiNumbers <= 0 {
		return fmt.Errorf("max_jodi_numbers must be > 0 (got %d)", p.MaxJodiNumbers)
	}
	if p.MaxEntryValue <= 0 {
		return fmt.Errorf("max_entry_value must be > 0 (got %d)", p.MaxEntryValue)
	}
	return nil
}

func (i *IngestConfig) validate() error {
	if !domain.Market(i.DefaultMarket).IsValid() {
		return fmt.Errorf("default_market %q is not a known market", i.DefaultMarket)
	}
	return nil
}
