package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}

	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if c.LLM.RequestTimeout <= 0 {
		return fmt.Errorf("llm.request_timeout must be > 0 (got %s)", c.LLM.RequestTimeout)
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	if c.RateLimit.GeneratePerMinute <= 0 {
		return fmt.Errorf("rate_limit.generate_per_minute must be > 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}
	if c.RateLimit.TranslatePerMinute <= 0 {
		return fmt.Errorf("rate_limit.translate_per_minute must be > 0 (got %d)", c.RateLimit.TranslatePerMinute)
	}

	return nil
}

func (c *ImportConfig) validate() error {
	if c.MaxBatchSize <= 0 {
		return fmt.Errorf("max_batch_size must be > 0 (got %d)", c.MaxBatchSize)
	}
	if c.MaxCandidateLen <= 0 {
		return fmt.Errorf("max_candidate_len must be > 0 (got %d)", c.MaxCandidateLen)
	}
	if c.MaxNotesLen <= 0 {
		return fmt.Errorf("max_notes_len must be > 0 (got %d)", c.MaxNotesLen)
	}
	return nil
}
