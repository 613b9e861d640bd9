package config

import (
	"fmt"
	"slices"
	"strings"
)

// voices supported by the speech synthesis service.
var voices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenAI.APIKey) == "" {
		return fmt.Errorf("openai.api_key must not be empty")
	}

	if !slices.Contains(voices, c.OpenAI.Voice) {
		return fmt.Errorf("openai.voice %q is not supported (one of: %s)",
			c.OpenAI.Voice, strings.Join(voices, ", "))
	}

	if c.Dictionary.MaxUploadBytes <= 0 {
		return fmt.Errorf("dictionary.max_upload_bytes must be > 0 (got %d)", c.Dictionary.MaxUploadBytes)
	}

	if c.Server.AdminRateLimit <= 0 {
		return fmt.Errorf("server.admin_rate_limit must be > 0 (got %d)", c.Server.AdminRateLimit)
	}

	if c.Blob.Bucket == "" {
		return fmt.Errorf("blob.bucket must not be empty")
	}

	return nil
}
