package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/czytanka/backend/internal/domain"
)

// extractJSONObject finds the first complete JSON object in a string.
// Models often wrap JSON in prose or markdown fences despite instructions.
func extractJSONObject(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object in response: %w", domain.ErrExtractionFormat)
	}
	return s[start : end+1], nil
}

// extractJSONArray finds the first complete JSON array in a string.
func extractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON array in response: %w", domain.ErrExtractionFormat)
	}
	return s[start : end+1], nil
}

// decodeStrict unmarshals data into v, mapping any syntax or type mismatch
// to domain.ErrExtractionFormat. The collaborator's output is never trusted.
func decodeStrict(data string, v any) error {
	if !json.Valid([]byte(data)) {
		return fmt.Errorf("invalid JSON in response: %w", domain.ErrExtractionFormat)
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("unexpected response shape: %v: %w", err, domain.ErrExtractionFormat)
	}
	return nil
}
