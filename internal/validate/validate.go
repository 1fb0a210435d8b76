package validate

import (
	"fmt"
	"net/url"
	"strings"
)

// Input validation and sanitization for values typed by the user

// URL checks that rawURL is an absolute http(s) URL with a host.
func URL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL format: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: %q (allowed: http, https)", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("invalid URL: %s", rawURL)
	}

	return nil
}

// SanitizeString removes null bytes and control characters, then trims.
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ID validates an insight id
func ID(id int64) error {
	if id < 1 {
		return fmt.Errorf("invalid insight id: %d", id)
	}
	return nil
}
