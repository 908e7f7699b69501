package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate applies defaults and rejects configurations the server can't run with.
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.TimeoutSeconds <= 0 {
		c.Server.TimeoutSeconds = 30
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "development"
	}

	if c.Server.PublicBaseURL == "" {
		return fmt.Errorf("server.public_base_url is required (intake link URLs depend on it)")
	}
	u, err := url.Parse(c.Server.PublicBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.public_base_url must be an absolute URL, got %q", c.Server.PublicBaseURL)
	}
	c.Server.PublicBaseURL = strings.TrimRight(c.Server.PublicBaseURL, "/")

	if c.Intake.LinkExpiryDays <= 0 {
		c.Intake.LinkExpiryDays = 7
	}
	if c.Intake.LinkExpiryMaxDays <= 0 {
		c.Intake.LinkExpiryMaxDays = 30
	}
	if c.Intake.LinkExpiryDays > c.Intake.LinkExpiryMaxDays {
		return fmt.Errorf("intake.link_expiry_days (%d) exceeds intake.link_expiry_max_days (%d)",
			c.Intake.LinkExpiryDays, c.Intake.LinkExpiryMaxDays)
	}

	if c.Authentication.Paseto.AccessTTLMinutes <= 0 {
		c.Authentication.Paseto.AccessTTLMinutes = 15
	}
	if c.Authentication.Paseto.RefreshTTLDays <= 0 {
		c.Authentication.Paseto.RefreshTTLDays = 7
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-1.5-flash"
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = 60
	}

	return nil
}
