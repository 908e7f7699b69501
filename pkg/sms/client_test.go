package sms

import (
	"context"
	"testing"

	"github.com/intakeai/intakeai_backend/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: false,
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestNewFromConfig_EnabledWithoutAPIKey(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:     "",
			SecretKey:  "",
			TemplateID: "test-template",
		},
	}

	if _, err := NewFromConfig(cfg); err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestNewFromConfig_EnabledWithoutTemplate(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:    "test-api-key",
			SecretKey: "test-secret-key",
		},
	}

	if _, err := NewFromConfig(cfg); err == nil {
		t.Error("Expected error when template ID is missing")
	}
}

func TestSendIntakeLink_DisabledIsNoOp(t *testing.T) {
	client, err := NewFromConfig(config.SMSConfig{Enabled: false})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if err := client.SendIntakeLink(context.Background(), "+15551234567", "https://clinic.example/intake/abc"); err != nil {
		t.Errorf("expected no-op when disabled, got %v", err)
	}
}

func TestSendIntakeLink_RequiresPhone(t *testing.T) {
	client, err := NewFromConfig(config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:     "test-api-key",
			SecretKey:  "test-secret-key",
			TemplateID: "test-template",
		},
	})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if err := client.SendIntakeLink(context.Background(), "", "https://clinic.example/intake/abc"); err == nil {
		t.Error("Expected error when phone number is missing")
	}
}
