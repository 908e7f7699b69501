package codes

import (
	"strings"
	"testing"
)

func TestGenerateIntakeToken(t *testing.T) {
	tok, err := GenerateIntakeToken()
	if err != nil {
		t.Fatalf("GenerateIntakeToken() error = %v", err)
	}

	if len(tok) != IntakeTokenLength {
		t.Errorf("token length = %d, want %d", len(tok), IntakeTokenLength)
	}
	if strings.Trim(tok, "0123456789abcdef") != "" {
		t.Errorf("token contains non-hex characters: %s", tok)
	}
	if !ValidIntakeToken(tok) {
		t.Errorf("generated token fails its own shape check: %s", tok)
	}
}

func TestGenerateIntakeToken_NoCollisions(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		tok, err := GenerateIntakeToken()
		if err != nil {
			t.Fatalf("GenerateIntakeToken() error = %v", err)
		}
		if _, dup := seen[tok]; dup {
			t.Fatalf("collision after %d tokens: %s", i, tok)
		}
		seen[tok] = struct{}{}
	}
}

func TestValidIntakeToken(t *testing.T) {
	valid, _ := GenerateIntakeToken()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"generated token", valid, true},
		{"empty", "", false},
		{"too short", valid[:63], false},
		{"too long", valid + "a", false},
		{"uppercase hex", strings.ToUpper(valid), false},
		{"non-hex char", valid[:63] + "g", false},
		{"sql injection shape", "' OR '1'='1" + strings.Repeat("a", 53), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidIntakeToken(tt.token); got != tt.want {
				t.Errorf("ValidIntakeToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestGenerateSecureToken_InvalidLength(t *testing.T) {
	if _, err := GenerateSecureToken(0); err != ErrInvalidLength {
		t.Errorf("GenerateSecureToken(0) error = %v, want %v", err, ErrInvalidLength)
	}
}
