package patient

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		in      *string
		want    string
		wantNil bool
		wantErr error
	}{
		{name: "nil passes through", in: nil, wantNil: true},
		{name: "empty passes through", in: strPtr("  "), wantNil: true},
		{name: "national format gets region prefix", in: strPtr("(415) 555-2671"), want: "+14155552671"},
		{name: "already E.164", in: strPtr("+14155552671"), want: "+14155552671"},
		{name: "international preserved", in: strPtr("+44 20 7946 0958"), want: "+442079460958"},
		{name: "garbage rejected", in: strPtr("not a number"), wantErr: ErrInvalidPhone},
		{name: "too short rejected", in: strPtr("123"), wantErr: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhone(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil, got %q", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("normalizePhone = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	got, err := normalizeEmail(strPtr("  Jane.Doe@Example.COM "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "jane.doe@example.com" {
		t.Errorf("normalizeEmail = %v, want jane.doe@example.com", got)
	}

	if _, err := normalizeEmail(strPtr("not-an-email")); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}

	if got, err := normalizeEmail(nil); err != nil || got != nil {
		t.Errorf("nil input should pass through, got %v, %v", got, err)
	}
}
