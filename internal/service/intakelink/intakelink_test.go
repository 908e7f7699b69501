package intakelink

import (
	"testing"
	"time"

	"github.com/intakeai/intakeai_backend/internal/repo"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		link *repo.IntakeLink
		want Status
	}{
		{
			name: "unused before expiry is active",
			link: &repo.IntakeLink{IsUsed: false, ExpiresAt: now.Add(time.Hour)},
			want: StatusActive,
		},
		{
			name: "unused past expiry is expired",
			link: &repo.IntakeLink{IsUsed: false, ExpiresAt: now.Add(-time.Hour)},
			want: StatusExpired,
		},
		{
			name: "used wins over expired",
			link: &repo.IntakeLink{IsUsed: true, ExpiresAt: now.Add(-time.Hour)},
			want: StatusUsed,
		},
		{
			name: "used before expiry is used",
			link: &repo.IntakeLink{IsUsed: true, ExpiresAt: now.Add(time.Hour)},
			want: StatusUsed,
		},
		{
			name: "expiry instant itself is expired",
			link: &repo.IntakeLink{IsUsed: false, ExpiresAt: now},
			want: StatusExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.link, now); got != tt.want {
				t.Errorf("DeriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
