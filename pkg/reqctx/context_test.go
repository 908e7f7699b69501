package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubClaims struct {
	userID    uuid.UUID
	sessionID *uuid.UUID
}

func (s stubClaims) GetUserID() uuid.UUID     { return s.userID }
func (s stubClaims) GetSessionID() *uuid.UUID { return s.sessionID }
func (s stubClaims) GetTokenType() string     { return "access" }
func (s stubClaims) IsExpired() bool          { return false }

func TestRequestMetaRoundTrip(t *testing.T) {
	meta := &RequestMeta{
		RequestID:   "req-123",
		ClientIP:    "10.0.0.1",
		UserAgent:   "test-agent",
		RequestedAt: time.Now(),
	}

	ctx := WithRequestMeta(context.Background(), meta)

	got, ok := RequestMetaFromContext(ctx)
	if !ok {
		t.Fatal("RequestMetaFromContext() returned ok=false")
	}
	if got.RequestID != meta.RequestID || got.ClientIP != meta.ClientIP {
		t.Errorf("RequestMetaFromContext() = %+v, want %+v", got, meta)
	}
	if rid := RequestIDFromContext(ctx); rid != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want %q", rid, "req-123")
	}
}

func TestRequestMetaAbsent(t *testing.T) {
	ctx := context.Background()
	if _, ok := RequestMetaFromContext(ctx); ok {
		t.Error("RequestMetaFromContext() on empty context returned ok=true")
	}
	if rid := RequestIDFromContext(ctx); rid != "" {
		t.Errorf("RequestIDFromContext() on empty context = %q, want empty", rid)
	}
}

func TestClaimsRoundTrip(t *testing.T) {
	uid := uuid.Must(uuid.NewV7())
	sid := uuid.Must(uuid.NewV7())
	claims := stubClaims{userID: uid, sessionID: &sid}

	ctx := WithClaims(context.Background(), claims)

	got := ClaimsFromContext(ctx)
	if got == nil {
		t.Fatal("ClaimsFromContext() returned nil")
	}
	if got.GetUserID() != uid {
		t.Errorf("GetUserID() = %v, want %v", got.GetUserID(), uid)
	}

	gotUID, ok := UserIDFromContext(ctx)
	if !ok {
		t.Fatal("UserIDFromContext() returned ok=false")
	}
	if gotUID != uid {
		t.Errorf("UserIDFromContext() = %v, want %v", gotUID, uid)
	}
}

func TestClaimsAbsent(t *testing.T) {
	ctx := context.Background()
	if got := ClaimsFromContext(ctx); got != nil {
		t.Errorf("ClaimsFromContext() on empty context = %v, want nil", got)
	}
	if uid, ok := UserIDFromContext(ctx); ok || uid != uuid.Nil {
		t.Errorf("UserIDFromContext() on empty context = %v, %v; want uuid.Nil, false", uid, ok)
	}
}
