package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/pkg/reqctx"
)

type testClaims struct {
	userID uuid.UUID
}

func (c testClaims) GetUserID() uuid.UUID     { return c.userID }
func (c testClaims) GetSessionID() *uuid.UUID { return nil }
func (c testClaims) GetTokenType() string     { return "access" }
func (c testClaims) IsExpired() bool          { return false }

func captureLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v (raw: %s)", err, buf.String())
	}
	return entry
}

func TestCtxHandlerStampsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&ctxHandler{next: slog.NewJSONHandler(&buf, nil)})

	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{
		RequestID: "req-abc",
	})
	logger.InfoContext(ctx, "something happened")

	entry := captureLine(t, &buf)
	if entry["request_id"] != "req-abc" {
		t.Errorf("request_id = %v, want %q", entry["request_id"], "req-abc")
	}
}

func TestCtxHandlerStampsUserID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&ctxHandler{next: slog.NewJSONHandler(&buf, nil)})

	uid := uuid.Must(uuid.NewV7())
	ctx := reqctx.WithClaims(context.Background(), testClaims{userID: uid})
	logger.WarnContext(ctx, "delivery failed")

	entry := captureLine(t, &buf)
	if entry["user_id"] != uid.String() {
		t.Errorf("user_id = %v, want %q", entry["user_id"], uid.String())
	}
}

func TestCtxHandlerPlainContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&ctxHandler{next: slog.NewJSONHandler(&buf, nil)})

	logger.Info("no request scope")

	entry := captureLine(t, &buf)
	if _, found := entry["request_id"]; found {
		t.Error("request_id present on record without request scope")
	}
	if _, found := entry["user_id"]; found {
		t.Error("user_id present on record without request scope")
	}
}
