package api

import (
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/mesflow/internal/models"
)

func TestSecureCookieCodecRoundTripAndPurposeBinding(t *testing.T) {
	codec, err := newSecureCookieCodec([]byte(testSecretKey))
	if err != nil {
		t.Fatalf("init codec: %v", err)
	}

	sealed, err := codec.seal(flashCookiePurpose, []byte(`{"success":"ok"}`))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if !strings.HasPrefix(sealed, secureCookieVersion+".") {
		t.Fatalf("expected versioned value, got %q", sealed)
	}
	if strings.Contains(sealed, "success") {
		t.Fatal("expected sealed value to hide plaintext")
	}

	plaintext, err := codec.open(flashCookiePurpose, sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if string(plaintext) != `{"success":"ok"}` {
		t.Fatalf("unexpected plaintext %q", plaintext)
	}

	if _, err := codec.open("other", sealed); err == nil {
		t.Fatal("expected value sealed for flash to be rejected for another purpose")
	}
	if _, err := codec.open(flashCookiePurpose, "v1.not-base64!"); err == nil {
		t.Fatal("expected malformed value to be rejected")
	}
	if _, err := codec.open(flashCookiePurpose, "v2."+strings.TrimPrefix(sealed, "v1.")); err == nil {
		t.Fatal("expected unknown version to be rejected")
	}

	otherCodec, err := newSecureCookieCodec([]byte("another-secret-key-0123456789abcd"))
	if err != nil {
		t.Fatalf("init second codec: %v", err)
	}
	if _, err := otherCodec.open(flashCookiePurpose, sealed); err == nil {
		t.Fatal("expected value sealed under another key to be rejected")
	}
}

func TestNewSecureCookieCodecRequiresKey(t *testing.T) {
	if _, err := newSecureCookieCodec(nil); err == nil {
		t.Fatal("expected empty key to be rejected")
	}
}

func TestAuthTokenRoundTripAndExpiry(t *testing.T) {
	handler := &Handler{secretKey: []byte(testSecretKey), now: time.Now}
	user := &models.User{ID: 7, Role: models.RoleManager}

	token, err := handler.buildToken(user, time.Hour)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}
	claims, err := handler.parseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 7 || claims.Role != models.RoleManager {
		t.Fatalf("unexpected claims: %#v", claims)
	}

	handler.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := handler.buildToken(user, time.Hour)
	if err != nil {
		t.Fatalf("build expired token: %v", err)
	}
	if _, err := handler.parseToken(expired); err == nil {
		t.Fatal("expected expired token to be rejected")
	}

	foreign := &Handler{secretKey: []byte("another-secret-key-0123456789abcd"), now: time.Now}
	if _, err := foreign.parseToken(token); err == nil {
		t.Fatal("expected token signed with another key to be rejected")
	}
}

func TestFlashPayloadNormalization(t *testing.T) {
	payload := FlashPayload{Success: "  Saved  ", LoginEmail: " Alice@Example.COM "}.normalized()
	if payload.Success != "Saved" || payload.LoginEmail != "alice@example.com" {
		t.Fatalf("unexpected normalized payload: %#v", payload)
	}
	if !(FlashPayload{Error: "   "}).normalized().empty() {
		t.Fatal("expected whitespace-only payload to be empty")
	}
}
