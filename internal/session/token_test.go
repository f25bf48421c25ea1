package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec([]byte("secret"))
	now := time.Now()

	tok, err := c.Encode("sid-1", now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	sid, err := c.Decode(tok)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sid != "sid-1" {
		t.Fatalf("expected sid-1, got %q", sid)
	}
}

func TestCodec_Rejects(t *testing.T) {
	now := time.Now()
	good := NewCodec([]byte("secret"))
	other := NewCodec([]byte("other-secret"))

	expired, err := good.Encode("sid", now.Add(-2*time.Hour), now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	forged, err := other.Encode("sid", now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{SessionID: "sid"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	emptySID, err := good.Encode("", now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	cases := map[string]string{
		"garbage":   "not-a-token",
		"expired":   expired,
		"forged":    forged,
		"alg none":  noneAlg,
		"empty sid": emptySID,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := good.Decode(tok); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestRandomSecret(t *testing.T) {
	a, err := RandomSecret()
	if err != nil {
		t.Fatalf("RandomSecret: %v", err)
	}
	b, _ := RandomSecret()
	if len(a) != 32 || string(a) == string(b) {
		t.Fatalf("expected distinct 32-byte secrets")
	}
}
