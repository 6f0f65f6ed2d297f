package utils

import (
	"testing"
	"time"

	"github.com/Suhas-098/onboardai-backend/config"
)

func TestJWTRoundTrip(t *testing.T) {
	config.JWTKey = []byte("test-secret")
	config.JWTExpiration = time.Hour

	token, err := GenerateJWT("64f1a2b3c4d5e6f708192a3b", "Asha", "hr")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if claims.UserID != "64f1a2b3c4d5e6f708192a3b" {
		t.Errorf("UserID = %q, want 64f1a2b3c4d5e6f708192a3b", claims.UserID)
	}
	if claims.Name != "Asha" || claims.Role != "hr" {
		t.Errorf("claims = %s/%s, want Asha/hr", claims.Name, claims.Role)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	config.JWTKey = []byte("test-secret")

	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Fatal("ValidateJWT() accepted a malformed token")
	}
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	config.JWTKey = []byte("test-secret")
	config.JWTExpiration = -time.Hour

	token, err := GenerateJWT("64f1a2b3c4d5e6f708192a3b", "Asha", "hr")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("ValidateJWT() accepted an expired token")
	}
}
