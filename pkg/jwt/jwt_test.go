package jwt

import (
	"testing"
	"time"

	"clinic-appointment-api/config"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()

	specialization := "cardiology"
	profile := &ProfileClaims{Specialization: &specialization}

	token, tokenID, err := svc.GenerateAccessToken(9, "drwho", "drwho@clinic.test", "doctor", profile)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a token id")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 9 || claims.Username != "drwho" || claims.Role != "doctor" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("expected access token, got %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id mismatch: %s vs %s", claims.TokenID, tokenID)
	}
	if claims.Specialization == nil || *claims.Specialization != "cardiology" {
		t.Errorf("profile claims lost: %+v", claims.ProfileClaims)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(5, "pat", "pat@clinic.test", "patient", nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("expected refresh token, got %s", claims.TokenType)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(1, "admin", "admin@clinic.test", "admin", nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})
	token, _, err := svc.GenerateAccessToken(1, "admin", "admin@clinic.test", "admin", nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expired token must not validate")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := testService()
	_, first, _ := svc.GenerateAccessToken(1, "a", "a@clinic.test", "admin", nil)
	_, second, _ := svc.GenerateAccessToken(1, "a", "a@clinic.test", "admin", nil)
	if first == second {
		t.Fatal("every issued token must carry a fresh id")
	}
}
