package auth

import (
	"testing"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/config"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	user := &models.User{
		ID:       7,
		Username: "officer1",
		FullName: "John Kamau",
		Role:     models.RoleOfficer,
	}

	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if claims.UserID != 7 || claims.Username != "officer1" || claims.Role != models.RoleOfficer {
		t.Errorf("claims = %+v, want user 7 officer1 with officer role", claims)
	}
}

func TestValidateJWT_Tampered(t *testing.T) {
	user := &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}
	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestGenerateSessionID_Unique(t *testing.T) {
	if GenerateSessionID() == GenerateSessionID() {
		t.Error("session ids must be unique")
	}
}
