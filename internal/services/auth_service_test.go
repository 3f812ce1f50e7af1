package services_test

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teamboard/teamboard/internal/config"
	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/services"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiration: 1,
		AllowedEmail:  "admin@teamboard.local",
		AppName:       "Teamboard",
	}
	return services.NewAuthService(cfg, db)
}

func TestPasswordHashing(t *testing.T) {
	svc := newAuthService(t)

	hash, err := svc.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !svc.CheckPassword("correct horse", hash) {
		t.Error("correct password rejected")
	}
	if svc.CheckPassword("wrong password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("admin@teamboard.local", "secret", "Admin")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims user id = %s, want %s", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("claims email = %s, want %s", claims.Email, user.Email)
	}

	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestRegisterAllowList(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register("intruder@example.com", "secret", "Intruder"); !errors.Is(err, services.ErrNotAllowed) {
		t.Errorf("register with a non-allowed email returned %v, want ErrNotAllowed", err)
	}

	if _, err := svc.Register("admin@teamboard.local", "secret", "Admin"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register("admin@teamboard.local", "secret", "Admin"); err == nil {
		t.Error("duplicate registration accepted")
	}

	if _, err := newAuthService(t).Register("ADMIN@Teamboard.Local", "secret", "Admin"); err != nil {
		t.Errorf("allow-list check must be case-insensitive, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	if _, _, err := svc.Login("admin@teamboard.local", "secret"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("login before registration returned %v, want ErrInvalidCredentials", err)
	}

	if _, err := svc.Register("admin@teamboard.local", "secret", "Admin"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := svc.Login("admin@teamboard.local", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("login returned an empty token")
	}
	if user.Email != "admin@teamboard.local" {
		t.Errorf("login returned user %q", user.Email)
	}

	if _, _, err := svc.Login("admin@teamboard.local", "nope"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("wrong password returned %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("intruder@example.com", "secret"); !errors.Is(err, services.ErrNotAllowed) {
		t.Errorf("non-allowed login returned %v, want ErrNotAllowed", err)
	}
}
