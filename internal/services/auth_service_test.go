package services

import (
	"errors"
	"testing"

	"github.com/okhrimenko/recipe-scout/internal/dto"
	"github.com/okhrimenko/recipe-scout/internal/models"
)

func newRegisterRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:     email,
		FirstName: "Michael",
		LastName:  "Row",
		Phone:     "0987538747",
		Password:  "qwerty123",
		Password2: "qwerty123",
	}
}

func TestAuthService_Register(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(newRegisterRequest("michael2004@gmail.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("register returned empty token pair")
	}
	if resp.User.Email != "michael2004@gmail.com" {
		t.Errorf("user email = %q, want michael2004@gmail.com", resp.User.Email)
	}

	if err := svc.Verify(resp.AccessToken); err != nil {
		t.Errorf("verify fresh access token: %v", err)
	}

	// Plaintext password must never be stored.
	var user models.User
	if err := db.First(&user, "email = ?", "michael2004@gmail.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Password == "qwerty123" {
		t.Error("password stored in plaintext")
	}
}

func TestAuthService_RegisterDefaultsPhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	req := newRegisterRequest("nophone@example.com")
	req.Phone = ""
	resp, err := svc.Register(req)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.User.Phone != "0000000000" {
		t.Errorf("phone = %q, want 0000000000", resp.User.Phone)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	if _, err := svc.Register(newRegisterRequest("michael2004@gmail.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(newRegisterRequest("michael2004@gmail.com"))
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second register error = %v, want ErrEmailTaken", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	createTestUser(t, db, "michael2004@gmail.com")

	resp, err := svc.Login(&dto.LoginRequest{Email: "michael2004@gmail.com", Password: "qwerty123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("login returned empty token pair")
	}

	_, err = svc.Login(&dto.LoginRequest{Email: "michael2004@gmail.com", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@gmail.com", Password: "qwerty123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_LoginInactiveUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	user := createTestUser(t, db, "gone@example.com")
	if err := db.Model(user).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}

	_, err := svc.Login(&dto.LoginRequest{Email: "gone@example.com", Password: "qwerty123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("inactive login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_RefreshRotation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	first, err := svc.Register(newRegisterRequest("michael2004@gmail.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	second, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Error("refresh returned the same refresh token")
	}

	// The presented token is spent; replaying it must fail.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("replayed refresh error = %v, want ErrInvalidToken", err)
	}

	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: second.RefreshToken}); err != nil {
		t.Errorf("rotated token refresh: %v", err)
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(newRegisterRequest("michael2004@gmail.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}); err != nil {
		t.Fatalf("logout: %v", err)
	}

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh after logout error = %v, want ErrInvalidToken", err)
	}
}

func TestAuthService_Verify(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	if err := svc.Verify("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token error = %v, want ErrInvalidToken", err)
	}

	otherCfg := testConfig()
	otherCfg.JWTSecret = "another-secret"
	other := NewAuthService(db, otherCfg)
	resp, err := other.Register(newRegisterRequest("forged@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Verify(resp.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign-signature token error = %v, want ErrInvalidToken", err)
	}
}
