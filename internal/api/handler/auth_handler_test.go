package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

type stubAuthService struct {
	signupErr error
	signinErr error
	result    *ports.AuthResult
	lastInput ports.SignupInput
}

func (s *stubAuthService) Signup(_ context.Context, input ports.SignupInput) error {
	s.lastInput = input
	return s.signupErr
}

func (s *stubAuthService) Activate(_ context.Context, _, _ string) (*ports.AuthResult, error) {
	if s.result == nil {
		return nil, domain.ErrInvalidCode
	}
	return s.result, nil
}

func (s *stubAuthService) Signin(_ context.Context, _, _ string) (*ports.AuthResult, error) {
	if s.signinErr != nil {
		return nil, s.signinErr
	}
	return s.result, nil
}

func (s *stubAuthService) ForgotPassword(_ context.Context, _ string) error { return nil }

func (s *stubAuthService) ResetPassword(_ context.Context, _, _, _ string) error { return nil }

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h(c)
}

func TestSignupEnvelope(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, zerolog.Nop())

	body := `{"username":"reader","firstname":"Ada","lastname":"Lovelace","email":"ada@example.com","password":"s3cret"}`
	rec, err := postJSON(t, h.Signup, "/auth/signup", body)
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["success"] != "Check your email address" {
		t.Errorf("success = %q", resp["success"])
	}
	if svc.lastInput.Username != "reader" || svc.lastInput.Email != "ada@example.com" {
		t.Errorf("input not forwarded: %+v", svc.lastInput)
	}
}

func TestSignupValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, zerolog.Nop())

	_, err := postJSON(t, h.Signup, "/auth/signup", `{"username":"reader"}`)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestSignupPassesThroughDomainError(t *testing.T) {
	svc := &stubAuthService{signupErr: domain.ErrDuplicateUsername}
	h := NewAuthHandler(svc, zerolog.Nop())

	body := `{"username":"reader","firstname":"Ada","lastname":"Lovelace","email":"ada@example.com","password":"s3cret"}`
	_, err := postJSON(t, h.Signup, "/auth/signup", body)
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestSigninEnvelope(t *testing.T) {
	svc := &stubAuthService{result: &ports.AuthResult{
		UserData: domain.PublicUser{ID: "u1", Username: "reader", Type: domain.TypeUser},
		Token:    "signed-token",
	}}
	h := NewAuthHandler(svc, zerolog.Nop())

	rec, err := postJSON(t, h.Signin, "/auth/signin", `{"username":"reader","password":"s3cret"}`)
	if err != nil {
		t.Fatalf("Signin: %v", err)
	}

	var resp struct {
		UserData domain.PublicUser `json:"userData"`
		Token    string            `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("token = %q", resp.Token)
	}
	if resp.UserData.Username != "reader" {
		t.Errorf("userData = %+v", resp.UserData)
	}
}

func TestSigninInvalidCredentialsPassThrough(t *testing.T) {
	svc := &stubAuthService{signinErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, zerolog.Nop())

	_, err := postJSON(t, h.Signin, "/auth/signin", `{"username":"reader","password":"wrong"}`)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestActivateEnvelope(t *testing.T) {
	svc := &stubAuthService{result: &ports.AuthResult{
		UserData: domain.PublicUser{ID: "u1", Status: domain.StatusActive},
		Token:    "signed-token",
	}}
	h := NewAuthHandler(svc, zerolog.Nop())

	rec, err := postJSON(t, h.Activate, "/auth/activate-account", `{"id":"u1","code":"abc"}`)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "signed-token") {
		t.Errorf("token missing from body: %s", rec.Body.String())
	}
}

func TestResetPasswordEnvelope(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, zerolog.Nop())

	rec, err := postJSON(t, h.ResetPassword, "/auth/reset-password", `{"id":"u1","code":"abc","password":"new"}`)
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Your password was reset successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
