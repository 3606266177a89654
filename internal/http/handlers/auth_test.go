package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"server/internal/auth"
	"server/internal/domain"
	"server/internal/token"
)

func TestAuthRegister_CollectsEveryValidationMessage(t *testing.T) {
	app := &App{Users: &fakeUsers{}}

	body := `{"full_name":"Al","email":"1bad@example.com","phone":"12345","password":"short","confirm_password":"other"}`
	req := httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	app.AuthRegister(rr, req)

	if rr.Code != 400 {
		t.Fatalf("unexpected status code: got %d, want 400", rr.Code)
	}
	var payload struct {
		Error struct {
			Errors []string `json:"errors"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// name too short, email not starting with a letter, bad phone, missing
	// zone, short password, missing special char, mismatched confirmation
	if len(payload.Error.Errors) != 7 {
		t.Fatalf("expected 7 validation messages, got %d: %v", len(payload.Error.Errors), payload.Error.Errors)
	}
}

func TestAuthRegister_DuplicateEmailReported(t *testing.T) {
	users := &fakeUsers{}
	existing := &domain.User{Email: "sara@example.com", Phone: "0301-1111111", Role: domain.UserRoleDonor}
	if err := users.Create(context.Background(), existing); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	app := &App{Users: users}

	body := `{"full_name":"Sara Ahmed","email":"Sara@Example.com","phone":"0301-2345678","password":"Secret@123","confirm_password":"Secret@123","zone":"Clifton"}`
	req := httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	app.AuthRegister(rr, req)

	if rr.Code != 400 {
		t.Fatalf("unexpected status code: got %d, want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "already registered") {
		t.Fatalf("expected duplicate email message, got %s", rr.Body.String())
	}
}

func TestAuthRegister_CreatesDonor(t *testing.T) {
	users := &fakeUsers{}
	app := &App{Users: users}

	body := `{"full_name":"Sara Ahmed","email":"Sara@Example.com","phone":"0301-2345678","password":"Secret@123","confirm_password":"Secret@123","zone":"Clifton"}`
	req := httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	app.AuthRegister(rr, req)

	if rr.Code != 201 {
		t.Fatalf("unexpected status code: got %d, want 201, body %s", rr.Code, rr.Body.String())
	}
	var payload struct {
		User userDTO `json:"user"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.User.Email != "sara@example.com" {
		t.Fatalf("expected lowercased email, got %q", payload.User.Email)
	}
	if payload.User.Role != "donor" {
		t.Fatalf("expected donor role, got %q", payload.User.Role)
	}

	stored, err := users.GetByEmail(context.Background(), "sara@example.com")
	if err != nil {
		t.Fatalf("stored user lookup: %v", err)
	}
	if err := auth.CheckPassword("Secret@123", stored.PasswordHash); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthLogin_AdminDirectedToAdminLogin(t *testing.T) {
	users := &fakeUsers{}
	hash, err := auth.HashPassword("Admin@123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := &domain.User{Email: "admin@donation.com", PasswordHash: hash, Role: domain.UserRoleAdmin}
	if err := users.Create(context.Background(), admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	app := &App{Users: users, Tokens: token.New("test-secret", time.Hour)}

	req := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(`{"email":"admin@donation.com","password":"Admin@123"}`))
	rr := httptest.NewRecorder()

	app.AuthLogin(rr, req)

	if rr.Code != 403 {
		t.Fatalf("unexpected status code: got %d, want 403", rr.Code)
	}
}

func TestAuthLogin_IssuesToken(t *testing.T) {
	users := &fakeUsers{}
	hash, err := auth.HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	donor := &domain.User{Email: "sara@example.com", PasswordHash: hash, Role: domain.UserRoleDonor, Zone: "Clifton"}
	if err := users.Create(context.Background(), donor); err != nil {
		t.Fatalf("seed donor: %v", err)
	}
	tokens := token.New("test-secret", time.Hour)
	app := &App{Users: users, Tokens: tokens}

	req := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(`{"email":"SARA@example.com","password":"Secret@123"}`))
	rr := httptest.NewRecorder()

	app.AuthLogin(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200, body %s", rr.Code, rr.Body.String())
	}
	var payload loginResponse
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	claims, userID, err := tokens.Validate(payload.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if userID != donor.ID {
		t.Fatalf("expected subject %d, got %d", donor.ID, userID)
	}
	if claims.Role != "donor" || claims.Zone != "Clifton" {
		t.Fatalf("unexpected claims: role %q zone %q", claims.Role, claims.Zone)
	}
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	users := &fakeUsers{}
	hash, err := auth.HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	donor := &domain.User{Email: "sara@example.com", PasswordHash: hash, Role: domain.UserRoleDonor}
	if err := users.Create(context.Background(), donor); err != nil {
		t.Fatalf("seed donor: %v", err)
	}
	app := &App{Users: users}

	req := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(`{"email":"sara@example.com","password":"nope"}`))
	rr := httptest.NewRecorder()

	app.AuthLogin(rr, req)

	if rr.Code != 401 {
		t.Fatalf("unexpected status code: got %d, want 401", rr.Code)
	}
}

func TestZoneSuggestion_FallsBackToDefaultCity(t *testing.T) {
	app := &App{DefaultCity: "Karachi"}

	req := httptest.NewRequest("GET", "/v1/auth/zone-suggestion", nil)
	rr := httptest.NewRecorder()

	app.ZoneSuggestion(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var payload map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["zone"] != "Karachi" {
		t.Fatalf("expected Karachi, got %q", payload["zone"])
	}
}
