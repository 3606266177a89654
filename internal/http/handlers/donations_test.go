package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/workflow"
)

func TestDonationsCreate_ReturnsTrackingID(t *testing.T) {
	users := &fakeUsers{}
	donor := &domain.User{
		FullName: "Ayesha Khan",
		Email:    "ayesha@example.com",
		Role:     domain.UserRoleDonor,
		Zone:     "Gulshan-e-Iqbal",
	}
	if err := users.Create(context.Background(), donor); err != nil {
		t.Fatalf("seed donor: %v", err)
	}

	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	wf := &fakeWorkflow{
		submit: func(_ context.Context, got *domain.User, in workflow.SubmitInput) (*domain.Donation, error) {
			if got.ID != donor.ID {
				t.Fatalf("expected donor id %d, got %d", donor.ID, got.ID)
			}
			return &domain.Donation{
				ID:         1,
				TrackingID: "DN-001",
				ItemName:   in.ItemName,
				Quantity:   in.Quantity,
				DonorZone:  got.Zone,
				Status:     domain.DonationPending,
				CreatedAt:  createdAt,
			}, nil
		},
	}
	app := &App{Workflow: wf, Users: users}

	body := `{"item_name":"warm blankets","quantity":10,"condition":"new","category_hint":"clothes"}`
	req := httptest.NewRequest("POST", "/v1/donations", strings.NewReader(body))
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), donor.ID, string(domain.UserRoleDonor)))
	rr := httptest.NewRecorder()

	app.DonationsCreate(rr, req)

	if rr.Code != 201 {
		t.Fatalf("unexpected status code: got %d, want 201, body %s", rr.Code, rr.Body.String())
	}
	var payload struct {
		TrackingID string      `json:"tracking_id"`
		Donation   donationDTO `json:"donation"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.TrackingID != "DN-001" {
		t.Fatalf("expected tracking id DN-001, got %q", payload.TrackingID)
	}
	if payload.Donation.Status != "pending" {
		t.Fatalf("expected pending status, got %q", payload.Donation.Status)
	}
	if payload.Donation.DonorZone != donor.Zone {
		t.Fatalf("expected zone %q, got %q", donor.Zone, payload.Donation.DonorZone)
	}
}

func TestDonationsCreate_ValidationErrorsListed(t *testing.T) {
	users := &fakeUsers{}
	donor := &domain.User{Email: "d@example.com", Role: domain.UserRoleDonor}
	if err := users.Create(context.Background(), donor); err != nil {
		t.Fatalf("seed donor: %v", err)
	}

	wf := &fakeWorkflow{
		submit: func(_ context.Context, _ *domain.User, _ workflow.SubmitInput) (*domain.Donation, error) {
			return nil, &domain.ValidationError{Msgs: []string{
				"Item name is required.",
				"Quantity must be a positive whole number (e.g. 5, 10, 100).",
			}}
		},
	}
	app := &App{Workflow: wf, Users: users}

	req := httptest.NewRequest("POST", "/v1/donations", strings.NewReader(`{}`))
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), donor.ID, string(domain.UserRoleDonor)))
	rr := httptest.NewRecorder()

	app.DonationsCreate(rr, req)

	if rr.Code != 400 {
		t.Fatalf("unexpected status code: got %d, want 400", rr.Code)
	}
	var payload struct {
		Error struct {
			Code   string   `json:"code"`
			Errors []string `json:"errors"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "validation" {
		t.Fatalf("expected validation code, got %q", payload.Error.Code)
	}
	if len(payload.Error.Errors) != 2 {
		t.Fatalf("expected 2 validation messages, got %d: %v", len(payload.Error.Errors), payload.Error.Errors)
	}
}

func TestDonationsCreate_InvalidJSON(t *testing.T) {
	app := &App{Workflow: &fakeWorkflow{}, Users: &fakeUsers{}}

	req := httptest.NewRequest("POST", "/v1/donations", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()

	app.DonationsCreate(rr, req)

	if rr.Code != 400 {
		t.Fatalf("unexpected status code: got %d, want 400", rr.Code)
	}
}

func TestDonationsTrack_ScopedToCaller(t *testing.T) {
	const donorID = int64(7)
	wf := &fakeWorkflow{
		track: func(_ context.Context, trackingID string, callerID int64) (*domain.Donation, error) {
			if callerID != donorID {
				t.Fatalf("expected caller id %d, got %d", donorID, callerID)
			}
			if trackingID != "DN-042" {
				t.Fatalf("expected tracking id DN-042, got %q", trackingID)
			}
			return &domain.Donation{ID: 42, TrackingID: trackingID, Status: domain.DonationAssigned}, nil
		},
	}
	app := &App{Workflow: wf}

	req := httptest.NewRequest("POST", "/v1/donations/track", strings.NewReader(`{"tracking_id":"DN-042"}`))
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), donorID, string(domain.UserRoleDonor)))
	rr := httptest.NewRecorder()

	app.DonationsTrack(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var payload struct {
		Donation donationDTO `json:"donation"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Donation.Status != "assigned" {
		t.Fatalf("expected assigned status, got %q", payload.Donation.Status)
	}
}

func TestDonationsTrack_UnknownCodeIs404(t *testing.T) {
	wf := &fakeWorkflow{
		track: func(_ context.Context, _ string, _ int64) (*domain.Donation, error) {
			return nil, domain.ErrNotFound
		},
	}
	app := &App{Workflow: wf}

	req := httptest.NewRequest("POST", "/v1/donations/track", strings.NewReader(`{"tracking_id":"DN-999"}`))
	rr := httptest.NewRecorder()

	app.DonationsTrack(rr, req)

	if rr.Code != 404 {
		t.Fatalf("unexpected status code: got %d, want 404", rr.Code)
	}
}
