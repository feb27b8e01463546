package validator

import (
	"strings"
	"testing"
	"time"

	"innkeep/pkg/logger"
	"innkeep/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func validRequest() *model.CreateBookingRequest {
	return &model.CreateBookingRequest{
		RoomID:     "1",
		CheckIn:    time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		GuestName:  "John Doe",
		GuestEmail: "john@example.com",
	}
}

func TestValidateCreate_Valid(t *testing.T) {
	v := NewBookingValidator(testLogger())

	if err := v.ValidateCreate(validRequest()); err != nil {
		t.Fatalf("expected valid request to pass, got %v", err)
	}
}

func TestValidateCreate_FieldErrors(t *testing.T) {
	v := NewBookingValidator(testLogger())

	tests := []struct {
		name    string
		mutate  func(*model.CreateBookingRequest)
		field   string
		message string
	}{
		{
			name:    "missing room id",
			mutate:  func(r *model.CreateBookingRequest) { r.RoomID = "" },
			field:   "RoomID",
			message: "required",
		},
		{
			name:    "missing check-in",
			mutate:  func(r *model.CreateBookingRequest) { r.CheckIn = time.Time{} },
			field:   "CheckIn",
			message: "required",
		},
		{
			name:    "short guest name",
			mutate:  func(r *model.CreateBookingRequest) { r.GuestName = "J" },
			field:   "GuestName",
			message: "at least 2",
		},
		{
			name:    "bad email",
			mutate:  func(r *model.CreateBookingRequest) { r.GuestEmail = "not-an-email" },
			field:   "GuestEmail",
			message: "valid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := v.ValidateCreate(req)
			if err == nil {
				t.Fatal("expected validation error")
			}

			verrs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			found := false
			for _, ve := range verrs {
				if ve.Field == tt.field && strings.Contains(ve.Message, tt.message) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on %s containing %q, got %v", tt.field, tt.message, verrs)
			}
		})
	}
}

func TestValidateCreate_GuestCountNotValidatedHere(t *testing.T) {
	v := NewBookingValidator(testLogger())

	req := validRequest()
	req.Guests = 0

	// Guest count is checked by the workflow against room capacity.
	if err := v.ValidateCreate(req); err != nil {
		t.Fatalf("expected guest count to be left to the workflow, got %v", err)
	}
}
