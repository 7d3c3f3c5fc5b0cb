package validator_test

import (
	"strings"
	"testing"
	"trimly/shared/validator"
)

type bookingRequest struct {
	ShopID     string   `validate:"required" json:"shopId"`
	ServiceIDs []string `validate:"required,min=1" json:"serviceIds"`
	Date       string   `validate:"required" json:"date"`
	Time       string   `validate:"required" json:"time"`
	Seats      int      `validate:"gte=1,lte=10" json:"seats"`
	Status     string   `validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED" json:"status"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingRequest
		expectError bool
	}{
		{
			name: "valid request",
			data: &bookingRequest{
				ShopID:     "shop-1",
				ServiceIDs: []string{"svc-1"},
				Date:       "2026-09-07",
				Time:       "10:00",
				Seats:      1,
			},
			expectError: false,
		},
		{
			name: "missing shop id",
			data: &bookingRequest{
				ServiceIDs: []string{"svc-1"},
				Date:       "2026-09-07",
				Time:       "10:00",
				Seats:      1,
			},
			expectError: true,
		},
		{
			name: "empty service list",
			data: &bookingRequest{
				ShopID:     "shop-1",
				ServiceIDs: []string{},
				Date:       "2026-09-07",
				Time:       "10:00",
				Seats:      1,
			},
			expectError: true,
		},
		{
			name: "seats out of range",
			data: &bookingRequest{
				ShopID:     "shop-1",
				ServiceIDs: []string{"svc-1"},
				Date:       "2026-09-07",
				Time:       "10:00",
				Seats:      11,
			},
			expectError: true,
		},
		{
			name: "unknown status",
			data: &bookingRequest{
				ShopID:     "shop-1",
				ServiceIDs: []string{"svc-1"},
				Date:       "2026-09-07",
				Time:       "10:00",
				Seats:      1,
				Status:     "DONE",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "shop-1",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "owner@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "rating in range",
			field:       5,
			tag:         "gte=1,lte=5",
			expectError: false,
		},
		{
			name:        "rating out of range",
			field:       6,
			tag:         "gte=1,lte=5",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "OWNER",
			tag:         "oneof=CUSTOMER OWNER ADMIN",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "MANAGER",
			tag:         "oneof=CUSTOMER OWNER ADMIN",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"shopId":"shop-1","serviceIds":["svc-1"],"date":"2026-09-07","time":"10:00","seats":1}`,
			expectError: false,
		},
		{
			name:        "valid JSON failing validation",
			jsonBody:    `{"shopId":"shop-1","serviceIds":[],"date":"2026-09-07","time":"10:00","seats":1}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"shopId":"shop-1","serviceIds":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data bookingRequest
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &bookingRequest{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
