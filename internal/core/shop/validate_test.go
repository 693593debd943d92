package shop

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/printadmin/internal/models"
)

func validCreate() models.ShopPayload {
	return models.ShopPayload{
		CampusID:      models.Ptr("c1"),
		Name:          models.Ptr("Copy Corner"),
		ExecutionMode: models.Ptr(models.ExecutionManual),
		PaymentMode:   models.Ptr(models.PaymentCounter),
	}
}

func TestValidate_Create(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *models.ShopPayload)
		wantValid bool
		wantError string
		wantField string
	}{
		{
			name:      "valid create",
			mutate:    func(p *models.ShopPayload) {},
			wantValid: true,
		},
		{
			name:      "is_active is optional and never an error",
			mutate:    func(p *models.ShopPayload) { p.IsActive = models.Ptr(false) },
			wantValid: true,
		},
		{
			name:      "missing campus",
			mutate:    func(p *models.ShopPayload) { p.CampusID = nil },
			wantError: "Campus selection is required",
			wantField: FieldCampusID,
		},
		{
			name:      "blank campus",
			mutate:    func(p *models.ShopPayload) { p.CampusID = models.Ptr("  ") },
			wantError: "Campus selection is required",
			wantField: FieldCampusID,
		},
		{
			name:      "missing execution mode",
			mutate:    func(p *models.ShopPayload) { p.ExecutionMode = nil },
			wantError: "Valid execution mode is required",
			wantField: FieldExecutionMode,
		},
		{
			name:      "unknown payment mode",
			mutate:    func(p *models.ShopPayload) { p.PaymentMode = models.Ptr(models.PaymentMode("crypto")) },
			wantError: "Valid payment mode is required",
			wantField: FieldPaymentMode,
		},
		{
			name:      "name too short",
			mutate:    func(p *models.ShopPayload) { p.Name = models.Ptr("X") },
			wantError: "Shop name must be at least 2 characters",
			wantField: FieldName,
		},
		{
			name:      "name too long",
			mutate:    func(p *models.ShopPayload) { p.Name = models.Ptr(strings.Repeat("x", 256)) },
			wantError: "Shop name must be at most 255 characters",
			wantField: FieldName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validCreate()
			tt.mutate(&p)

			result := Validate(p, false)
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
			if result.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", result.Error, tt.wantError)
			}
			if tt.wantField != "" {
				if _, ok := result.Errors[tt.wantField]; !ok {
					t.Errorf("expected error for field %s, got %v", tt.wantField, result.Errors)
				}
			}
		})
	}
}

func TestValidate_CreateMissingEverythingNamesFieldsInOrder(t *testing.T) {
	result := Validate(models.ShopPayload{}, false)

	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if result.Error != "Shop name is required" {
		t.Errorf("Error = %q, want name reported first", result.Error)
	}
	want := map[string]string{
		FieldName:          "Shop name is required",
		FieldCampusID:      "Campus selection is required",
		FieldExecutionMode: "Valid execution mode is required",
		FieldPaymentMode:   "Valid payment mode is required",
	}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Errorf("Errors mismatch (-want +got):\n%s", diff)
	}

	// Without the name, the relation is next.
	p := models.ShopPayload{Name: models.Ptr("Copy Corner")}
	if got := Validate(p, false).Error; got != "Campus selection is required" {
		t.Errorf("Error = %q, want campus reported before enums", got)
	}
}

func TestValidate_Update(t *testing.T) {
	tests := []struct {
		name      string
		payload   models.ShopPayload
		wantValid bool
		wantError string
	}{
		{
			name:      "only is_active",
			payload:   models.ShopPayload{IsActive: models.Ptr(false)},
			wantValid: true,
		},
		{
			name:      "empty payload",
			payload:   models.ShopPayload{},
			wantValid: true,
		},
		{
			name:      "valid enum change",
			payload:   models.ShopPayload{ExecutionMode: models.Ptr(models.ExecutionAuto)},
			wantValid: true,
		},
		{
			name:      "invalid enum still rejected",
			payload:   models.ShopPayload{ExecutionMode: models.Ptr(models.ExecutionMode("turbo"))},
			wantError: "Valid execution mode is required",
		},
		{
			name:      "campus cannot move",
			payload:   models.ShopPayload{CampusID: models.Ptr("c2")},
			wantError: "Campus cannot be changed after creation",
		},
		{
			name:      "present but blank name",
			payload:   models.ShopPayload{Name: models.Ptr("")},
			wantError: "Shop name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.payload, true)
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
			if result.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", result.Error, tt.wantError)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	in := models.ShopPayload{
		CampusID:      models.Ptr(" c1 "),
		Name:          models.Ptr("  Copy Corner\n"),
		ExecutionMode: models.Ptr(models.ExecutionMode(" manual ")),
		IsActive:      models.Ptr(true),
	}

	got := Normalize(in)

	want := models.ShopPayload{
		CampusID:      models.Ptr("c1"),
		Name:          models.Ptr("Copy Corner"),
		ExecutionMode: models.Ptr(models.ExecutionMode(" manual ")),
		IsActive:      models.Ptr(true),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
	if got.PaymentMode != nil {
		t.Error("Normalize must not introduce absent fields")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []models.ShopPayload{
		{},
		{IsActive: models.Ptr(false)},
		validCreate(),
		{Name: models.Ptr("   spaced   out   ")},
	}

	for _, in := range inputs {
		once := Normalize(in)
		if diff := cmp.Diff(once, Normalize(once)); diff != "" {
			t.Errorf("Normalize not idempotent (-once +twice):\n%s", diff)
		}
	}
}

func TestParseModes(t *testing.T) {
	if got := ParseExecutionMode(" Assisted "); got != models.ExecutionAssisted {
		t.Errorf("ParseExecutionMode = %q, want assisted", got)
	}
	if got := ParsePaymentMode("PREPAID"); got != models.PaymentPrepaid {
		t.Errorf("ParsePaymentMode = %q, want prepaid", got)
	}
}
