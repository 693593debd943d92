// Package shop contains the pure business logic for shop payloads and shop
// listings: validation, normalization, labels, filters and grouping.
package shop

import (
	"strings"

	"github.com/example/printadmin/internal/core/rules"
	"github.com/example/printadmin/internal/models"
)

// Field names as they appear on the wire and in ValidationResult.Errors.
const (
	FieldName          = "name"
	FieldCampusID      = "campus_id"
	FieldExecutionMode = "execution_mode"
	FieldPaymentMode   = "payment_mode"
)

// FieldOrder is the declaration order used to pick the headline error:
// the name first, then the relation, then the enums.
var FieldOrder = []string{FieldName, FieldCampusID, FieldExecutionMode, FieldPaymentMode}

// Validate checks a shop payload.
// Rules:
// - create: name, campus_id, execution_mode and payment_mode are required
// - update: only present fields are checked; campus_id may not be sent
// - name: trimmed length >= 2, raw length <= 255
// - enums must be in their closed sets in either mode
// - is_active is never an error
func Validate(p models.ShopPayload, isUpdate bool) rules.ValidationResult {
	c := rules.NewCollector(FieldOrder...)

	switch {
	case p.Name != nil:
		c.Add(FieldName, rules.Text("Shop name", *p.Name))
	case !isUpdate:
		c.Add(FieldName, rules.Required("Shop name"))
	}

	// The campus is checked for presence only; the backend verifies it exists.
	if isUpdate {
		if p.CampusID != nil {
			c.Add(FieldCampusID, "Campus cannot be changed after creation")
		}
	} else if p.CampusID == nil || strings.TrimSpace(*p.CampusID) == "" {
		c.Add(FieldCampusID, "Campus selection is required")
	}

	if p.ExecutionMode != nil || !isUpdate {
		if p.ExecutionMode == nil || !p.ExecutionMode.IsValid() {
			c.Add(FieldExecutionMode, "Valid execution mode is required")
		}
	}

	if p.PaymentMode != nil || !isUpdate {
		if p.PaymentMode == nil || !p.PaymentMode.IsValid() {
			c.Add(FieldPaymentMode, "Valid payment mode is required")
		}
	}

	return c.Result()
}

// Normalize returns a copy of p with free-text fields trimmed.
// Enum and boolean fields are copied untouched; absent fields stay absent.
func Normalize(p models.ShopPayload) models.ShopPayload {
	out := p
	if p.Name != nil {
		out.Name = models.Ptr(strings.TrimSpace(*p.Name))
	}
	if p.CampusID != nil {
		out.CampusID = models.Ptr(strings.TrimSpace(*p.CampusID))
	}
	return out
}

// ParseExecutionMode converts user input to an ExecutionMode.
// The result may be invalid; Validate reports that.
func ParseExecutionMode(s string) models.ExecutionMode {
	return models.ExecutionMode(strings.ToLower(strings.TrimSpace(s)))
}

// ParsePaymentMode converts user input to a PaymentMode.
// The result may be invalid; Validate reports that.
func ParsePaymentMode(s string) models.PaymentMode {
	return models.PaymentMode(strings.ToLower(strings.TrimSpace(s)))
}
