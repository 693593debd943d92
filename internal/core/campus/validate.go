// Package campus contains the pure business logic for campus payloads:
// validation, normalization and display transforms. Nothing here does I/O.
package campus

import (
	"strings"

	"github.com/example/printadmin/internal/core/rules"
	"github.com/example/printadmin/internal/models"
)

// Field names as they appear on the wire and in ValidationResult.Errors.
const (
	FieldName     = "name"
	FieldLocation = "location"
)

// FieldOrder is the declaration order used to pick the headline error.
var FieldOrder = []string{FieldName, FieldLocation}

// Validate checks a campus payload.
// Rules:
// - create: name and location must be present and non-blank
// - update: only fields present in the payload are checked
// - name/location: trimmed length >= 2, raw length <= 255
func Validate(p models.CampusPayload, isUpdate bool) rules.ValidationResult {
	c := rules.NewCollector(FieldOrder...)

	checkText(c, FieldName, "Campus name", p.Name, isUpdate)
	checkText(c, FieldLocation, "Location", p.Location, isUpdate)

	return c.Result()
}

func checkText(c *rules.Collector, field, label string, value *string, isUpdate bool) {
	if value == nil {
		if !isUpdate {
			c.Add(field, rules.Required(label))
		}
		return
	}
	c.Add(field, rules.Text(label, *value))
}

// Normalize returns a copy of p with free-text fields trimmed.
// Absent fields stay absent.
func Normalize(p models.CampusPayload) models.CampusPayload {
	out := models.CampusPayload{}
	if p.Name != nil {
		out.Name = models.Ptr(strings.TrimSpace(*p.Name))
	}
	if p.Location != nil {
		out.Location = models.Ptr(strings.TrimSpace(*p.Location))
	}
	return out
}
