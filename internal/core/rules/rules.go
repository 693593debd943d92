// Package rules contains the field checks shared by the entity validators.
// Everything here is pure: no I/O, no clocks, no globals.
package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Text length bounds for name/location-class fields. Both ends are inclusive.
const (
	MinTextLen = 2
	MaxTextLen = 255
)

// ValidationResult is the outcome of validating one payload.
// Error holds the first failing field's message in declaration order;
// Errors holds every failing field.
type ValidationResult struct {
	Valid  bool
	Error  string
	Errors map[string]string
}

// Collector gathers field errors and remembers the declaration order used to
// pick the headline message.
type Collector struct {
	order  []string
	errors map[string]string
}

// NewCollector creates a collector for fields declared in the given order.
func NewCollector(order ...string) *Collector {
	return &Collector{order: order, errors: map[string]string{}}
}

// Add records msg for field. Empty messages are ignored and the first
// message recorded for a field wins.
func (c *Collector) Add(field, msg string) {
	if msg == "" {
		return
	}
	if _, exists := c.errors[field]; exists {
		return
	}
	c.errors[field] = msg
}

// Result builds the ValidationResult.
func (c *Collector) Result() ValidationResult {
	if len(c.errors) == 0 {
		return ValidationResult{Valid: true}
	}

	result := ValidationResult{Errors: c.errors}
	for _, field := range c.order {
		if msg, ok := c.errors[field]; ok {
			result.Error = msg
			return result
		}
	}
	// Field outside the declared order; still report something.
	for _, msg := range c.errors {
		result.Error = msg
		break
	}
	return result
}

// Text checks a free-text value. Whitespace-only counts as empty, the lower
// bound applies to the trimmed value and the upper bound to the raw value.
// Returns "" when the value is acceptable.
func Text(label, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Required(label)
	}
	if utf8.RuneCountInString(value) > MaxTextLen {
		return fmt.Sprintf("%s must be at most %d characters", label, MaxTextLen)
	}
	if utf8.RuneCountInString(trimmed) < MinTextLen {
		return fmt.Sprintf("%s must be at least %d characters", label, MinTextLen)
	}
	return ""
}

// Required is the message for a missing or blank field.
func Required(label string) string {
	return label + " is required"
}
