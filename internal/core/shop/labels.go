package shop

import (
	"fmt"

	"github.com/example/printadmin/internal/models"
)

var executionLabels = map[models.ExecutionMode]string{
	models.ExecutionManual:   "✍️ Manual",
	models.ExecutionAssisted: "⚙️ Assisted",
	models.ExecutionAuto:     "🚀 Automated",
}

var paymentLabels = map[models.PaymentMode]string{
	models.PaymentCounter: "💳 Pay @ Counter",
	models.PaymentPrepaid: "💰 Prepaid Wallet",
	models.PaymentBoth:    "🔄 Both Options",
}

var executionDescriptions = map[models.ExecutionMode]string{
	models.ExecutionManual:   "Shop staff manually prints from browser",
	models.ExecutionAssisted: "Desktop agent automates print process",
	models.ExecutionAuto:     "Fully automatic printing (requires payment)",
}

var paymentDescriptions = map[models.PaymentMode]string{
	models.PaymentCounter: "Students pay when collecting prints",
	models.PaymentPrepaid: "Students prepay via wallet",
	models.PaymentBoth:    "Both payment options available",
}

// ExecutionModeLabel returns the emoji label for m, or m itself when unknown.
func ExecutionModeLabel(m models.ExecutionMode) string {
	if label, ok := executionLabels[m]; ok {
		return label
	}
	return string(m)
}

// PaymentModeLabel returns the emoji label for m, or m itself when unknown.
func PaymentModeLabel(m models.PaymentMode) string {
	if label, ok := paymentLabels[m]; ok {
		return label
	}
	return string(m)
}

// ExecutionModeDescription explains what the mode means for shop staff.
func ExecutionModeDescription(m models.ExecutionMode) string {
	return executionDescriptions[m]
}

// PaymentModeDescription explains what the mode means for students.
func PaymentModeDescription(m models.PaymentMode) string {
	return paymentDescriptions[m]
}

// StatusLabel returns "Active" or "Inactive".
func StatusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// Summary renders "name - execution | payment | status".
func Summary(s models.Shop) string {
	return fmt.Sprintf("%s - %s | %s | %s",
		s.Name,
		ExecutionModeLabel(s.ExecutionMode),
		PaymentModeLabel(s.PaymentMode),
		StatusLabel(s.IsActive),
	)
}
