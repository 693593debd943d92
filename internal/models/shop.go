package models

// ExecutionMode describes how much of the print job a shop automates.
type ExecutionMode string

const (
	ExecutionManual   ExecutionMode = "manual"
	ExecutionAssisted ExecutionMode = "assisted"
	ExecutionAuto     ExecutionMode = "auto"
)

// ExecutionModes lists every accepted execution mode in display order.
func ExecutionModes() []ExecutionMode {
	return []ExecutionMode{ExecutionManual, ExecutionAssisted, ExecutionAuto}
}

// IsValid reports whether m is one of the fixed execution modes.
func (m ExecutionMode) IsValid() bool {
	switch m {
	case ExecutionManual, ExecutionAssisted, ExecutionAuto:
		return true
	}
	return false
}

// PaymentMode describes when students pay for their prints.
type PaymentMode string

const (
	PaymentCounter PaymentMode = "counter"
	PaymentPrepaid PaymentMode = "prepaid"
	PaymentBoth    PaymentMode = "both"
)

// PaymentModes lists every accepted payment mode in display order.
func PaymentModes() []PaymentMode {
	return []PaymentMode{PaymentCounter, PaymentPrepaid, PaymentBoth}
}

// IsValid reports whether m is one of the fixed payment modes.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentCounter, PaymentPrepaid, PaymentBoth:
		return true
	}
	return false
}

// Shop is a print shop record as returned by the backend.
type Shop struct {
	ID            string        `json:"id"`
	CampusID      string        `json:"campus_id"`
	Name          string        `json:"name"`
	ExecutionMode ExecutionMode `json:"execution_mode"`
	PaymentMode   PaymentMode   `json:"payment_mode"`
	IsActive      bool          `json:"is_active"`
	CreatedAt     string        `json:"created_at"`
}

// GetID returns the server-assigned identifier.
func (s Shop) GetID() string { return s.ID }

// ShopPayload is the body of POST /api/shops and PATCH /api/shops/{id}.
// CampusID is only meaningful on create; the shop's campus never changes.
type ShopPayload struct {
	CampusID      *string        `json:"campus_id,omitempty"`
	Name          *string        `json:"name,omitempty"`
	ExecutionMode *ExecutionMode `json:"execution_mode,omitempty"`
	PaymentMode   *PaymentMode   `json:"payment_mode,omitempty"`
	IsActive      *bool          `json:"is_active,omitempty"`
}

// Apply copies the mutable fields present in p onto s. CampusID is ignored.
func (s *Shop) Apply(p ShopPayload) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.ExecutionMode != nil {
		s.ExecutionMode = *p.ExecutionMode
	}
	if p.PaymentMode != nil {
		s.PaymentMode = *p.PaymentMode
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}
