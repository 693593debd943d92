// Package models holds the wire-level entities shared by every layer: the
// JSON shapes exchanged with the print-shop REST API and the partial payloads
// sent on create and update.
package models

// Campus is a campus record as returned by the backend.
type Campus struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	CreatedAt string `json:"created_at"`
}

// GetID returns the server-assigned identifier.
func (c Campus) GetID() string { return c.ID }

// CampusPayload is the body of POST /api/campuses and PATCH /api/campuses/{id}.
// A nil field is absent from the request; a non-nil field is sent even when empty.
type CampusPayload struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}

// Apply copies the fields present in p onto c.
func (c *Campus) Apply(p CampusPayload) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
}
