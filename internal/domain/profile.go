package domain

import "time"

// Profile is the owner record that tasks belong to.
type Profile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Label returns the display name, falling back to the ID.
func (p *Profile) Label() string {
	return CoalesceStr(p.DisplayName, p.ID)
}

// Holiday is a single named non-working date.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
