// Package calendar keeps the organization's corporate calendar events.
package calendar

import "time"

type Event struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Title          string    `json:"title"`
	EventDate      time.Time `json:"eventDate"`
	Description    string    `json:"description"`
	Audience       string    `json:"audience"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Filter struct {
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}
