package models

import "time"

// Poll is the organizer-authored meeting poll. Time slots are stored in
// the organizer's timezone, which is the canonical reference frame; they
// are converted for participants at read time, never rewritten.
type Poll struct {
	ID                string         `json:"id" pg:",pk"`
	Title             string         `json:"title" pg:",notnull"`
	Description       string         `json:"description,omitempty"`
	OrganizerTimezone string         `json:"organizerTimezone" pg:",notnull"`
	TimeSlots         []*TimeSlot    `json:"timeSlots" pg:"rel:has-many,fk:poll_id"`
	Participants      []*Participant `json:"participants" pg:"rel:has-many,fk:poll_id"`
	CreatedAt         time.Time      `json:"createdAt" pg:"default:now()"`
	UpdatedAt         time.Time      `json:"updatedAt" pg:"default:now()"`
}
