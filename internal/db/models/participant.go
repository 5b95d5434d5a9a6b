package models

import "time"

// Participant is one respondent on a poll. Email is optional; when
// present, at most one participant per poll may use it (enforced by a
// partial unique index).
type Participant struct {
	ID           string          `json:"id" pg:",pk"`
	PollID       string          `json:"pollId" pg:",notnull"`
	Name         string          `json:"name" pg:",notnull"`
	Email        string          `json:"email,omitempty"`
	Timezone     string          `json:"timezone" pg:",notnull"`
	Availability []*Availability `json:"availability" pg:"rel:has-many,fk:participant_id"`
	CreatedAt    time.Time       `json:"createdAt" pg:"default:now()"`
}
