package models

import "time"

// Availability records a participant's answer for a single organizer time
// slot. One row per (participant, time slot) pair.
type Availability struct {
	tableName struct{} `pg:"availabilities"`

	ID            string    `json:"id" pg:",pk"`
	ParticipantID string    `json:"participantId" pg:",notnull"`
	TimeSlotID    string    `json:"timeSlotId" pg:",notnull"`
	IsAvailable   bool      `json:"isAvailable" pg:",use_zero"`
	CreatedAt     time.Time `json:"createdAt" pg:"default:now()"`
}
