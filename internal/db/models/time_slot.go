package models

import "time"

// TimeSlot is one candidate window, local to the poll's organizer
// timezone. The set of slots is fixed at poll creation; there is no
// update path.
type TimeSlot struct {
	ID        string    `json:"id" pg:",pk"`
	PollID    string    `json:"pollId" pg:",notnull"`
	Date      string    `json:"date" pg:",notnull"`
	StartTime string    `json:"startTime" pg:",notnull"`
	EndTime   string    `json:"endTime" pg:",notnull"`
	CreatedAt time.Time `json:"createdAt" pg:"default:now()"`
}

// Key is the composite identifier clients use to reference a slot before
// they know its ID.
func (s *TimeSlot) Key() string {
	return s.Date + "-" + s.StartTime
}
