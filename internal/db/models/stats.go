package models

// TimeSlotAvailability aggregates responses for one slot.
type TimeSlotAvailability struct {
	TimeSlotID             string  `json:"timeSlotId"`
	Date                   string  `json:"date"`
	StartTime              string  `json:"startTime"`
	EndTime                string  `json:"endTime"`
	AvailableCount         int     `json:"availableCount"`
	AvailabilityPercentage float64 `json:"availabilityPercentage"`
}

// PollStats is the organizer-facing aggregate over a poll's responses.
type PollStats struct {
	TotalTimeSlots         int                    `json:"totalTimeSlots"`
	TotalParticipants      int                    `json:"totalParticipants"`
	TotalResponses         int                    `json:"totalResponses"`
	AvailabilityByTimeSlot []TimeSlotAvailability `json:"availabilityByTimeSlot"`
	ResponseRate           float64                `json:"responseRate"`
}

// ComputeStats derives the aggregate view from a fully loaded poll.
func ComputeStats(poll *Poll) *PollStats {
	stats := &PollStats{
		TotalTimeSlots:         len(poll.TimeSlots),
		TotalParticipants:      len(poll.Participants),
		AvailabilityByTimeSlot: make([]TimeSlotAvailability, 0, len(poll.TimeSlots)),
	}

	for _, participant := range poll.Participants {
		stats.TotalResponses += len(participant.Availability)
	}

	for _, slot := range poll.TimeSlots {
		availableCount := 0
		for _, participant := range poll.Participants {
			for _, avail := range participant.Availability {
				if avail.TimeSlotID == slot.ID && avail.IsAvailable {
					availableCount++
					break
				}
			}
		}

		percentage := 0.0
		if stats.TotalParticipants > 0 {
			percentage = float64(availableCount) / float64(stats.TotalParticipants) * 100
		}

		stats.AvailabilityByTimeSlot = append(stats.AvailabilityByTimeSlot, TimeSlotAvailability{
			TimeSlotID:             slot.ID,
			Date:                   slot.Date,
			StartTime:              slot.StartTime,
			EndTime:                slot.EndTime,
			AvailableCount:         availableCount,
			AvailabilityPercentage: percentage,
		})
	}

	if stats.TotalTimeSlots > 0 && stats.TotalParticipants > 0 {
		stats.ResponseRate = float64(stats.TotalResponses) /
			float64(stats.TotalTimeSlots*stats.TotalParticipants) * 100
	}

	return stats
}
