package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arallon-co/bettermeet/internal/db/models"
	"github.com/Arallon-co/bettermeet/internal/validation"
)

type submitVoteResponse struct {
	Success       bool   `json:"success"`
	ParticipantID string `json:"participantId"`
	Message       string `json:"message"`
}

// SubmitVote records a participant's availability. Selected slots arrive
// as "{date}-{startTime}" keys in the organizer's timezone and are
// resolved back to stored slot IDs before anything is written.
func (h *Handler) SubmitVote(c *gin.Context) {
	var req validation.SubmitVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	if details := req.Validate(); details != nil {
		h.respondValidationError(c, details)
		return
	}

	pollID := c.Param("id")
	poll, err := h.polls.GetOne(c.Request.Context(), pollID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	availability := make([]*models.Availability, 0, len(req.SelectedSlots))
	for i, key := range req.SelectedSlots {
		date, startTime, ok := splitSlotKey(key)
		if !ok {
			h.respondValidationError(c, map[string]string{
				fmt.Sprintf("selectedSlots.%d", i): fmt.Sprintf("Invalid slot key: %s", key),
			})
			return
		}

		slot := findTimeSlot(poll.TimeSlots, date, startTime)
		if slot == nil {
			h.respondValidationError(c, map[string]string{
				fmt.Sprintf("selectedSlots.%d", i): fmt.Sprintf("Time slot not found for key: %s", key),
			})
			return
		}

		availability = append(availability, &models.Availability{
			TimeSlotID:  slot.ID,
			IsAvailable: true,
		})
	}

	participant := &models.Participant{
		Name:     req.Name,
		Email:    req.Email,
		Timezone: req.Timezone,
	}

	created, err := h.participants.CreateWithAvailability(c.Request.Context(), pollID, participant, availability)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, submitVoteResponse{
		Success:       true,
		ParticipantID: created.ID,
		Message:       "Vote submitted successfully",
	})
}

// splitSlotKey splits "YYYY-MM-DD-HH:MM" at the third dash. The date part
// is fixed-width, so the key cannot be split on dashes alone.
func splitSlotKey(key string) (date, startTime string, ok bool) {
	if len(key) < 12 || key[10] != '-' {
		return "", "", false
	}
	return key[:10], key[11:], true
}

func findTimeSlot(slots []*models.TimeSlot, date, startTime string) *models.TimeSlot {
	for _, slot := range slots {
		if slot.Date == date && slot.StartTime == startTime {
			return slot
		}
	}
	return nil
}
