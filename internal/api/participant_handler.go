package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arallon-co/bettermeet/internal/db/models"
	"github.com/Arallon-co/bettermeet/internal/validation"
)

func (h *Handler) UpdateParticipant(c *gin.Context) {
	var req validation.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	if details := req.Validate(); details != nil {
		h.respondValidationError(c, details)
		return
	}

	// All fields optional; an empty body is a no-op, not an update.
	if req.Name == nil && req.Email == nil && req.Timezone == nil {
		participant, err := h.participants.GetOne(c.Request.Context(), c.Param("id"))
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, participant)
		return
	}

	participant, err := h.participants.Update(c.Request.Context(), c.Param("id"), req.Name, req.Email, req.Timezone)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, participant)
}

func (h *Handler) DeleteParticipant(c *gin.Context) {
	if err := h.participants.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReplaceAvailability swaps the participant's entire answer set; partial
// edits are expressed by resubmitting the full set.
func (h *Handler) ReplaceAvailability(c *gin.Context) {
	var req validation.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	if details := req.Validate(); details != nil {
		h.respondValidationError(c, details)
		return
	}

	availability := make([]*models.Availability, 0, len(req.Availability))
	for _, avail := range req.Availability {
		availability = append(availability, &models.Availability{
			TimeSlotID:  avail.TimeSlotID,
			IsAvailable: avail.IsAvailable,
		})
	}

	participant, err := h.participants.ReplaceAvailability(c.Request.Context(), c.Param("id"), availability)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, participant)
}
