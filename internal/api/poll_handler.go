package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Arallon-co/bettermeet/internal/db/models"
	"github.com/Arallon-co/bettermeet/internal/timezone"
	"github.com/Arallon-co/bettermeet/internal/validation"
)

type timeSlotView struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type pollView struct {
	ID                string                `json:"id"`
	Title             string                `json:"title"`
	Description       string                `json:"description,omitempty"`
	OrganizerTimezone string                `json:"organizerTimezone"`
	TimeSlots         []timeSlotView        `json:"timeSlots"`
	Participants      []*models.Participant `json:"participants"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

type createPollResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	OrganizerTimezone string    `json:"organizerTimezone"`
	ShareURL          string    `json:"shareUrl"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreatePoll stores a poll and its time slots and hands back a shareable
// URL for the organizer to distribute.
func (h *Handler) CreatePoll(c *gin.Context) {
	var req validation.CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	if details := req.Validate(); details != nil {
		h.respondValidationError(c, details)
		return
	}

	poll := &models.Poll{
		Title:             req.Title,
		Description:       req.Description,
		OrganizerTimezone: req.OrganizerTimezone,
	}

	slots := make([]*models.TimeSlot, 0, len(req.TimeSlots))
	for _, slot := range req.TimeSlots {
		slots = append(slots, &models.TimeSlot{
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	created, err := h.polls.Create(c.Request.Context(), poll, slots)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createPollResponse{
		ID:                created.ID,
		Title:             created.Title,
		Description:       created.Description,
		OrganizerTimezone: created.OrganizerTimezone,
		ShareURL:          fmt.Sprintf("%s/poll/%s", h.resolveBaseURL(c), created.ID),
		CreatedAt:         created.CreatedAt,
	})
}

// GetPoll returns the poll with its slots in the organizer's timezone, or
// converted and filtered to business hours when the caller supplies a
// different valid timezone.
func (h *Handler) GetPoll(c *gin.Context) {
	poll, err := h.polls.GetOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	views := make([]timeSlotView, 0, len(poll.TimeSlots))
	for _, slot := range poll.TimeSlots {
		views = append(views, timeSlotView{
			ID:        slot.ID,
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	participantTz := c.Query("timezone")
	if participantTz != "" && participantTz != poll.OrganizerTimezone && timezone.IsValidTimezone(participantTz) {
		views = h.convertSlotViews(poll, views, participantTz)
	}

	participants := poll.Participants
	if participants == nil {
		participants = []*models.Participant{}
	}

	c.JSON(http.StatusOK, pollView{
		ID:                poll.ID,
		Title:             poll.Title,
		Description:       poll.Description,
		OrganizerTimezone: poll.OrganizerTimezone,
		TimeSlots:         views,
		Participants:      participants,
		CreatedAt:         poll.CreatedAt,
		UpdatedAt:         poll.UpdatedAt,
	})
}

// convertSlotViews re-renders slot views in the participant's timezone.
// Converted slots that map back to a stored slot keep its ID; fabricated
// fallback slots get a synthetic "{pollId}-{date}-{startTime}" ID so the
// client can still render them.
func (h *Handler) convertSlotViews(poll *models.Poll, views []timeSlotView, participantTz string) []timeSlotView {
	inputs := make([]timezone.TimeSlot, 0, len(views))
	for _, view := range views {
		inputs = append(inputs, timezone.TimeSlot{
			Date:      view.Date,
			StartTime: view.StartTime,
			EndTime:   view.EndTime,
		})
	}

	converted := timezone.ConvertBusinessHoursTimeSlots(inputs, poll.OrganizerTimezone, participantTz)

	idByKey := make(map[string]string, len(views))
	for _, view := range views {
		idByKey[view.Date+"-"+view.StartTime] = view.ID
	}

	result := make([]timeSlotView, 0, len(converted))
	for _, slot := range converted {
		keyDate := slot.OriginalDate
		if keyDate == "" {
			keyDate = slot.Date
		}

		id := idByKey[keyDate+"-"+slot.StartTime]
		if id == "" {
			id = fmt.Sprintf("%s-%s-%s", poll.ID, slot.Date, slot.StartTime)
		}

		result = append(result, timeSlotView{
			ID:        id,
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return result
}

func (h *Handler) UpdatePoll(c *gin.Context) {
	var req validation.UpdatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	if details := req.Validate(); details != nil {
		h.respondValidationError(c, details)
		return
	}

	poll, err := h.polls.Update(c.Request.Context(), c.Param("id"), req.Title, req.Description)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, poll)
}

func (h *Handler) DeletePoll(c *gin.Context) {
	if err := h.polls.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetPollStats(c *gin.Context) {
	poll, err := h.polls.GetOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ComputeStats(poll))
}

func (h *Handler) resolveBaseURL(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
