// Package validation checks API payloads before any write happens.
// Failures are reported as field-path-keyed messages, one entry per
// offending field, mirroring what the web client renders next to inputs.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Arallon-co/bettermeet/internal/timezone"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 1000
	maxNameLength        = 255
	maxEmailLength       = 255
	maxDates             = 30
	maxTimeSlots         = 100

	dateLayout = "2006-01-02"
)

var (
	timeRegex    = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	slotKeyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

type TimeSlotInput struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type CreatePollRequest struct {
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	OrganizerTimezone string          `json:"organizerTimezone"`
	Dates             []string        `json:"dates"`
	TimeSlots         []TimeSlotInput `json:"timeSlots"`
}

// Validate trims the title and returns field-keyed messages, or nil when
// the request is acceptable.
func (r *CreatePollRequest) Validate() map[string]string {
	details := map[string]string{}

	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		details["title"] = "Title is required"
	} else if utf8.RuneCountInString(r.Title) > maxTitleLength {
		details["title"] = "Title must be less than 255 characters"
	}

	if utf8.RuneCountInString(r.Description) > maxDescriptionLength {
		details["description"] = "Description must be less than 1000 characters"
	}

	if !timezone.IsValidTimezone(r.OrganizerTimezone) {
		details["organizerTimezone"] = "Invalid timezone"
	}

	switch {
	case len(r.Dates) == 0:
		details["dates"] = "At least one date is required"
	case len(r.Dates) > maxDates:
		details["dates"] = "Maximum 30 dates allowed"
	default:
		for i, date := range r.Dates {
			if msg := validateFutureDate(date); msg != "" {
				details[fmt.Sprintf("dates.%d", i)] = msg
			}
		}
	}

	switch {
	case len(r.TimeSlots) == 0:
		details["timeSlots"] = "At least one time slot is required"
	case len(r.TimeSlots) > maxTimeSlots:
		details["timeSlots"] = "Maximum 100 time slots allowed"
	default:
		for i, slot := range r.TimeSlots {
			validateTimeSlot(slot, fmt.Sprintf("timeSlots.%d", i), details)
		}
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

type SubmitVoteRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Timezone      string   `json:"timezone"`
	SelectedSlots []string `json:"selectedSlots"`
}

func (r *SubmitVoteRequest) Validate() map[string]string {
	details := map[string]string{}

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		details["name"] = "Name is required"
	} else if utf8.RuneCountInString(r.Name) > maxNameLength {
		details["name"] = "Name must be less than 255 characters"
	}

	if r.Email != "" {
		if msg := validateEmail(r.Email); msg != "" {
			details["email"] = msg
		}
	}

	if !timezone.IsValidTimezone(r.Timezone) {
		details["timezone"] = "Invalid timezone"
	}

	if len(r.SelectedSlots) == 0 {
		details["selectedSlots"] = "At least one time slot selection is required"
	} else {
		for i, key := range r.SelectedSlots {
			if !slotKeyRegex.MatchString(key) {
				details[fmt.Sprintf("selectedSlots.%d", i)] = "Slot key must be in YYYY-MM-DD-HH:MM format"
			}
		}
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

type UpdatePollRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (r *UpdatePollRequest) Validate() map[string]string {
	details := map[string]string{}

	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		r.Title = &trimmed
		if trimmed == "" {
			details["title"] = "Title is required"
		} else if utf8.RuneCountInString(trimmed) > maxTitleLength {
			details["title"] = "Title must be less than 255 characters"
		}
	}

	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLength {
		details["description"] = "Description must be less than 1000 characters"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

type UpdateParticipantRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Timezone *string `json:"timezone"`
}

func (r *UpdateParticipantRequest) Validate() map[string]string {
	details := map[string]string{}

	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
		if trimmed == "" {
			details["name"] = "Name is required"
		} else if utf8.RuneCountInString(trimmed) > maxNameLength {
			details["name"] = "Name must be less than 255 characters"
		}
	}

	if r.Email != nil && *r.Email != "" {
		if msg := validateEmail(*r.Email); msg != "" {
			details["email"] = msg
		}
	}

	if r.Timezone != nil && !timezone.IsValidTimezone(*r.Timezone) {
		details["timezone"] = "Invalid timezone"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

type AvailabilityInput struct {
	TimeSlotID  string `json:"timeSlotId"`
	IsAvailable bool   `json:"isAvailable"`
}

type UpdateAvailabilityRequest struct {
	Availability []AvailabilityInput `json:"availability"`
}

func (r *UpdateAvailabilityRequest) Validate() map[string]string {
	details := map[string]string{}

	if len(r.Availability) == 0 {
		details["availability"] = "At least one availability response is required"
	} else {
		for i, avail := range r.Availability {
			if avail.TimeSlotID == "" {
				details[fmt.Sprintf("availability.%d.timeSlotId", i)] = "Time slot ID is required"
			}
		}
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

func validateTimeSlot(slot TimeSlotInput, path string, details map[string]string) {
	if _, err := time.Parse(dateLayout, slot.Date); err != nil {
		details[path+".date"] = "Invalid date format"
	}

	startOK := timeRegex.MatchString(slot.StartTime)
	endOK := timeRegex.MatchString(slot.EndTime)
	if !startOK {
		details[path+".startTime"] = "Time must be in HH:MM format"
	}
	if !endOK {
		details[path+".endTime"] = "Time must be in HH:MM format"
	}

	if startOK && endOK && hhmmMinutes(slot.EndTime) <= hhmmMinutes(slot.StartTime) {
		details[path+".endTime"] = "End time must be after start time"
	}
}

func validateFutureDate(date string) string {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return "Invalid date format"
	}
	if !parsed.After(time.Now()) {
		return "Date must be in the future"
	}
	return ""
}

func validateEmail(email string) string {
	if utf8.RuneCountInString(email) > maxEmailLength {
		return "Email must be less than 255 characters"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "Invalid email format"
	}
	return ""
}

// hhmmMinutes assumes its input already matched timeRegex.
func hhmmMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}
