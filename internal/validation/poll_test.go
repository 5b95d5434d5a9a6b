package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func validCreatePoll() CreatePollRequest {
	date := futureDate()
	return CreatePollRequest{
		Title:             "Team sync",
		OrganizerTimezone: "America/New_York",
		Dates:             []string{date},
		TimeSlots: []TimeSlotInput{
			{Date: date, StartTime: "09:00", EndTime: "10:00"},
		},
	}
}

func TestCreatePollValidate_Valid(t *testing.T) {
	req := validCreatePoll()
	assert.Nil(t, req.Validate())
}

func TestCreatePollValidate_TrimsTitle(t *testing.T) {
	req := validCreatePoll()
	req.Title = "  Team sync  "

	assert.Nil(t, req.Validate())
	assert.Equal(t, "Team sync", req.Title)
}

func TestCreatePollValidate_TitleRequired(t *testing.T) {
	req := validCreatePoll()
	req.Title = "   "

	details := req.Validate()
	assert.Equal(t, "Title is required", details["title"])
}

func TestCreatePollValidate_TitleTooLong(t *testing.T) {
	req := validCreatePoll()
	req.Title = strings.Repeat("a", 256)

	details := req.Validate()
	assert.Contains(t, details, "title")
}

func TestCreatePollValidate_TitleLengthCountsCharacters(t *testing.T) {
	req := validCreatePoll()
	// 200 characters, 600 bytes.
	req.Title = strings.Repeat("予", 200)
	assert.Nil(t, req.Validate())

	req.Title = strings.Repeat("予", 256)
	details := req.Validate()
	assert.Contains(t, details, "title")
}

func TestCreatePollValidate_DescriptionTooLong(t *testing.T) {
	req := validCreatePoll()
	req.Description = strings.Repeat("a", 1001)

	details := req.Validate()
	assert.Contains(t, details, "description")
}

func TestCreatePollValidate_InvalidTimezone(t *testing.T) {
	req := validCreatePoll()
	req.OrganizerTimezone = "Not/AZone"

	details := req.Validate()
	assert.Equal(t, "Invalid timezone", details["organizerTimezone"])
}

func TestCreatePollValidate_DatesRequired(t *testing.T) {
	req := validCreatePoll()
	req.Dates = nil

	details := req.Validate()
	assert.Equal(t, "At least one date is required", details["dates"])
}

func TestCreatePollValidate_TooManyDates(t *testing.T) {
	req := validCreatePoll()
	req.Dates = make([]string, 31)
	for i := range req.Dates {
		req.Dates[i] = futureDate()
	}

	details := req.Validate()
	assert.Equal(t, "Maximum 30 dates allowed", details["dates"])
}

func TestCreatePollValidate_PastDate(t *testing.T) {
	req := validCreatePoll()
	req.Dates = []string{"2020-01-01"}

	details := req.Validate()
	assert.Equal(t, "Date must be in the future", details["dates.0"])
}

func TestCreatePollValidate_MalformedDate(t *testing.T) {
	req := validCreatePoll()
	req.Dates = []string{"10-03-2025"}

	details := req.Validate()
	assert.Equal(t, "Invalid date format", details["dates.0"])
}

func TestCreatePollValidate_TimeSlotsRequired(t *testing.T) {
	req := validCreatePoll()
	req.TimeSlots = nil

	details := req.Validate()
	assert.Equal(t, "At least one time slot is required", details["timeSlots"])
}

func TestCreatePollValidate_TooManyTimeSlots(t *testing.T) {
	req := validCreatePoll()
	slot := req.TimeSlots[0]
	req.TimeSlots = make([]TimeSlotInput, 101)
	for i := range req.TimeSlots {
		req.TimeSlots[i] = slot
	}

	details := req.Validate()
	assert.Equal(t, "Maximum 100 time slots allowed", details["timeSlots"])
}

func TestCreatePollValidate_BadTimeFormat(t *testing.T) {
	req := validCreatePoll()
	req.TimeSlots[0].StartTime = "9am"

	details := req.Validate()
	assert.Equal(t, "Time must be in HH:MM format", details["timeSlots.0.startTime"])
}

func TestCreatePollValidate_SingleDigitHourAllowed(t *testing.T) {
	req := validCreatePoll()
	req.TimeSlots[0].StartTime = "9:00"

	assert.Nil(t, req.Validate())
}

func TestCreatePollValidate_EndBeforeStart(t *testing.T) {
	req := validCreatePoll()
	req.TimeSlots[0].StartTime = "10:00"
	req.TimeSlots[0].EndTime = "09:00"

	details := req.Validate()
	assert.Equal(t, "End time must be after start time", details["timeSlots.0.endTime"])
}

func TestCreatePollValidate_EndEqualsStart(t *testing.T) {
	req := validCreatePoll()
	req.TimeSlots[0].EndTime = req.TimeSlots[0].StartTime

	details := req.Validate()
	assert.Equal(t, "End time must be after start time", details["timeSlots.0.endTime"])
}

func validSubmitVote() SubmitVoteRequest {
	return SubmitVoteRequest{
		Name:          "Alice",
		Email:         "alice@example.com",
		Timezone:      "Europe/London",
		SelectedSlots: []string{"2025-03-10-09:00"},
	}
}

func TestSubmitVoteValidate_Valid(t *testing.T) {
	req := validSubmitVote()
	assert.Nil(t, req.Validate())
}

func TestSubmitVoteValidate_EmailOptional(t *testing.T) {
	req := validSubmitVote()
	req.Email = ""

	assert.Nil(t, req.Validate())
}

func TestSubmitVoteValidate_BadEmail(t *testing.T) {
	req := validSubmitVote()
	req.Email = "not-an-email"

	details := req.Validate()
	assert.Equal(t, "Invalid email format", details["email"])
}

func TestSubmitVoteValidate_NameRequired(t *testing.T) {
	req := validSubmitVote()
	req.Name = ""

	details := req.Validate()
	assert.Equal(t, "Name is required", details["name"])
}

func TestSubmitVoteValidate_InvalidTimezone(t *testing.T) {
	req := validSubmitVote()
	req.Timezone = "Mars/Olympus_Mons"

	details := req.Validate()
	assert.Equal(t, "Invalid timezone", details["timezone"])
}

func TestSubmitVoteValidate_SlotsRequired(t *testing.T) {
	req := validSubmitVote()
	req.SelectedSlots = nil

	details := req.Validate()
	assert.Contains(t, details, "selectedSlots")
}

func TestSubmitVoteValidate_BadSlotKey(t *testing.T) {
	req := validSubmitVote()
	req.SelectedSlots = []string{"2025-03-10 09:00"}

	details := req.Validate()
	assert.Contains(t, details, "selectedSlots.0")
}

func TestUpdatePollValidate_PartialFields(t *testing.T) {
	title := "  New title  "
	req := UpdatePollRequest{Title: &title}

	assert.Nil(t, req.Validate())
	assert.Equal(t, "New title", *req.Title)
}

func TestUpdatePollValidate_NothingToValidate(t *testing.T) {
	req := UpdatePollRequest{}
	assert.Nil(t, req.Validate())
}

func TestUpdatePollValidate_EmptyTitleRejected(t *testing.T) {
	title := "  "
	req := UpdatePollRequest{Title: &title}

	details := req.Validate()
	assert.Equal(t, "Title is required", details["title"])
}

func TestUpdateParticipantValidate_BadTimezone(t *testing.T) {
	tz := "Not/AZone"
	req := UpdateParticipantRequest{Timezone: &tz}

	details := req.Validate()
	assert.Equal(t, "Invalid timezone", details["timezone"])
}

func TestUpdateAvailabilityValidate_RequiresEntries(t *testing.T) {
	req := UpdateAvailabilityRequest{}

	details := req.Validate()
	assert.Contains(t, details, "availability")
}

func TestUpdateAvailabilityValidate_RequiresSlotIDs(t *testing.T) {
	req := UpdateAvailabilityRequest{
		Availability: []AvailabilityInput{{TimeSlotID: "", IsAvailable: true}},
	}

	details := req.Validate()
	assert.Contains(t, details, "availability.0.timeSlotId")
}
