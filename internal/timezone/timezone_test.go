package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTimezone_ValidZones(t *testing.T) {
	assert.True(t, IsValidTimezone("UTC"))
	assert.True(t, IsValidTimezone("America/New_York"))
	assert.True(t, IsValidTimezone("Europe/London"))
}

func TestIsValidTimezone_InvalidZones(t *testing.T) {
	assert.False(t, IsValidTimezone("Not/AZone"))
	assert.False(t, IsValidTimezone("Invalid"))
	assert.False(t, IsValidTimezone(""))
}

func TestConvertTimeSlots_SameZoneIsIdentity(t *testing.T) {
	slots := []TimeSlot{
		{Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"},
		{Date: "2025-03-11", StartTime: "14:00", EndTime: "15:30"},
	}

	converted := ConvertTimeSlots(slots, "Asia/Tokyo", "Asia/Tokyo")

	assert.Len(t, converted, 2)
	for i, slot := range converted {
		assert.Equal(t, slots[i].Date, slot.Date)
		assert.Equal(t, slots[i].StartTime, slot.StartTime)
		assert.Equal(t, slots[i].EndTime, slot.EndTime)
		assert.Equal(t, slots[i].Date, slot.OriginalDate)
	}
}

func TestConvertTimeSlots_TokyoToLosAngeles(t *testing.T) {
	slots := []TimeSlot{
		{Date: "2025-01-20", StartTime: "09:00", EndTime: "10:00"},
	}

	converted := ConvertTimeSlots(slots, "Asia/Tokyo", "America/Los_Angeles")

	// 09:00 JST on Jan 20 is 16:00 PST on Jan 19.
	assert.Len(t, converted, 1)
	assert.Equal(t, "2025-01-19", converted[0].Date)
	assert.Equal(t, "16:00", converted[0].StartTime)
	assert.Equal(t, "17:00", converted[0].EndTime)
	assert.Equal(t, "2025-01-20", converted[0].OriginalDate)
}

func TestConvertTimeSlots_RoundTrip(t *testing.T) {
	slots := []TimeSlot{
		{Date: "2025-06-15", StartTime: "09:00", EndTime: "10:00"},
	}

	there := ConvertTimeSlots(slots, "America/New_York", "Asia/Tokyo")
	assert.Len(t, there, 1)
	assert.Equal(t, "2025-06-15", there[0].Date)
	assert.Equal(t, "22:00", there[0].StartTime)

	back := ConvertTimeSlots([]TimeSlot{{
		Date:      there[0].Date,
		StartTime: there[0].StartTime,
		EndTime:   there[0].EndTime,
	}}, "Asia/Tokyo", "America/New_York")

	assert.Len(t, back, 1)
	assert.Equal(t, slots[0].Date, back[0].Date)
	assert.Equal(t, slots[0].StartTime, back[0].StartTime)
	assert.Equal(t, slots[0].EndTime, back[0].EndTime)
}

func TestConvertTimeSlots_AcrossDSTTransition(t *testing.T) {
	// US DST starts 2025-03-09 at 02:00; the 01:30-03:30 wall-clock span
	// covers only one real hour.
	slots := []TimeSlot{
		{Date: "2025-03-09", StartTime: "01:30", EndTime: "03:30"},
	}

	converted := ConvertTimeSlots(slots, "America/New_York", "UTC")

	assert.Len(t, converted, 1)
	assert.Equal(t, "2025-03-09", converted[0].Date)
	assert.Equal(t, "06:30", converted[0].StartTime)
	assert.Equal(t, "07:30", converted[0].EndTime)
}

func TestConvertTimeSlots_InvalidZoneReturnsSlotsUnconverted(t *testing.T) {
	slots := []TimeSlot{
		{Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"},
	}

	converted := ConvertTimeSlots(slots, "Not/AZone", "UTC")

	assert.Len(t, converted, 1)
	assert.Equal(t, "2025-03-10", converted[0].Date)
	assert.Equal(t, "09:00", converted[0].StartTime)
	assert.Equal(t, "10:00", converted[0].EndTime)
	assert.Equal(t, "2025-03-10", converted[0].OriginalDate)
}

func TestConvertTimeSlots_MalformedSlotRecoversLocally(t *testing.T) {
	slots := []TimeSlot{
		{Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"},
		{Date: "not-a-date", StartTime: "09:00", EndTime: "10:00"},
	}

	converted := ConvertTimeSlots(slots, "UTC", "Asia/Tokyo")

	assert.Len(t, converted, 2)
	assert.Equal(t, "18:00", converted[0].StartTime)
	// The malformed slot comes back as-is instead of failing the batch.
	assert.Equal(t, "not-a-date", converted[1].Date)
	assert.Equal(t, "09:00", converted[1].StartTime)
}

func TestGenerateBusinessHoursTimeSlots_Grid(t *testing.T) {
	slots := GenerateBusinessHoursTimeSlots([]string{"2025-03-10"}, "UTC")

	assert.Len(t, slots, 17)
	assert.Equal(t, TimeSlot{Date: "2025-03-10", StartTime: "09:00", EndTime: "09:30"}, slots[0])
	assert.Equal(t, TimeSlot{Date: "2025-03-10", StartTime: "17:00", EndTime: "17:30"}, slots[16])
}

func TestGenerateBusinessHoursTimeSlots_MultipleDates(t *testing.T) {
	slots := GenerateBusinessHoursTimeSlots([]string{"2025-03-10", "2025-03-11"}, "UTC")

	assert.Len(t, slots, 34)
	assert.Equal(t, "2025-03-10", slots[0].Date)
	assert.Equal(t, "2025-03-11", slots[17].Date)
}

func TestFilterToBusinessHours_KeepsInclusiveBounds(t *testing.T) {
	converted := []ConvertedTimeSlot{
		{Date: "2025-03-10", StartTime: "08:59", EndTime: "09:29"},
		{Date: "2025-03-10", StartTime: "09:00", EndTime: "09:30"},
		{Date: "2025-03-10", StartTime: "17:00", EndTime: "17:30"},
		{Date: "2025-03-10", StartTime: "17:01", EndTime: "17:31"},
	}

	filtered := FilterToBusinessHours(converted, "UTC")

	assert.Len(t, filtered, 2)
	assert.Equal(t, "09:00", filtered[0].StartTime)
	assert.Equal(t, "17:00", filtered[1].StartTime)
}

func TestConvertBusinessHoursTimeSlots_FallbackWhenNothingSurvives(t *testing.T) {
	// 17:00 JST is midnight in Los Angeles; every converted slot lands
	// outside business hours, so the full grid is regenerated instead of
	// returning nothing.
	slots := []TimeSlot{
		{Date: "2025-01-20", StartTime: "17:00", EndTime: "17:30"},
	}

	result := ConvertBusinessHoursTimeSlots(slots, "Asia/Tokyo", "America/Los_Angeles")

	assert.Len(t, result, 17)
	assert.Equal(t, "2025-01-20", result[0].Date)
	assert.Equal(t, "09:00", result[0].StartTime)
	assert.Equal(t, "17:00", result[16].StartTime)
	// Regenerated slots carry no original date; nothing maps back.
	assert.Empty(t, result[0].OriginalDate)
}

func TestConvertBusinessHoursTimeSlots_SurvivorsPassThrough(t *testing.T) {
	slots := []TimeSlot{
		{Date: "2025-01-20", StartTime: "09:00", EndTime: "10:00"},
	}

	// 09:00 JST on Jan 20 is 16:00 PST on Jan 19, inside business hours.
	result := ConvertBusinessHoursTimeSlots(slots, "Asia/Tokyo", "America/Los_Angeles")

	assert.Len(t, result, 1)
	assert.Equal(t, "2025-01-19", result[0].Date)
	assert.Equal(t, "16:00", result[0].StartTime)
	assert.Equal(t, "2025-01-20", result[0].OriginalDate)
}

func TestConvertBusinessHoursTimeSlots_EmptyInputStaysEmpty(t *testing.T) {
	result := ConvertBusinessHoursTimeSlots(nil, "Asia/Tokyo", "America/Los_Angeles")
	assert.Empty(t, result)
}

func TestDetectUserTimezone_ReturnsValidZone(t *testing.T) {
	zone := DetectUserTimezone()
	assert.NotEmpty(t, zone)
	assert.True(t, IsValidTimezone(zone))
}

func TestGetTimezoneOffsetString_SignConvention(t *testing.T) {
	at := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	// Behind-UTC zones render '+', ahead-of-UTC zones render '-'.
	assert.Equal(t, "+05:00", GetTimezoneOffsetString("America/New_York", at))
	assert.Equal(t, "-09:00", GetTimezoneOffsetString("Asia/Tokyo", at))
	assert.Equal(t, "-05:30", GetTimezoneOffsetString("Asia/Kolkata", at))
	assert.Equal(t, "+00:00", GetTimezoneOffsetString("UTC", at))
}

func TestGetTimezoneOffsetString_InvalidZone(t *testing.T) {
	assert.Equal(t, "+00:00", GetTimezoneOffsetString("Not/AZone", time.Now()))
}

func TestMinutesOfDay(t *testing.T) {
	m, err := MinutesOfDay("09:00")
	assert.NoError(t, err)
	assert.Equal(t, 540, m)

	m, err = MinutesOfDay("17:00")
	assert.NoError(t, err)
	assert.Equal(t, 1020, m)

	_, err = MinutesOfDay("25:00")
	assert.Error(t, err)
}

func TestFormatInTimezone(t *testing.T) {
	at := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-20 09:00", FormatInTimezone(at, "Asia/Tokyo", "2006-01-02 15:04"))
	assert.Equal(t, "2025-01-20 00:00", FormatInTimezone(at, "Not/AZone", "2006-01-02 15:04"))
}
