// Package timezone converts poll time slots between IANA timezones and
// filters them to local business hours. All functions are pure; times are
// "HH:MM" strings and dates are "YYYY-MM-DD" strings throughout.
package timezone

import (
	"fmt"
	"os"
	"sort"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04"

	// Business hours are 09:00 to 17:00 local time, inclusive at both ends.
	businessStartMinutes = 540
	businessEndMinutes   = 1020

	slotDurationMinutes = 30
)

// TimeSlot is a wall-clock slot local to some timezone.
type TimeSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ConvertedTimeSlot is a TimeSlot re-rendered in a target timezone.
// OriginalDate is the pre-conversion date, letting callers map a converted
// slot back to the slot the organizer authored. It is empty for slots that
// were regenerated rather than converted.
type ConvertedTimeSlot struct {
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	OriginalDate string `json:"originalDate,omitempty"`
}

// IsValidTimezone reports whether name is a loadable IANA timezone.
func IsValidTimezone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// ConvertTimeSlots re-renders slots from fromTz into toTz. When the two
// zones are equal no timezone math is invoked and slots are returned
// unchanged, tagged with their own date as OriginalDate. A slot that fails
// to convert is returned unconverted rather than failing the batch.
func ConvertTimeSlots(slots []TimeSlot, fromTz, toTz string) []ConvertedTimeSlot {
	converted := make([]ConvertedTimeSlot, 0, len(slots))

	if fromTz == toTz {
		for _, slot := range slots {
			converted = append(converted, ConvertedTimeSlot{
				Date:         slot.Date,
				StartTime:    slot.StartTime,
				EndTime:      slot.EndTime,
				OriginalDate: slot.Date,
			})
		}
		return converted
	}

	fromLoc, fromErr := time.LoadLocation(fromTz)
	toLoc, toErr := time.LoadLocation(toTz)

	for _, slot := range slots {
		if fromErr != nil || toErr != nil {
			converted = append(converted, unconverted(slot))
			continue
		}

		start, err := time.ParseInLocation(dateTimeLayout, slot.Date+" "+slot.StartTime, fromLoc)
		if err != nil {
			converted = append(converted, unconverted(slot))
			continue
		}

		end, err := time.ParseInLocation(dateTimeLayout, slot.Date+" "+slot.EndTime, fromLoc)
		if err != nil {
			converted = append(converted, unconverted(slot))
			continue
		}

		localStart := start.In(toLoc)
		localEnd := end.In(toLoc)

		converted = append(converted, ConvertedTimeSlot{
			Date:         localStart.Format(dateLayout),
			StartTime:    localStart.Format(timeLayout),
			EndTime:      localEnd.Format(timeLayout),
			OriginalDate: slot.Date,
		})
	}

	return converted
}

// GenerateBusinessHoursTimeSlots emits the full 30-minute business-hours
// grid for each date: 17 slots with start times from 09:00 through 17:00.
func GenerateBusinessHoursTimeSlots(dates []string, timezone string) []TimeSlot {
	_ = timezone // slots are wall-clock local; the zone does not affect the grid

	slots := make([]TimeSlot, 0, len(dates)*17)

	for _, date := range dates {
		for m := businessStartMinutes; m <= businessEndMinutes; m += slotDurationMinutes {
			slots = append(slots, TimeSlot{
				Date:      date,
				StartTime: formatMinutes(m),
				EndTime:   formatMinutes(m + slotDurationMinutes),
			})
		}
	}

	return slots
}

// FilterToBusinessHours keeps the slots whose start time falls within
// business hours. If that empties a non-empty input, the whole converted
// set fell outside business hours and a fresh business-hours grid is
// generated for the distinct converted dates instead, so a participant is
// never shown zero options purely due to timezone drift.
func FilterToBusinessHours(converted []ConvertedTimeSlot, timezone string) []ConvertedTimeSlot {
	filtered := make([]ConvertedTimeSlot, 0, len(converted))

	for _, slot := range converted {
		m, err := MinutesOfDay(slot.StartTime)
		if err != nil {
			continue
		}
		if m >= businessStartMinutes && m <= businessEndMinutes {
			filtered = append(filtered, slot)
		}
	}

	if len(filtered) == 0 && len(converted) > 0 {
		seen := make(map[string]bool, len(converted))
		dates := make([]string, 0, len(converted))
		for _, slot := range converted {
			if !seen[slot.Date] {
				seen[slot.Date] = true
				dates = append(dates, slot.Date)
			}
		}
		sort.Strings(dates)

		generated := GenerateBusinessHoursTimeSlots(dates, timezone)
		regenerated := make([]ConvertedTimeSlot, 0, len(generated))
		for _, slot := range generated {
			regenerated = append(regenerated, ConvertedTimeSlot{
				Date:      slot.Date,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}
		return regenerated
	}

	return filtered
}

// ConvertBusinessHoursTimeSlots converts slots into toTz and filters the
// result to business hours, regenerating the grid when nothing survives.
func ConvertBusinessHoursTimeSlots(slots []TimeSlot, fromTz, toTz string) []ConvertedTimeSlot {
	return FilterToBusinessHours(ConvertTimeSlots(slots, fromTz, toTz), toTz)
}

// DetectUserTimezone resolves the process timezone: the TZ environment
// variable first, then the host zone name, then a representative zone for
// the host's whole-hour UTC offset, then "UTC".
func DetectUserTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" && IsValidTimezone(tz) {
		return tz
	}

	if name := time.Now().Location().String(); name != "Local" && IsValidTimezone(name) {
		return name
	}

	_, offsetSeconds := time.Now().Zone()
	if tz := timezoneFromOffset(offsetSeconds / 3600); tz != "" {
		return tz
	}

	return "UTC"
}

// timezoneFromOffset maps a whole-hour UTC offset to one representative
// zone. Lossy: many zones share an offset.
func timezoneFromOffset(offsetHours int) string {
	offsetMap := map[int]string{
		-12: "Pacific/Kwajalein",
		-11: "Pacific/Midway",
		-10: "Pacific/Honolulu",
		-9:  "America/Anchorage",
		-8:  "America/Los_Angeles",
		-7:  "America/Denver",
		-6:  "America/Chicago",
		-5:  "America/New_York",
		-4:  "America/Halifax",
		-3:  "America/Sao_Paulo",
		-2:  "Atlantic/South_Georgia",
		-1:  "Atlantic/Azores",
		0:   "Europe/London",
		1:   "Europe/Paris",
		2:   "Europe/Berlin",
		3:   "Europe/Moscow",
		4:   "Asia/Dubai",
		5:   "Asia/Karachi",
		6:   "Asia/Dhaka",
		7:   "Asia/Bangkok",
		8:   "Asia/Shanghai",
		9:   "Asia/Tokyo",
		10:  "Australia/Sydney",
		11:  "Pacific/Norfolk",
		12:  "Pacific/Fiji",
	}

	return offsetMap[offsetHours]
}

// GetTimezoneOffsetString renders the zone's UTC offset at the given
// instant as "+HH:MM"/"-HH:MM". The sign convention is inherited from the
// web client this API serves: zones behind UTC render with '+' and zones
// ahead with '-'. Invalid zones render as "+00:00".
func GetTimezoneOffsetString(timezone string, at time.Time) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "+00:00"
	}

	_, offsetSeconds := at.In(loc).Zone()
	offsetMinutes := offsetSeconds / 60

	sign := "-"
	if offsetMinutes <= 0 {
		sign = "+"
		offsetMinutes = -offsetMinutes
	}

	return fmt.Sprintf("%s%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}

// FormatInTimezone renders t in the given zone using layout, falling back
// to UTC for unknown zones.
func FormatInTimezone(t time.Time, timezone, layout string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format(layout)
}

// MinutesOfDay parses an "HH:MM" string into minutes since midnight.
func MinutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse(timeLayout, hhmm)
	if err != nil {
		return 0, fmt.Errorf("failed to parse time %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func unconverted(slot TimeSlot) ConvertedTimeSlot {
	return ConvertedTimeSlot{
		Date:         slot.Date,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		OriginalDate: slot.Date,
	}
}
