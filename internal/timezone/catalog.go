package timezone

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TimezoneOption is a catalog entry shaped for selector UIs.
type TimezoneOption struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Offset string `json:"offset"`
	Region string `json:"region"`
}

// catalogZones is the curated zone list offered to clients. Go has no
// runtime enumeration of the IANA database, so the catalog mirrors the
// zones the web client offered.
var catalogZones = []string{
	"UTC",
	"America/Anchorage",
	"America/Argentina/Buenos_Aires",
	"America/Bogota",
	"America/Chicago",
	"America/Denver",
	"America/Halifax",
	"America/Los_Angeles",
	"America/Mexico_City",
	"America/New_York",
	"America/Phoenix",
	"America/Sao_Paulo",
	"America/Toronto",
	"America/Vancouver",
	"Africa/Cairo",
	"Africa/Johannesburg",
	"Africa/Lagos",
	"Africa/Nairobi",
	"Asia/Bangkok",
	"Asia/Dhaka",
	"Asia/Dubai",
	"Asia/Hong_Kong",
	"Asia/Jakarta",
	"Asia/Jerusalem",
	"Asia/Karachi",
	"Asia/Kolkata",
	"Asia/Kuala_Lumpur",
	"Asia/Manila",
	"Asia/Riyadh",
	"Asia/Seoul",
	"Asia/Shanghai",
	"Asia/Singapore",
	"Asia/Tokyo",
	"Atlantic/Azores",
	"Atlantic/South_Georgia",
	"Australia/Adelaide",
	"Australia/Brisbane",
	"Australia/Melbourne",
	"Australia/Perth",
	"Australia/Sydney",
	"Europe/Amsterdam",
	"Europe/Athens",
	"Europe/Berlin",
	"Europe/Dublin",
	"Europe/Helsinki",
	"Europe/Istanbul",
	"Europe/Lisbon",
	"Europe/London",
	"Europe/Madrid",
	"Europe/Moscow",
	"Europe/Oslo",
	"Europe/Paris",
	"Europe/Prague",
	"Europe/Rome",
	"Europe/Stockholm",
	"Europe/Vienna",
	"Europe/Warsaw",
	"Europe/Zurich",
	"Pacific/Auckland",
	"Pacific/Fiji",
	"Pacific/Honolulu",
	"Pacific/Kwajalein",
	"Pacific/Midway",
	"Pacific/Norfolk",
}

var commonZones = []string{
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Toronto",
	"America/Vancouver",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Rome",
	"Europe/Madrid",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Asia/Kolkata",
	"Asia/Dubai",
	"Australia/Sydney",
	"Australia/Melbourne",
	"Pacific/Auckland",
	"UTC",
}

var titleCaser = cases.Title(language.English)

// AllTimezones returns the full catalog with current offsets, sorted by
// offset then label.
func AllTimezones() []TimezoneOption {
	return AllTimezonesAt(time.Now())
}

// AllTimezonesAt is AllTimezones pinned to an instant, since a zone's
// offset depends on DST.
func AllTimezonesAt(at time.Time) []TimezoneOption {
	options := make([]TimezoneOption, 0, len(catalogZones))
	for _, zone := range catalogZones {
		options = append(options, buildOption(zone, at))
	}

	sort.Slice(options, func(i, j int) bool {
		if options[i].Offset != options[j].Offset {
			return options[i].Offset < options[j].Offset
		}
		return options[i].Label < options[j].Label
	})

	return options
}

// CommonTimezones returns a short list of frequently used zones in a
// fixed, familiar order.
func CommonTimezones() []TimezoneOption {
	now := time.Now()
	options := make([]TimezoneOption, 0, len(commonZones))
	for _, zone := range commonZones {
		options = append(options, buildOption(zone, now))
	}
	return options
}

// SearchTimezones matches query against zone values, labels and regions.
// An empty query returns the common list.
func SearchTimezones(query string, limit int) []TimezoneOption {
	if limit <= 0 {
		limit = 10
	}

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		common := CommonTimezones()
		if len(common) > limit {
			common = common[:limit]
		}
		return common
	}

	matches := make([]TimezoneOption, 0, limit)
	for _, option := range AllTimezones() {
		if strings.Contains(strings.ToLower(option.Label), query) ||
			strings.Contains(strings.ToLower(option.Value), query) ||
			strings.Contains(strings.ToLower(option.Region), query) {
			matches = append(matches, option)
			if len(matches) == limit {
				break
			}
		}
	}

	return matches
}

func buildOption(zone string, at time.Time) TimezoneOption {
	offset := GetTimezoneOffsetString(zone, at)

	parts := strings.Split(zone, "/")
	region := parts[0]
	city := titleCaser.String(strings.ReplaceAll(parts[len(parts)-1], "_", " "))

	label := city
	if len(parts) > 2 {
		label = titleCaser.String(strings.ReplaceAll(parts[1], "_", " ")) + " - " + city
	}

	return TimezoneOption{
		Value:  zone,
		Label:  label + " (" + offset + ")",
		Offset: offset,
		Region: region,
	}
}
