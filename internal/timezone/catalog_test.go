package timezone

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllTimezonesAt_SortedAndLabelled(t *testing.T) {
	at := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	options := AllTimezonesAt(at)

	assert.Len(t, options, len(catalogZones))
	assert.True(t, sort.SliceIsSorted(options, func(i, j int) bool {
		if options[i].Offset != options[j].Offset {
			return options[i].Offset < options[j].Offset
		}
		return options[i].Label < options[j].Label
	}))

	var newYork *TimezoneOption
	for i := range options {
		if options[i].Value == "America/New_York" {
			newYork = &options[i]
		}
	}
	assert.NotNil(t, newYork)
	assert.Equal(t, "New York (+05:00)", newYork.Label)
	assert.Equal(t, "+05:00", newYork.Offset)
	assert.Equal(t, "America", newYork.Region)
}

func TestAllTimezonesAt_NestedZoneLabel(t *testing.T) {
	at := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	for _, option := range AllTimezonesAt(at) {
		if option.Value == "America/Argentina/Buenos_Aires" {
			assert.Equal(t, "Argentina - Buenos Aires (+03:00)", option.Label)
			return
		}
	}
	t.Fatal("Buenos Aires missing from catalog")
}

func TestCommonTimezones_FixedOrder(t *testing.T) {
	options := CommonTimezones()

	assert.Len(t, options, len(commonZones))
	assert.Equal(t, "America/New_York", options[0].Value)
	assert.Equal(t, "UTC", options[len(options)-1].Value)
}

func TestSearchTimezones_EmptyQueryReturnsCommon(t *testing.T) {
	options := SearchTimezones("", 5)

	assert.Len(t, options, 5)
	assert.Equal(t, "America/New_York", options[0].Value)
}

func TestSearchTimezones_MatchesByCity(t *testing.T) {
	options := SearchTimezones("tokyo", 10)

	assert.Len(t, options, 1)
	assert.Equal(t, "Asia/Tokyo", options[0].Value)
}

func TestSearchTimezones_MatchesByRegion(t *testing.T) {
	options := SearchTimezones("australia", 10)

	assert.NotEmpty(t, options)
	for _, option := range options {
		assert.Equal(t, "Australia", option.Region)
	}
}

func TestSearchTimezones_RespectsLimit(t *testing.T) {
	options := SearchTimezones("america", 3)
	assert.Len(t, options, 3)
}

func TestSearchTimezones_NoMatches(t *testing.T) {
	assert.Empty(t, SearchTimezones("atlantis", 10))
}
