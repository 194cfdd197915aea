package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/internal/pkg/apperr"
)

func TestResolveDateRange_Named(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// 2026-03-10 01:30 UTC is still 2026-03-09 in New York
	now := time.Date(2026, 3, 10, 1, 30, 0, 0, time.UTC)

	cases := []struct {
		named    string
		from, to time.Time
	}{
		{"today", time.Date(2026, 3, 9, 0, 0, 0, 0, loc), time.Date(2026, 3, 9, 23, 59, 59, 999999999, loc)},
		{"tomorrow", time.Date(2026, 3, 10, 0, 0, 0, 0, loc), time.Date(2026, 3, 10, 23, 59, 59, 999999999, loc)},
		{"week", time.Date(2026, 3, 9, 0, 0, 0, 0, loc), time.Date(2026, 3, 15, 23, 59, 59, 999999999, loc)},
		{"month", time.Date(2026, 3, 9, 0, 0, 0, 0, loc), time.Date(2026, 4, 8, 23, 59, 59, 999999999, loc)},
	}
	for _, tc := range cases {
		t.Run(tc.named, func(t *testing.T) {
			r, err := resolveDateRange(tc.named, "", "", now, loc)
			require.NoError(t, err)
			require.NotNil(t, r.From)
			require.NotNil(t, r.To)
			assert.True(t, tc.from.Equal(*r.From), "from %s", r.From)
			assert.True(t, tc.to.Equal(*r.To), "to %s", r.To)
			assert.Equal(t, time.UTC, r.From.Location())
		})
	}
}

func TestResolveDateRange_NamedWinsOverExplicit(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r, err := resolveDateRange("today", "2020-01-01", "2020-01-02", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 2026, r.From.Year())
}

func TestResolveDateRange_Explicit(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	r, err := resolveDateRange("", "2026-03-01", "2026-03-02", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *r.From)
	assert.Equal(t, time.Date(2026, 3, 2, 23, 59, 59, 999999999, time.UTC), *r.To)

	r, err = resolveDateRange("", "2026-03-01T10:00:00+02:00", "", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), *r.From)
	assert.Nil(t, r.To)

	r, err = resolveDateRange("all", "", "", now, time.UTC)
	require.NoError(t, err)
	assert.Nil(t, r.From)
	assert.Nil(t, r.To)
}

func TestResolveDateRange_Invalid(t *testing.T) {
	now := time.Now()

	_, err := resolveDateRange("fortnight", "", "", now, time.UTC)
	assert.EqualError(t, err, msgInvalidRange)

	_, err = resolveDateRange("", "yesterday", "", now, time.UTC)
	assert.EqualError(t, err, msgInvalidStart)

	_, err = resolveDateRange("", "", "03/01/2026", now, time.UTC)
	assert.EqualError(t, err, msgInvalidEnd)
	assert.True(t, apperr.IsValidation(err))
}

func TestParseAppointmentDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	got, err := parseAppointmentDate("2026-03-10T14:00:00.000Z", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC), got)

	// no offset: wall clock in the salon's zone (UTC+1 in March)
	got, err = parseAppointmentDate("2026-03-10T14:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC), got)

	_, err = parseAppointmentDate("next tuesday", loc)
	assert.EqualError(t, err, msgInvalidDate)
}

func TestPagination(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 10},
		{-3, 5, 1, 5},
		{2, 500, 2, 100},
		{4, 25, 4, 25},
	}
	for _, tc := range cases {
		p, l := normalizePage(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, p)
		assert.Equal(t, tc.wantLimit, l)
	}

	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(15, 10))
	assert.Equal(t, 3, totalPages(21, 10))
}
