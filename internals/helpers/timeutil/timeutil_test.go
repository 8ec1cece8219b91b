package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"jan 31 plus 6 lands on jul 31", date(2025, time.January, 31), 6, date(2025, time.July, 31)},
		{"aug 31 plus 1 clamps to sep 30", date(2025, time.August, 31), 1, date(2025, time.September, 30)},
		{"jan 31 plus 1 clamps to feb 28", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"jan 31 plus 1 on leap year clamps to feb 29", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"mid month unaffected", date(2025, time.March, 15), 3, date(2025, time.June, 15)},
		{"crosses year boundary", date(2025, time.November, 30), 3, date(2026, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.in, tt.n))
		})
	}
}

func TestAddMonthsKeepsClock(t *testing.T) {
	in := time.Date(2025, time.January, 31, 9, 30, 15, 0, time.UTC)
	got := AddMonths(in, 6)
	assert.Equal(t, time.Date(2025, time.July, 31, 9, 30, 15, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	today := time.Date(2025, time.May, 10, 14, 45, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(today, time.Date(2025, time.May, 10, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, DaysBetween(today, time.Date(2025, time.May, 11, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysBetween(today, time.Date(2025, time.May, 9, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, -3, DaysBetween(today, date(2025, time.May, 7)))
	assert.Equal(t, 5, DaysBetween(today, date(2025, time.May, 15)))
}

func TestDaysBetweenAcrossDSTTransition(t *testing.T) {
	// America/New_York loncat ke DST 2025-03-09: hari itu cuma 23 jam,
	// selisih hari kalender harus tetap utuh
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata America/New_York tidak tersedia")
	}

	today := time.Date(2025, time.March, 9, 8, 0, 0, 0, loc)
	tomorrow := time.Date(2025, time.March, 10, 8, 0, 0, 0, loc)
	dayAfter := time.Date(2025, time.March, 11, 8, 0, 0, 0, loc)

	assert.Equal(t, 1, DaysBetween(today, tomorrow))
	assert.Equal(t, 2, DaysBetween(today, dayAfter))
	assert.Equal(t, -1, DaysBetween(tomorrow, today))

	// arah sebaliknya: fall-back 2025-11-02 (hari 25 jam)
	fbToday := time.Date(2025, time.November, 2, 8, 0, 0, 0, loc)
	fbTomorrow := time.Date(2025, time.November, 3, 8, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysBetween(fbToday, fbTomorrow))
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, time.May, 10, 23, 59, 59, 123, time.UTC)
	assert.Equal(t, date(2025, time.May, 10), StartOfDay(in))
}
