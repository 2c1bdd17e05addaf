package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestDateOf(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		expected time.Time
	}{
		{
			name:     "Mediodía en Bogotá se normaliza a medianoche",
			instant:  time.Date(2025, 3, 10, 12, 30, 45, 0, Bogota()),
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, Bogota()),
		},
		{
			name: "Madrugada UTC sigue siendo el día anterior en Bogotá",
			// 03:00 UTC del 11 de marzo son las 22:00 del 10 en Bogotá
			instant:  time.Date(2025, 3, 11, 3, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, Bogota()),
		},
		{
			name:     "Una fecha ya normalizada queda igual",
			instant:  time.Date(2025, 3, 10, 0, 0, 0, 0, Bogota()),
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, Bogota()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, DateOf(tt.instant).Equal(tt.expected))
		})
	}
}

func TestToday(t *testing.T) {
	// 23:50 en Bogotá siguen siendo el 10 de marzo aunque en UTC ya sea el 11
	clock := fixedClock{now: time.Date(2025, 3, 11, 4, 50, 0, 0, time.UTC)}

	today := Today(clock)

	assert.True(t, today.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, Bogota())))
	assert.Equal(t, 0, today.Hour())
}

func TestNowBogota(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, 3, 11, 4, 50, 0, 0, time.UTC)}

	now := NowBogota(clock)

	assert.Equal(t, 23, now.Hour())
	assert.Equal(t, 50, now.Minute())
	assert.Equal(t, 10, now.Day())

	_, offset := now.Zone()
	assert.Equal(t, -5*60*60, offset)
}

func TestDayRange(t *testing.T) {
	date := time.Date(2025, 3, 10, 15, 0, 0, 0, Bogota())

	from, to := DayRange(date)

	assert.True(t, from.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, Bogota())))
	assert.True(t, to.Before(time.Date(2025, 3, 11, 0, 0, 0, 0, Bogota())))
	assert.Equal(t, 24*time.Hour-time.Nanosecond, to.Sub(from))

	// Un instante de las 23:59:59 del día cae dentro del rango
	lastMoment := time.Date(2025, 3, 10, 23, 59, 59, 0, Bogota())
	assert.False(t, lastMoment.Before(from))
	assert.False(t, lastMoment.After(to))
}
