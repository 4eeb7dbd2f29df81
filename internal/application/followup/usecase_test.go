package followup_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/callcrm-api/internal/application/followup"
)

var today = time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC) // miércoles

func TestFor_CadaFechaCaeEnUnSoloCubo(t *testing.T) {
	cases := []struct {
		name   string
		offset int // días respecto a hoy
		want   followup.Bucket
	}{
		{"ayer es vencido", -1, followup.BucketOverdue},
		{"hace un mes es vencido", -30, followup.BucketOverdue},
		{"hoy", 0, followup.BucketToday},
		{"mañana", 1, followup.BucketTomorrow},
		{"pasado mañana entra en la semana", 2, followup.BucketThisWeek},
		{"hoy+7 todavía es esta semana", 7, followup.BucketThisWeek},
		{"hoy+8 ya no entra", 8, followup.BucketNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := today.AddDate(0, 0, tc.offset)
			assert.Equal(t, tc.want, followup.For(next, today))
		})
	}
}

// La clasificación usa fechas truncadas, no el instante: un seguimiento
// de hoy a las 23:59 sigue siendo "hoy" aunque ya pasó la hora actual.
func TestFor_IgnoraLaHora(t *testing.T) {
	lateToday := time.Date(2026, 8, 26, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, followup.BucketToday, followup.For(lateToday, today))

	earlyTomorrow := time.Date(2026, 8, 27, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, followup.BucketTomorrow, followup.For(earlyTomorrow, today))
}

func TestRange_RangosSemiabiertosContiguos(t *testing.T) {
	d0 := followup.Day(today)

	overdue := followup.Range(followup.BucketOverdue, today)
	require.Nil(t, overdue.From, "vencido no tiene extremo inferior")
	require.NotNil(t, overdue.To)
	assert.Equal(t, d0, *overdue.To)

	todayRange := followup.Range(followup.BucketToday, today)
	assert.Equal(t, d0, *todayRange.From)
	assert.Equal(t, d0.AddDate(0, 0, 1), *todayRange.To)

	tomorrow := followup.Range(followup.BucketTomorrow, today)
	assert.Equal(t, d0.AddDate(0, 0, 1), *tomorrow.From)
	assert.Equal(t, d0.AddDate(0, 0, 2), *tomorrow.To)

	week := followup.Range(followup.BucketThisWeek, today)
	assert.Equal(t, d0.AddDate(0, 0, 2), *week.From)
	assert.Equal(t, d0.AddDate(0, 0, 8), *week.To)

	// Los rangos son contiguos: el To de un cubo es el From del siguiente,
	// así ninguna fecha queda en dos cubos ni fuera de todos.
	assert.Equal(t, *overdue.To, *todayRange.From)
	assert.Equal(t, *todayRange.To, *tomorrow.From)
	assert.Equal(t, *tomorrow.To, *week.From)
}

func TestDay_TruncaAHoraCero(t *testing.T) {
	d := followup.Day(time.Date(2026, 8, 26, 18, 45, 12, 99, time.UTC))
	assert.Equal(t, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), d)
}
