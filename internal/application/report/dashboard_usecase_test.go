package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

func TestDashboardRange_Resolve(t *testing.T) {
	now := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

	t.Run("vacio es el dia de hoy", func(t *testing.T) {
		from, to := DashboardRange{}.resolve(now)
		assert.Equal(t, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("date fija otro dia", func(t *testing.T) {
		d := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		from, to := DashboardRange{Date: &d}.resolve(now)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("rango explicito incluye el dia final completo", func(t *testing.T) {
		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
		from, to := DashboardRange{StartDate: &start, EndDate: &end}.resolve(now)
		assert.Equal(t, start, from)
		// Semiabierto: [1, 16) cubre el día 15 entero.
		assert.Equal(t, end.AddDate(0, 0, 1), to)
	})
}

func TestPivotMatrix(t *testing.T) {
	cells := []repository.EmployeeBucketCount{
		{EmployeeID: 1, EmployeeName: "Ana", EmployeeStatus: entity.EmployeeActive, Bucket: "Emergency", Count: 2},
		{EmployeeID: 1, EmployeeName: "Ana", EmployeeStatus: entity.EmployeeActive, Bucket: "Important", Count: 1},
		{EmployeeID: 2, EmployeeName: "Beto", EmployeeStatus: entity.EmployeeActive, Bucket: "Emergency", Count: 5},
		// Sin llamadas en el rango (LEFT JOIN): activo se conserva, inactivo no.
		{EmployeeID: 3, EmployeeName: "Caro", EmployeeStatus: entity.EmployeeActive, Bucket: "", Count: 0},
		{EmployeeID: 4, EmployeeName: "Dani", EmployeeStatus: entity.EmployeeInactive, Bucket: "", Count: 0},
	}

	rows := pivotMatrix(cells)
	require.Len(t, rows, 3)

	// Ordenadas por total descendente.
	assert.Equal(t, "Beto", rows[0].EmployeeName)
	assert.Equal(t, 5, rows[0].Total)
	assert.Equal(t, "Ana", rows[1].EmployeeName)
	assert.Equal(t, 3, rows[1].Total)
	assert.Equal(t, map[string]int{"Emergency": 2, "Important": 1}, rows[1].Counts)

	// Caro queda con fila vacía; Dani (inactiva y sin llamadas) desaparece.
	assert.Equal(t, "Caro", rows[2].EmployeeName)
	assert.Equal(t, 0, rows[2].Total)
}
