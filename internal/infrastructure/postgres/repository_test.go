package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/callcrm-api/internal/domain"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
	"github.com/jhoicas/callcrm-api/internal/infrastructure/postgres"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestEmployeeRepo_GetByEmail_NoExiste(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewEmployeeRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM employees WHERE email = \$1`).
		WithArgs("nadie@example.com").
		WillReturnError(pgx.ErrNoRows)

	e, err := repo.GetByEmail("nadie@example.com")
	require.NoError(t, err, "sin filas no es un error, es (nil, nil)")
	assert.Nil(t, e)
}

func TestEmployeeRepo_Create_EmailDuplicado(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewEmployeeRepository(mock)

	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs("Ana", "3001112233", "ana@example.com", "hash", "Agent", "Active",
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	now := time.Now()
	_, err := repo.Create(&entity.Employee{
		Name: "Ana", Mobile: "3001112233", Email: "ana@example.com",
		PasswordHash: "hash", Role: "Agent", Status: "Active",
		CreatedAt: now, UpdatedAt: now,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerRepo_Create_DevuelveID(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewCustomerRepository(mock)

	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs("Cliente Uno", "5550001", "", "", "", "", (*time.Time)(nil), "", "",
			"", "", "Active", "", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"customer_id"}).AddRow(int64(7)))

	now := time.Now()
	id, err := repo.Create(&entity.Customer{
		Name: "Cliente Uno", Phone: "5550001", Status: "Active",
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestCallLogRepo_Count_FiltroPorEmpleado(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewCallLogRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM call_logs cl WHERE cl\.employee_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	n, err := repo.Count(repository.CallLogFilter{EmployeeID: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestCallLogRepo_Delete_FilasAfectadas(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewCallLogRepository(mock)

	mock.ExpectExec(`DELETE FROM call_logs WHERE call_id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	affected, err := repo.Delete(9)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected, "el llamador convierte 0 filas en not found")
}

func TestCallLogRepo_ListFollowups_RangoSemiabierto(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewCallLogRepository(mock)

	from := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	cols := []string{
		"call_id", "customer_id", "employee_id", "call_datetime", "call_type",
		"call_purpose", "call_status", "priority", "call_duration", "notes",
		"next_followup_date", "created_at", "updated_at",
		"customer_name", "phone", "name",
	}
	mock.ExpectQuery(`next_followup_date >= \$2 AND cl\.next_followup_date < \$3`).
		WithArgs(int64(2), from, to).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(
			int64(1), int64(1), int64(2), from, "Outgoing",
			"KYC Update", "Connected", "Manageable", (*int)(nil), "notas del registro",
			&from, from, from,
			"Cliente Uno", "5550001", "Agente Dos",
		))

	list, err := repo.ListFollowups(2, repository.FollowupRange{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cliente Uno", list[0].CustomerName)
	assert.Equal(t, entity.CallPurpose("KYC Update"), list[0].CallPurpose)
}

func TestReportRepo_PerformanceCounts(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewReportRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\),`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"total", "connected", "not_answered", "missed"}).
			AddRow(int64(10), int64(7), int64(2), int64(1)))

	pc, err := repo.PerformanceCounts(context.Background(), 2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, repository.PerformanceCounts{Total: 10, Connected: 7, NotAnswered: 2, Missed: 1}, pc)
}
