package report

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/application/followup"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/policy"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

const recentCallsLimit = 10 // llamadas recientes en el dashboard de empleado

// DashboardRange día o rango de fechas a consultar; vacío = hoy.
type DashboardRange struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
}

// resolve devuelve el rango semiabierto [from, to) efectivo.
func (r DashboardRange) resolve(now time.Time) (time.Time, time.Time) {
	if r.StartDate != nil && r.EndDate != nil {
		return followup.Day(*r.StartDate), followup.Day(*r.EndDate).AddDate(0, 0, 1)
	}
	target := now
	if r.Date != nil {
		target = *r.Date
	}
	start := followup.Day(target)
	return start, start.AddDate(0, 0, 1)
}

// DashboardUseCase vistas agregadas para administración y para el
// empleado autenticado.
//
// Fuente de datos: ReportRepository y CallLogRepository (solo lectura).
type DashboardUseCase struct {
	reports repository.ReportRepository
	logs    repository.CallLogRepository
	now     func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reports repository.ReportRepository, logs repository.CallLogRepository) *DashboardUseCase {
	return &DashboardUseCase{reports: reports, logs: logs, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// Admin construye la vista de administración para el día o rango.
//
// Tres consultas de resumen en paralelo (total, clientes únicos,
// seguimientos pendientes) más las dos matrices empleado × categoría.
func (uc *DashboardUseCase) Admin(ctx context.Context, r DashboardRange) (*dto.AdminDashboardDTO, error) {
	now := uc.now()
	from, to := r.resolve(now)
	today := followup.Day(now)

	type countResult struct {
		n   int
		err error
	}
	totalCh := make(chan countResult, 1)
	uniqueCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)

	go func() {
		n, err := uc.reports.CountCalls(ctx, 0, &from, &to)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reports.CountUniqueCustomers(ctx, from, to)
		uniqueCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.logs.CountFollowupsFrom(0, today)
		pendingCh <- countResult{n, err}
	}()

	total := <-totalCh
	unique := <-uniqueCh
	pending := <-pendingCh
	for _, r := range []countResult{total, unique, pending} {
		if r.err != nil {
			return nil, r.err
		}
	}

	priorityCells, err := uc.reports.EmployeePriorityMatrix(ctx, from, to)
	if err != nil {
		return nil, err
	}
	purposeCells, err := uc.reports.EmployeePurposeMatrix(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboardDTO{
		Summary: dto.AdminDashboardSummaryDTO{
			TotalCalls:          total.n,
			UniqueCustomerCalls: unique.n,
			PendingFollowups:    pending.n,
		},
		EmployeePriorityStats: pivotMatrix(priorityCells),
		EmployeePurposeStats:  pivotMatrix(purposeCells),
	}, nil
}

// pivotMatrix agrupa las celdas por empleado y las ordena por total
// descendente. Los empleados sin llamadas se conservan solo si siguen
// activos (celdas con Bucket vacío del LEFT JOIN).
func pivotMatrix(cells []repository.EmployeeBucketCount) []dto.EmployeeMatrixRowDTO {
	type rowAcc struct {
		row    dto.EmployeeMatrixRowDTO
		status string
	}
	byEmployee := make(map[int64]*rowAcc)
	order := make([]int64, 0)

	for _, c := range cells {
		acc, ok := byEmployee[c.EmployeeID]
		if !ok {
			acc = &rowAcc{
				row: dto.EmployeeMatrixRowDTO{
					EmployeeID:   c.EmployeeID,
					EmployeeName: c.EmployeeName,
					Counts:       make(map[string]int),
				},
				status: c.EmployeeStatus,
			}
			byEmployee[c.EmployeeID] = acc
			order = append(order, c.EmployeeID)
		}
		if c.Bucket != "" {
			acc.row.Counts[c.Bucket] += c.Count
			acc.row.Total += c.Count
		}
	}

	out := make([]dto.EmployeeMatrixRowDTO, 0, len(order))
	for _, id := range order {
		acc := byEmployee[id]
		if acc.row.Total == 0 && acc.status != entity.EmployeeActive {
			continue
		}
		out = append(out, acc.row)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// Employee construye la vista propia del actor: contadores del día,
// semana y mes, seguimientos pendientes, llamadas recientes y el
// desglose de motivos del mes.
func (uc *DashboardUseCase) Employee(ctx context.Context, actor policy.Actor) (*dto.EmployeeDashboardDTO, error) {
	now := uc.now()
	today := followup.Day(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekAgo := now.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	callsToday, err := uc.reports.CountCalls(ctx, actor.ID, &today, &tomorrow)
	if err != nil {
		return nil, err
	}
	callsThisWeek, err := uc.reports.CountCalls(ctx, actor.ID, &weekAgo, nil)
	if err != nil {
		return nil, err
	}
	callsThisMonth, err := uc.reports.CountCalls(ctx, actor.ID, &monthStart, nil)
	if err != nil {
		return nil, err
	}
	pending, err := uc.logs.CountFollowupsFrom(actor.ID, today)
	if err != nil {
		return nil, err
	}
	recent, err := uc.logs.ListRecent(actor.ID, recentCallsLimit)
	if err != nil {
		return nil, err
	}
	todayFollowups, err := uc.logs.ListFollowups(actor.ID, followup.Range(followup.BucketToday, now))
	if err != nil {
		return nil, err
	}
	monthPurposes, err := uc.reports.PurposeCounts(ctx, actor.ID, &monthStart, nil)
	if err != nil {
		return nil, err
	}

	performance := make([]dto.PurposeCountDTO, 0, len(monthPurposes))
	for _, p := range monthPurposes {
		performance = append(performance, dto.PurposeCountDTO{Purpose: p.Label, Count: p.Count})
	}

	return &dto.EmployeeDashboardDTO{
		Summary: dto.EmployeeDashboardSummaryDTO{
			CallsToday:       callsToday,
			CallsThisWeek:    callsThisWeek,
			CallsThisMonth:   callsThisMonth,
			PendingFollowups: pending,
		},
		RecentCalls:          dto.NewCallLogResponses(recent),
		TodayFollowups:       dto.NewCallLogResponses(todayFollowups),
		PerformanceThisMonth: performance,
	}, nil
}
