// Package report contiene los casos de uso de reportes agregados sobre
// el corpus de llamadas y clientes: desempeño, motivos, tendencias,
// perdidas, seguimientos y engagement. Todo es de solo lectura.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/application/followup"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

const topContactedLimit = 20 // clientes en el widget de engagement

// Config umbrales de política para reportes.
type Config struct {
	UnaddressedAfter time.Duration // llamada perdida sin atender
	InactiveAfter    time.Duration // cliente sin contacto
}

// UseCase reportes agregados.
type UseCase struct {
	reports   repository.ReportRepository
	followups *followup.UseCase
	cfg       Config
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(reports repository.ReportRepository, followups *followup.UseCase, cfg Config) *UseCase {
	if cfg.UnaddressedAfter <= 0 {
		cfg.UnaddressedAfter = 48 * time.Hour
	}
	if cfg.InactiveAfter <= 0 {
		cfg.InactiveAfter = 30 * 24 * time.Hour
	}
	return &UseCase{reports: reports, followups: followups, cfg: cfg, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Percentage parte/total*100 con 2 decimales; cero si el total es cero,
// nunca error ni NaN.
func Percentage(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}

// EmployeePerformance desempeño por empleado (o global con employeeID 0)
// en un rango opcional.
func (uc *UseCase) EmployeePerformance(ctx context.Context, employeeID int64, from, to *time.Time) (*dto.EmployeePerformanceDTO, error) {
	counts, err := uc.reports.PerformanceCounts(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	byPurpose, err := uc.reports.PurposeCounts(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeePerformanceDTO{
		TotalCalls:          counts.Total,
		ConnectedCalls:      counts.Connected,
		NotAnsweredCalls:    counts.NotAnswered,
		MissedCalls:         counts.Missed,
		ByPurpose:           labelMap(byPurpose),
		ConnectedPercentage: Percentage(counts.Connected, counts.Total),
		MissedPercentage:    Percentage(counts.Missed, counts.Total),
	}, nil
}

// EmployeeBreakdown desglose completo de un empleado concreto por tipo,
// prioridad y motivo. La tasa de conexión cuenta Incoming + Outgoing
// limpias sobre el total.
func (uc *UseCase) EmployeeBreakdown(ctx context.Context, employeeID int64, from, to *time.Time) (*dto.EmployeeBreakdownDTO, error) {
	byType, err := uc.reports.TypeCounts(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	byPriority, err := uc.reports.PriorityCounts(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	byPurpose, err := uc.reports.PurposeCounts(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	types := labelMap(byType)
	total := 0
	for _, n := range types {
		total += n
	}
	connected := types[string(entity.CallIncoming)] + types[string(entity.CallOutgoing)]

	return &dto.EmployeeBreakdownDTO{
		TotalCalls:          total,
		ByType:              types,
		ByPriority:          labelMap(byPriority),
		ByPurpose:           labelMap(byPurpose),
		ConnectedPercentage: Percentage(connected, total),
	}, nil
}

// PurposeSummary conteo y porcentaje por motivo en un rango opcional.
// Un rango sin llamadas devuelve lista vacía.
func (uc *UseCase) PurposeSummary(ctx context.Context, from, to *time.Time) ([]dto.PurposeSummaryItemDTO, error) {
	counts, err := uc.reports.PurposeCounts(ctx, 0, from, to)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	out := make([]dto.PurposeSummaryItemDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.PurposeSummaryItemDTO{
			Purpose:    c.Label,
			Count:      c.Count,
			Percentage: Percentage(c.Count, total),
		})
	}
	return out, nil
}

// TrendKey devuelve la clave de agrupación de un instante para el
// período pedido: fecha para daily, lunes de esa semana para weekly
// (el domingo cierra la semana anterior) y año-mes para monthly.
func TrendKey(t time.Time, period string) string {
	switch period {
	case "monthly":
		return t.Format("2006-01")
	case "weekly":
		offset := (int(t.Weekday()) + 6) % 7 // lunes = 0 ... domingo = 6
		return t.AddDate(0, 0, -offset).Format("2006-01-02")
	default: // daily
		return t.Format("2006-01-02")
	}
}

// CallTrends serie de llamadas agrupada por día/semana/mes. La
// agrupación corre en Go sobre las fechas del rango (las funciones de
// fecha SQL no son portables entre dialectos); instantes cero se
// descartan y la salida va ordenada por clave ascendente.
func (uc *UseCase) CallTrends(ctx context.Context, period string, from, to *time.Time) ([]dto.TrendPointDTO, error) {
	datetimes, err := uc.reports.CallDatetimes(ctx, from, to)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string]int)
	for _, t := range datetimes {
		if t.IsZero() {
			continue
		}
		grouped[TrendKey(t, period)]++
	}
	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]dto.TrendPointDTO, 0, len(keys))
	for _, k := range keys {
		out = append(out, dto.TrendPointDTO{Period: k, Count: grouped[k]})
	}
	return out, nil
}

// MissedCalls llamadas perdidas del rango más el subconjunto sin
// atender: aquellas con más horas desde la llamada que el umbral.
func (uc *UseCase) MissedCalls(ctx context.Context, from, to *time.Time) (*dto.MissedCallsDTO, error) {
	missed, err := uc.reports.MissedCalls(ctx, from, to)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	unaddressed := make([]*entity.CallLogDetail, 0)
	for _, m := range missed {
		if now.Sub(m.CallDatetime) > uc.cfg.UnaddressedAfter {
			unaddressed = append(unaddressed, m)
		}
	}
	return &dto.MissedCallsDTO{
		MissedCalls: dto.NewCallLogResponses(missed),
		Unaddressed: dto.NewCallLogResponses(unaddressed),
	}, nil
}

// PendingFollowups los cuatro cubos sin scoping por actor (vista de
// administración).
func (uc *UseCase) PendingFollowups() (*dto.FollowupBucketsDTO, error) {
	return uc.followups.AllBuckets()
}

// CustomerEngagement métricas de frecuencia/recencia: top contactados
// del mes calendario en curso, clientes activos sin contacto reciente,
// distribución por estado y promedio de llamadas por cliente.
func (uc *UseCase) CustomerEngagement(ctx context.Context) (*dto.CustomerEngagementDTO, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	top, err := uc.reports.TopContactedCustomers(ctx, monthStart, monthEnd, topContactedLimit)
	if err != nil {
		return nil, err
	}
	inactive, err := uc.reports.InactiveCustomers(ctx, now.Add(-uc.cfg.InactiveAfter))
	if err != nil {
		return nil, err
	}
	distribution, err := uc.reports.CustomerStatusDistribution(ctx)
	if err != nil {
		return nil, err
	}
	avg, err := uc.reports.AvgCallsPerCustomer(ctx)
	if err != nil {
		return nil, err
	}

	topOut := make([]dto.TopContactedDTO, 0, len(top))
	for _, t := range top {
		topOut = append(topOut, dto.TopContactedDTO{
			CustomerID:   t.CustomerID,
			CustomerName: t.CustomerName,
			Phone:        t.Phone,
			Portfolio:    t.Portfolio,
			CallCount:    t.Count,
		})
	}
	inactiveOut := make([]dto.CustomerResponse, 0, len(inactive))
	for _, c := range inactive {
		inactiveOut = append(inactiveOut, dto.NewCustomerResponse(c))
	}

	return &dto.CustomerEngagementDTO{
		TopContacted:        topOut,
		InactiveCustomers:   inactiveOut,
		StatusDistribution:  labelMap(distribution),
		AvgCallsPerCustomer: avg.Round(2),
	}, nil
}

func labelMap(list []repository.LabelCount) map[string]int {
	out := make(map[string]int, len(list))
	for _, lc := range list {
		out[lc.Label] = lc.Count
	}
	return out
}
