// Package calllog implementa el ciclo de vida del registro de llamadas:
// alta con efecto sobre el último contacto del cliente, lectura y edición
// gobernadas por la política de acceso, borrado solo-Admin y listados
// paginados con scoping por rol.
package calllog

import (
	"context"
	"time"

	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/domain"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/policy"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

const myLogsLimit = 50 // registros recientes en /my-logs

// UseCase ciclo de vida de CallLog.
type UseCase struct {
	logs      repository.CallLogRepository
	customers repository.CustomerRepository
	reports   repository.ReportRepository
	pol       policy.Policy
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	logs repository.CallLogRepository,
	customers repository.CustomerRepository,
	reports repository.ReportRepository,
	pol policy.Policy,
) *UseCase {
	return &UseCase{logs: logs, customers: customers, reports: reports, pol: pol, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Create valida que el cliente exista, aplica defaults y persiste el
// registro con el actor como dueño. Como efecto lateral marca
// last_contact_date del cliente; el insert y esa actualización son dos
// sentencias sin transacción: un fallo intermedio deja el last_contact
// sin actualizar y se acepta como consistencia eventual.
func (uc *UseCase) Create(actor policy.Actor, in dto.CreateCallLogRequest) (*dto.CallLogResponse, error) {
	if !in.Valid() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	callAt := now
	if in.CallDatetime != nil {
		callAt = *in.CallDatetime
	}
	callStatus := entity.CallStatus(in.CallStatus)
	if callStatus == "" {
		callStatus = entity.StatusConnected
	}
	priority := entity.Priority(in.Priority)
	if priority == "" {
		priority = entity.PriorityManageable
	}

	log := &entity.CallLog{
		CustomerID:   in.CustomerID,
		EmployeeID:   actor.ID,
		CallDatetime: callAt,
		CallType:     entity.CallType(in.CallType),
		CallPurpose:  entity.CallPurpose(in.CallPurpose),
		CallStatus:   callStatus,
		Priority:     priority,
		Duration:     in.Duration,
		Notes:        in.Notes,
		NextFollowup: in.NextFollowup,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	id, err := uc.logs.Insert(log)
	if err != nil {
		return nil, err
	}

	if err := uc.customers.UpdateLastContact(in.CustomerID, callAt); err != nil {
		// No hay compensación: el registro ya existe y es lo autoritativo.
		return nil, err
	}

	detail, err := uc.logs.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCallLogResponse(detail)
	return &out, nil
}

// Get devuelve el registro unido con nombres; la política decide la visibilidad.
func (uc *UseCase) Get(actor policy.Actor, id int64) (*dto.CallLogResponse, error) {
	detail, err := uc.logs.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.pol.CanViewCallLog(actor, &detail.CallLog); err != nil {
		return nil, err
	}
	out := dto.NewCallLogResponse(detail)
	return &out, nil
}

// Update reemplaza los campos editables. Un Agent solo puede editar sus
// propios registros y dentro de la ventana de edición; un Admin siempre.
func (uc *UseCase) Update(actor policy.Actor, id int64, in dto.UpdateCallLogRequest) (*dto.CallLogResponse, error) {
	if !in.Valid() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.logs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.pol.CanEditCallLog(actor, existing, uc.now()); err != nil {
		return nil, err
	}

	existing.CallDatetime = in.CallDatetime
	existing.CallType = entity.CallType(in.CallType)
	existing.CallPurpose = entity.CallPurpose(in.CallPurpose)
	existing.CallStatus = entity.CallStatus(in.CallStatus)
	existing.Priority = entity.Priority(in.Priority)
	existing.Duration = in.Duration
	existing.Notes = in.Notes
	existing.NextFollowup = in.NextFollowup
	existing.UpdatedAt = uc.now()

	if _, err := uc.logs.Update(existing); err != nil {
		return nil, err
	}
	detail, err := uc.logs.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCallLogResponse(detail)
	return &out, nil
}

// Delete elimina el registro; solo Admin. ErrNotFound si no afectó filas.
func (uc *UseCase) Delete(actor policy.Actor, id int64) error {
	if err := uc.pol.CanDeleteCallLog(actor); err != nil {
		return err
	}
	affected, err := uc.logs.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List aplica primero el scoping por rol, luego los filtros del llamador,
// y pagina 1-based ordenando por call_datetime descendente. Una página
// posterior a la última devuelve lista vacía, no error.
func (uc *UseCase) List(actor policy.Actor, q dto.ListCallLogsQuery) (*dto.CallLogListResponse, error) {
	q.DefaultPage()

	f := repository.CallLogFilter{
		EmployeeID:  policy.ScopeEmployee(actor, q.EmployeeID),
		CustomerID:  q.CustomerID,
		CallType:    entity.CallType(q.CallType),
		CallPurpose: entity.CallPurpose(q.CallPurpose),
		Priority:    entity.Priority(q.Priority),
		CallStatus:  entity.CallStatus(q.CallStatus),
		From:        q.StartDate,
		To:          q.EndDate,
	}

	total, err := uc.logs.Count(f)
	if err != nil {
		return nil, err
	}
	list, err := uc.logs.List(f, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	return &dto.CallLogListResponse{
		CallLogs:   dto.NewCallLogResponses(list),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// MyLogs últimos registros del propio actor.
func (uc *UseCase) MyLogs(actor policy.Actor) ([]dto.CallLogResponse, error) {
	list, err := uc.logs.ListRecent(actor.ID, myLogsLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewCallLogResponses(list), nil
}

// Stats resumen de llamadas del actor (o global para Admin): totales,
// de hoy, conectadas, perdidas y desglose por prioridad y motivo.
func (uc *UseCase) Stats(ctx context.Context, actor policy.Actor) (*dto.CallLogStats, error) {
	employeeID := policy.ScopeEmployee(actor, 0)

	counts, err := uc.reports.PerformanceCounts(ctx, employeeID, nil, nil)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	today, err := uc.reports.CountCalls(ctx, employeeID, &dayStart, &dayEnd)
	if err != nil {
		return nil, err
	}

	byPriority, err := uc.reports.PriorityCounts(ctx, employeeID, nil, nil)
	if err != nil {
		return nil, err
	}
	byPurpose, err := uc.reports.PurposeCounts(ctx, employeeID, nil, nil)
	if err != nil {
		return nil, err
	}

	return &dto.CallLogStats{
		TotalCalls:     counts.Total,
		CallsToday:     today,
		ConnectedCalls: counts.Connected,
		MissedCalls:    counts.Missed,
		ByPriority:     labelMap(byPriority),
		ByPurpose:      labelMap(byPurpose),
	}, nil
}

func labelMap(list []repository.LabelCount) map[string]int {
	out := make(map[string]int, len(list))
	for _, lc := range list {
		out[lc.Label] = lc.Count
	}
	return out
}
