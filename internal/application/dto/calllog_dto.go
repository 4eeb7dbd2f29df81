package dto

import (
	"time"

	"github.com/jhoicas/callcrm-api/internal/domain/entity"
)

// CallLogResponse registro de llamada unido con nombres de cliente y empleado.
type CallLogResponse struct {
	CallID        int64      `json:"callId"`
	CustomerID    int64      `json:"customerId"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone,omitempty"`
	EmployeeID    int64      `json:"employeeId"`
	EmployeeName  string     `json:"employeeName"`
	CallDatetime  time.Time  `json:"callDatetime"`
	CallType      string     `json:"callType"`
	CallPurpose   string     `json:"callPurpose"`
	CallStatus    string     `json:"callStatus"`
	Priority      string     `json:"priority"`
	Duration      *int       `json:"callDuration,omitempty"`
	Notes         string     `json:"notes"`
	NextFollowup  *time.Time `json:"nextFollowupDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewCallLogResponse convierte el detalle a su forma pública.
func NewCallLogResponse(d *entity.CallLogDetail) CallLogResponse {
	return CallLogResponse{
		CallID:        d.ID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		EmployeeID:    d.EmployeeID,
		EmployeeName:  d.EmployeeName,
		CallDatetime:  d.CallDatetime,
		CallType:      string(d.CallType),
		CallPurpose:   string(d.CallPurpose),
		CallStatus:    string(d.CallStatus),
		Priority:      string(d.Priority),
		Duration:      d.Duration,
		Notes:         d.Notes,
		NextFollowup:  d.NextFollowup,
		CreatedAt:     d.CreatedAt,
	}
}

// NewCallLogResponses convierte un slice de detalles; nunca devuelve nil
// para que los listados vacíos serialicen como [].
func NewCallLogResponses(list []*entity.CallLogDetail) []CallLogResponse {
	out := make([]CallLogResponse, 0, len(list))
	for _, d := range list {
		out = append(out, NewCallLogResponse(d))
	}
	return out
}

// CreateCallLogRequest alta de registro de llamada. El empleado siempre
// es el actor autenticado, nunca viene en el cuerpo.
type CreateCallLogRequest struct {
	CustomerID   int64      `json:"customerId"`
	CallDatetime *time.Time `json:"callDatetime"`
	CallType     string     `json:"callType"`
	CallPurpose  string     `json:"callPurpose"`
	CallStatus   string     `json:"callStatus"`
	Priority     string     `json:"priority"`
	Duration     *int       `json:"callDuration"`
	Notes        string     `json:"notes"`
	NextFollowup *time.Time `json:"nextFollowupDate"`
}

// Valid re-valida invariantes de negocio: enums cerrados y notas 10–1000.
func (r CreateCallLogRequest) Valid() bool {
	if r.CustomerID <= 0 {
		return false
	}
	if !entity.CallType(r.CallType).Valid() || !entity.CallPurpose(r.CallPurpose).Valid() {
		return false
	}
	if r.CallStatus != "" && !entity.CallStatus(r.CallStatus).Valid() {
		return false
	}
	if r.Priority != "" && !entity.Priority(r.Priority).Valid() {
		return false
	}
	if len(r.Notes) < 10 || len(r.Notes) > 1000 {
		return false
	}
	if r.Duration != nil && *r.Duration < 0 {
		return false
	}
	return true
}

// UpdateCallLogRequest reemplazo de los campos editables (el llamador
// envía todos los valores cada vez, sin semántica de merge-patch).
type UpdateCallLogRequest struct {
	CallDatetime time.Time  `json:"callDatetime"`
	CallType     string     `json:"callType"`
	CallPurpose  string     `json:"callPurpose"`
	CallStatus   string     `json:"callStatus"`
	Priority     string     `json:"priority"`
	Duration     *int       `json:"callDuration"`
	Notes        string     `json:"notes"`
	NextFollowup *time.Time `json:"nextFollowupDate"`
}

// Valid re-valida invariantes de negocio.
func (r UpdateCallLogRequest) Valid() bool {
	if r.CallDatetime.IsZero() {
		return false
	}
	if !entity.CallType(r.CallType).Valid() || !entity.CallPurpose(r.CallPurpose).Valid() {
		return false
	}
	if !entity.CallStatus(r.CallStatus).Valid() || !entity.Priority(r.Priority).Valid() {
		return false
	}
	if len(r.Notes) < 10 || len(r.Notes) > 1000 {
		return false
	}
	return true
}

// ListCallLogsQuery filtros del listado paginado.
type ListCallLogsQuery struct {
	PageRequest
	EmployeeID  int64      `query:"employeeId"`
	CustomerID  int64      `query:"customerId"`
	CallType    string     `query:"callType"`
	CallPurpose string     `query:"callPurpose"`
	Priority    string     `query:"priority"`
	CallStatus  string     `query:"callStatus"`
	StartDate   *time.Time `query:"startDate"`
	EndDate     *time.Time `query:"endDate"`
}

// CallLogListResponse listado paginado de registros.
type CallLogListResponse struct {
	CallLogs   []CallLogResponse `json:"callLogs"`
	Pagination Pagination        `json:"pagination"`
}

// CallLogStats resumen rápido de llamadas, alcance según el rol del actor.
type CallLogStats struct {
	TotalCalls     int            `json:"totalCalls"`
	CallsToday     int            `json:"callsToday"`
	ConnectedCalls int            `json:"connectedCalls"`
	MissedCalls    int            `json:"missedCalls"`
	ByPriority     map[string]int `json:"byPriority"`
	ByPurpose      map[string]int `json:"byPurpose"`
}
