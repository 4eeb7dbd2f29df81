package repository

import (
	"time"

	"github.com/jhoicas/callcrm-api/internal/domain/entity"
)

// CallLogFilter filtros para listados de registros de llamada.
// EmployeeID == 0 significa sin filtro (el scoping por rol ya viene resuelto).
type CallLogFilter struct {
	EmployeeID  int64
	CustomerID  int64
	CallType    entity.CallType
	CallPurpose entity.CallPurpose
	Priority    entity.Priority
	CallStatus  entity.CallStatus
	From        *time.Time
	To          *time.Time
}

// FollowupRange rango semiabierto [From, To) sobre next_followup_date.
// From o To en nil dejan ese extremo abierto.
type FollowupRange struct {
	From *time.Time
	To   *time.Time
}

// CallLogRepository define el puerto de persistencia para CallLog.
type CallLogRepository interface {
	Insert(l *entity.CallLog) (int64, error)
	GetByID(id int64) (*entity.CallLog, error)
	GetDetail(id int64) (*entity.CallLogDetail, error)
	// List ordena por call_datetime descendente.
	List(f CallLogFilter, limit, offset int) ([]*entity.CallLogDetail, error)
	Count(f CallLogFilter) (int, error)
	Update(l *entity.CallLog) (int64, error)
	Delete(id int64) (int64, error)
	ListByCustomer(customerID int64) ([]*entity.CallLogDetail, error)
	ListRecent(employeeID int64, limit int) ([]*entity.CallLogDetail, error)
	CountByCustomer(customerID int64) (int, error)
	CountByEmployee(employeeID int64) (int, error)
	// ListFollowups devuelve registros con next_followup_date dentro del rango,
	// ordenados por next_followup_date ascendente y call_datetime descendente.
	// employeeID == 0 no filtra por empleado.
	ListFollowups(employeeID int64, r FollowupRange) ([]*entity.CallLogDetail, error)
	// CountFollowupsFrom cuenta seguimientos con fecha >= from (pendientes).
	CountFollowupsFrom(employeeID int64, from time.Time) (int, error)
}
