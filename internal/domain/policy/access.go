// Package policy centraliza las reglas de visibilidad y edición de
// registros de llamada: Admin ve y edita todo; Agent solo lo propio y
// dentro de la ventana de edición.
package policy

import (
	"time"

	"github.com/jhoicas/callcrm-api/internal/domain"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
)

// Actor es la identidad ya autenticada que ejecuta la operación.
type Actor struct {
	ID   int64
	Role string // entity.RoleAdmin | entity.RoleAgent
}

// IsAdmin indica si el actor tiene rol Admin.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// DefaultEditWindow ventana de edición para Agents si no se configura otra.
const DefaultEditWindow = 24 * time.Hour

// Policy agrupa las constantes de política (inyectables desde config).
type Policy struct {
	EditWindow time.Duration
}

// New construye la política; una ventana <= 0 usa el valor por defecto.
func New(editWindow time.Duration) Policy {
	if editWindow <= 0 {
		editWindow = DefaultEditWindow
	}
	return Policy{EditWindow: editWindow}
}

// CanViewCallLog: Admin siempre; Agent solo si es el dueño del registro.
func (p Policy) CanViewCallLog(actor Actor, log *entity.CallLog) error {
	if actor.IsAdmin() || log.EmployeeID == actor.ID {
		return nil
	}
	return domain.ErrForbidden
}

// CanEditCallLog: Admin sin restricción; Agent solo si es dueño y el
// registro tiene a lo más EditWindow de antigüedad (exactamente en el
// límite todavía se permite).
func (p Policy) CanEditCallLog(actor Actor, log *entity.CallLog, now time.Time) error {
	if actor.IsAdmin() {
		return nil
	}
	if log.EmployeeID != actor.ID {
		return domain.ErrForbidden
	}
	if now.Sub(log.CreatedAt) > p.EditWindow {
		return domain.ErrEditWindowExpired
	}
	return nil
}

// CanDeleteCallLog: solo Admin.
func (p Policy) CanDeleteCallLog(actor Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}

// ScopeEmployee devuelve el filtro efectivo de empleado para listados y
// agregados: un Agent queda fijado a sí mismo; un Admin puede pedir
// cualquier empleado (requested) o ver todo (0).
func ScopeEmployee(actor Actor, requested int64) int64 {
	if actor.IsAdmin() {
		return requested
	}
	return actor.ID
}
