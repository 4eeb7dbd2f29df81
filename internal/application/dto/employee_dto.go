package dto

import (
	"time"

	"github.com/jhoicas/callcrm-api/internal/domain/entity"
)

// EmployeeResponse representación pública de un empleado (sin hash).
type EmployeeResponse struct {
	EmployeeID int64      `json:"employeeId"`
	Name       string     `json:"name"`
	Mobile     string     `json:"mobile"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// NewEmployeeResponse convierte la entidad a su forma pública.
func NewEmployeeResponse(e *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.ID,
		Name:       e.Name,
		Mobile:     e.Mobile,
		Email:      e.Email,
		Role:       e.Role,
		Status:     e.Status,
		LastLogin:  e.LastLogin,
		CreatedAt:  e.CreatedAt,
	}
}

// CreateEmployeeRequest alta de empleado (solo Admin).
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// Valid re-valida los invariantes mínimos (la sintaxis fina ya pasó la
// validación del borde HTTP).
func (r CreateEmployeeRequest) Valid() bool {
	if len(r.Name) < 2 || r.Email == "" || len(r.Password) < 6 {
		return false
	}
	if r.Role != "" && r.Role != entity.RoleAdmin && r.Role != entity.RoleAgent {
		return false
	}
	if r.Status != "" && r.Status != entity.EmployeeActive && r.Status != entity.EmployeeInactive {
		return false
	}
	return true
}

// UpdateEmployeeRequest actualización de datos de empleado.
type UpdateEmployeeRequest struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// ResetPasswordRequest restablecimiento de contraseña por un Admin.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}
