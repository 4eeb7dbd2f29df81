package entity

import "time"

// Roles válidos para Employee.
const (
	RoleAdmin = "Admin"
	RoleAgent = "Agent"
)

// Estados válidos para Employee.
const (
	EmployeeActive   = "Active"
	EmployeeInactive = "Inactive"
)

// Employee representa un empleado del equipo de ventas/cobranza.
type Employee struct {
	ID           int64
	Name         string
	Mobile       string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Admin, Agent
	Status       string // Active, Inactive
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica si el empleado puede autenticarse y operar.
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeActive
}
