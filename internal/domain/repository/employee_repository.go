package repository

import (
	"time"

	"github.com/jhoicas/callcrm-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(e *entity.Employee) (int64, error)
	GetByID(id int64) (*entity.Employee, error)
	GetByEmail(email string) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
	Update(e *entity.Employee) (int64, error)
	UpdatePassword(id int64, passwordHash string) (int64, error)
	UpdateLastLogin(id int64, at time.Time) error
	Delete(id int64) (int64, error)
}
