package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/domain"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

const defaultResetPassword = "temp123"

// EmployeeUseCase administración de empleados (operaciones solo-Admin;
// el gate de rol vive en el middleware HTTP).
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	logs      repository.CallLogRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employees repository.EmployeeRepository, logs repository.CallLogRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, logs: logs}
}

// List todos los empleados, más recientes primero.
func (uc *EmployeeUseCase) List() ([]dto.EmployeeResponse, error) {
	list, err := uc.employees.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.NewEmployeeResponse(e))
	}
	return out, nil
}

// Get un empleado por id.
func (uc *EmployeeUseCase) Get(id int64) (*dto.EmployeeResponse, error) {
	emp, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewEmployeeResponse(emp)
	return &out, nil
}

// Create alta de empleado: hashea la contraseña y persiste. Email y
// móvil duplicados fallan con ErrDuplicate desde el adaptador.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if !in.Valid() {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAgent
	}
	status := in.Status
	if status == "" {
		status = entity.EmployeeActive
	}
	now := time.Now()
	emp := &entity.Employee{
		Name:         in.Name,
		Mobile:       in.Mobile,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	id, err := uc.employees.Create(emp)
	if err != nil {
		return nil, err
	}
	emp.ID = id
	out := dto.NewEmployeeResponse(emp)
	return &out, nil
}

// Update modifica un empleado. Un Admin no puede quitarse el rol ni
// desactivar su propia cuenta.
func (uc *EmployeeUseCase) Update(actorID, id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if id == actorID {
		if in.Role != "" && in.Role != entity.RoleAdmin {
			return nil, domain.ErrInvalidInput
		}
		if in.Status == entity.EmployeeInactive {
			return nil, domain.ErrInvalidInput
		}
	}
	emp, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	emp.Name = in.Name
	emp.Mobile = in.Mobile
	emp.Email = in.Email
	emp.Role = in.Role
	emp.Status = in.Status
	emp.UpdatedAt = time.Now()
	affected, err := uc.employees.Update(emp)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}
	out := dto.NewEmployeeResponse(emp)
	return &out, nil
}

// Delete elimina un empleado sin llamadas asociadas. La propia cuenta y
// los empleados con registros quedan protegidos (en el segundo caso la
// vía correcta es pasarlo a Inactive).
func (uc *EmployeeUseCase) Delete(actorID, id int64) error {
	if id == actorID {
		return domain.ErrInvalidInput
	}
	count, err := uc.logs.CountByEmployee(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDependencyExists
	}
	affected, err := uc.employees.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ResetPassword restablece la contraseña de un empleado (valor temporal
// por defecto si no se envía una).
func (uc *EmployeeUseCase) ResetPassword(id int64, in dto.ResetPasswordRequest) error {
	password := in.NewPassword
	if password == "" {
		password = defaultResetPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	affected, err := uc.employees.UpdatePassword(id, string(hash))
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
