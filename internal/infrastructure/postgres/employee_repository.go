package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/callcrm-api/internal/domain"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `employee_id, name, mobile, email, password_hash, role, status, last_login, created_at, updated_at`

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Mobile, &e.Email, &e.PasswordHash,
		&e.Role, &e.Status, &e.LastLogin, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un nuevo empleado y devuelve el ID generado.
func (r *EmployeeRepo) Create(e *entity.Employee) (int64, error) {
	query := `
		INSERT INTO employees (name, mobile, email, password_hash, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING employee_id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		e.Name, e.Mobile, e.Email, e.PasswordHash, e.Role, e.Status, e.CreatedAt, e.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

// GetByID obtiene un empleado por ID. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`
	e, err := scanEmployee(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// GetByEmail obtiene un empleado por email (login). Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`
	e, err := scanEmployee(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by email: %w", err)
	}
	return e, nil
}

// List lista todos los empleados ordenados por nombre.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza datos del empleado (sin password). Devuelve filas afectadas.
func (r *EmployeeRepo) Update(e *entity.Employee) (int64, error) {
	query := `
		UPDATE employees
		SET name = $2, mobile = $3, email = $4, role = $5, status = $6, updated_at = $7
		WHERE employee_id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Mobile, e.Email, e.Role, e.Status, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update employee: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdatePassword reemplaza el hash de contraseña. Devuelve filas afectadas.
func (r *EmployeeRepo) UpdatePassword(id int64, passwordHash string) (int64, error) {
	query := `UPDATE employees SET password_hash = $2, updated_at = now() WHERE employee_id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("update employee password: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateLastLogin marca la fecha del último login exitoso.
func (r *EmployeeRepo) UpdateLastLogin(id int64, at time.Time) error {
	query := `UPDATE employees SET last_login = $2 WHERE employee_id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, at); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID. Devuelve filas afectadas.
func (r *EmployeeRepo) Delete(id int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected(), nil
}
