package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

var _ repository.CallLogRepository = (*CallLogRepo)(nil)

const callLogColumns = `call_id, customer_id, employee_id, call_datetime, call_type,
	call_purpose, call_status, priority, call_duration, notes, next_followup_date,
	created_at, updated_at`

const callLogDetailSelect = `
	SELECT cl.call_id, cl.customer_id, cl.employee_id, cl.call_datetime, cl.call_type,
		cl.call_purpose, cl.call_status, cl.priority, cl.call_duration, cl.notes,
		cl.next_followup_date, cl.created_at, cl.updated_at,
		c.customer_name, c.phone, e.name
	FROM call_logs cl
	JOIN customers c ON c.customer_id = cl.customer_id
	JOIN employees e ON e.employee_id = cl.employee_id`

// CallLogRepo implementación de CallLogRepository (usable con pool o tx).
type CallLogRepo struct {
	q Querier
}

// NewCallLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCallLogRepository(q Querier) *CallLogRepo {
	return &CallLogRepo{q: q}
}

func scanCallLog(row pgx.Row) (*entity.CallLog, error) {
	var l entity.CallLog
	err := row.Scan(
		&l.ID, &l.CustomerID, &l.EmployeeID, &l.CallDatetime, &l.CallType,
		&l.CallPurpose, &l.CallStatus, &l.Priority, &l.Duration, &l.Notes,
		&l.NextFollowup, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanCallLogDetail(row pgx.Row) (*entity.CallLogDetail, error) {
	var d entity.CallLogDetail
	err := row.Scan(
		&d.ID, &d.CustomerID, &d.EmployeeID, &d.CallDatetime, &d.CallType,
		&d.CallPurpose, &d.CallStatus, &d.Priority, &d.Duration, &d.Notes,
		&d.NextFollowup, &d.CreatedAt, &d.UpdatedAt,
		&d.CustomerName, &d.CustomerPhone, &d.EmployeeName,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CallLogRepo) queryDetails(query string, args ...any) ([]*entity.CallLogDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query call logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.CallLogDetail
	for rows.Next() {
		d, err := scanCallLogDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan call log: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// callLogWhere arma la cláusula WHERE del listado a partir del filtro.
// EmployeeID == 0 no filtra (el scoping por rol ya viene resuelto arriba).
func callLogWhere(f repository.CallLogFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.EmployeeID != 0 {
		add("cl.employee_id = $%d", f.EmployeeID)
	}
	if f.CustomerID != 0 {
		add("cl.customer_id = $%d", f.CustomerID)
	}
	if f.CallType != "" {
		add("cl.call_type = $%d", string(f.CallType))
	}
	if f.CallPurpose != "" {
		add("cl.call_purpose = $%d", string(f.CallPurpose))
	}
	if f.Priority != "" {
		add("cl.priority = $%d", string(f.Priority))
	}
	if f.CallStatus != "" {
		add("cl.call_status = $%d", string(f.CallStatus))
	}
	if f.From != nil {
		add("cl.call_datetime >= $%d", *f.From)
	}
	if f.To != nil {
		add("cl.call_datetime < $%d", *f.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Insert persiste un nuevo registro de llamada y devuelve el ID generado.
func (r *CallLogRepo) Insert(l *entity.CallLog) (int64, error) {
	query := `
		INSERT INTO call_logs (customer_id, employee_id, call_datetime, call_type,
			call_purpose, call_status, priority, call_duration, notes, next_followup_date,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING call_id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		l.CustomerID, l.EmployeeID, l.CallDatetime, l.CallType,
		l.CallPurpose, l.CallStatus, l.Priority, l.Duration, l.Notes, l.NextFollowup,
		l.CreatedAt, l.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert call log: %w", err)
	}
	return id, nil
}

// GetByID obtiene un registro por ID sin joins. Devuelve (nil, nil) si no existe.
func (r *CallLogRepo) GetByID(id int64) (*entity.CallLog, error) {
	query := `SELECT ` + callLogColumns + ` FROM call_logs WHERE call_id = $1`
	l, err := scanCallLog(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get call log: %w", err)
	}
	return l, nil
}

// GetDetail obtiene un registro con nombres de cliente y empleado.
func (r *CallLogRepo) GetDetail(id int64) (*entity.CallLogDetail, error) {
	query := callLogDetailSelect + ` WHERE cl.call_id = $1`
	d, err := scanCallLogDetail(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get call log detail: %w", err)
	}
	return d, nil
}

// List lista registros según filtro, más recientes primero.
func (r *CallLogRepo) List(f repository.CallLogFilter, limit, offset int) ([]*entity.CallLogDetail, error) {
	where, args := callLogWhere(f)
	query := fmt.Sprintf(`%s%s ORDER BY cl.call_datetime DESC LIMIT $%d OFFSET $%d`,
		callLogDetailSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryDetails(query, args...)
}

// Count cuenta registros que cumplen el filtro.
func (r *CallLogRepo) Count(f repository.CallLogFilter) (int, error) {
	where, args := callLogWhere(f)
	n, err := scanCount(r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM call_logs cl`+where, args...))
	if err != nil {
		return 0, fmt.Errorf("count call logs: %w", err)
	}
	return n, nil
}

// Update reescribe los campos editables de un registro. Devuelve filas afectadas.
func (r *CallLogRepo) Update(l *entity.CallLog) (int64, error) {
	query := `
		UPDATE call_logs
		SET call_datetime = $2, call_type = $3, call_purpose = $4, call_status = $5,
			priority = $6, call_duration = $7, notes = $8, next_followup_date = $9,
			updated_at = $10
		WHERE call_id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		l.ID, l.CallDatetime, l.CallType, l.CallPurpose, l.CallStatus,
		l.Priority, l.Duration, l.Notes, l.NextFollowup, l.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("update call log: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina un registro por ID. Devuelve filas afectadas.
func (r *CallLogRepo) Delete(id int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM call_logs WHERE call_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete call log: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByCustomer historial completo de llamadas de un cliente, más recientes primero.
func (r *CallLogRepo) ListByCustomer(customerID int64) ([]*entity.CallLogDetail, error) {
	query := callLogDetailSelect + ` WHERE cl.customer_id = $1 ORDER BY cl.call_datetime DESC`
	return r.queryDetails(query, customerID)
}

// ListRecent últimas llamadas de un empleado.
func (r *CallLogRepo) ListRecent(employeeID int64, limit int) ([]*entity.CallLogDetail, error) {
	query := callLogDetailSelect + ` WHERE cl.employee_id = $1 ORDER BY cl.call_datetime DESC LIMIT $2`
	return r.queryDetails(query, employeeID, limit)
}

// CountByCustomer cuenta registros de un cliente (chequeo de dependencias antes de borrar).
func (r *CallLogRepo) CountByCustomer(customerID int64) (int, error) {
	n, err := scanCount(r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM call_logs WHERE customer_id = $1`, customerID))
	if err != nil {
		return 0, fmt.Errorf("count by customer: %w", err)
	}
	return n, nil
}

// CountByEmployee cuenta registros de un empleado (chequeo de dependencias antes de borrar).
func (r *CallLogRepo) CountByEmployee(employeeID int64) (int, error) {
	n, err := scanCount(r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM call_logs WHERE employee_id = $1`, employeeID))
	if err != nil {
		return 0, fmt.Errorf("count by employee: %w", err)
	}
	return n, nil
}

// ListFollowups registros con seguimiento dentro del rango semiabierto [From, To).
// employeeID == 0 no filtra por empleado.
func (r *CallLogRepo) ListFollowups(employeeID int64, fr repository.FollowupRange) ([]*entity.CallLogDetail, error) {
	var conds []string
	var args []any
	conds = append(conds, "cl.next_followup_date IS NOT NULL")
	if employeeID != 0 {
		args = append(args, employeeID)
		conds = append(conds, fmt.Sprintf("cl.employee_id = $%d", len(args)))
	}
	if fr.From != nil {
		args = append(args, *fr.From)
		conds = append(conds, fmt.Sprintf("cl.next_followup_date >= $%d", len(args)))
	}
	if fr.To != nil {
		args = append(args, *fr.To)
		conds = append(conds, fmt.Sprintf("cl.next_followup_date < $%d", len(args)))
	}
	query := callLogDetailSelect + ` WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY cl.next_followup_date ASC, cl.call_datetime DESC`
	return r.queryDetails(query, args...)
}

// CountFollowupsFrom cuenta seguimientos pendientes (fecha >= from).
func (r *CallLogRepo) CountFollowupsFrom(employeeID int64, from time.Time) (int, error) {
	var conds []string
	args := []any{from}
	conds = append(conds, "next_followup_date >= $1")
	if employeeID != 0 {
		args = append(args, employeeID)
		conds = append(conds, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	query := `SELECT COUNT(*) FROM call_logs WHERE ` + strings.Join(conds, " AND ")
	n, err := scanCount(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		return 0, fmt.Errorf("count followups: %w", err)
	}
	return n, nil
}
