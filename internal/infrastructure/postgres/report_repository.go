package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y dashboards.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// callFilter arma condiciones opcionales por empleado y rango semiabierto.
// prefix es el alias de la tabla call_logs en el query ("" o "cl.").
func callFilter(prefix string, employeeID int64, from, to *time.Time) (string, []any) {
	var conds []string
	var args []any
	if employeeID != 0 {
		args = append(args, employeeID)
		conds = append(conds, fmt.Sprintf("%semployee_id = $%d", prefix, len(args)))
	}
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("%scall_datetime >= $%d", prefix, len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("%scall_datetime < $%d", prefix, len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// PerformanceCounts totales por resultado de llamada en un solo query.
func (r *ReportRepo) PerformanceCounts(ctx context.Context, employeeID int64, from, to *time.Time) (repository.PerformanceCounts, error) {
	where, args := callFilter("", employeeID, from, to)
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN call_status = 'Connected' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN call_status = 'Not Answered' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN call_type = 'Missed' THEN 1 ELSE 0 END), 0)
		FROM call_logs` + where
	var total, connected, notAnswered, missed any
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total, &connected, &notAnswered, &missed); err != nil {
		return repository.PerformanceCounts{}, fmt.Errorf("performance counts: %w", err)
	}
	var pc repository.PerformanceCounts
	var err error
	if pc.Total, err = toInt(total); err != nil {
		return pc, err
	}
	if pc.Connected, err = toInt(connected); err != nil {
		return pc, err
	}
	if pc.NotAnswered, err = toInt(notAnswered); err != nil {
		return pc, err
	}
	if pc.Missed, err = toInt(missed); err != nil {
		return pc, err
	}
	return pc, nil
}

func (r *ReportRepo) labelCounts(ctx context.Context, column string, employeeID int64, from, to *time.Time) ([]repository.LabelCount, error) {
	where, args := callFilter("", employeeID, from, to)
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM call_logs%s GROUP BY %s ORDER BY COUNT(*) DESC`,
		column, where, column)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("counts by %s: %w", column, err)
	}
	defer rows.Close()
	var list []repository.LabelCount
	for rows.Next() {
		var lc repository.LabelCount
		var n any
		if err := rows.Scan(&lc.Label, &n); err != nil {
			return nil, fmt.Errorf("scan counts by %s: %w", column, err)
		}
		if lc.Count, err = toInt(n); err != nil {
			return nil, err
		}
		list = append(list, lc)
	}
	return list, rows.Err()
}

// PurposeCounts conteo de llamadas agrupado por motivo.
func (r *ReportRepo) PurposeCounts(ctx context.Context, employeeID int64, from, to *time.Time) ([]repository.LabelCount, error) {
	return r.labelCounts(ctx, "call_purpose", employeeID, from, to)
}

// PriorityCounts conteo de llamadas agrupado por prioridad.
func (r *ReportRepo) PriorityCounts(ctx context.Context, employeeID int64, from, to *time.Time) ([]repository.LabelCount, error) {
	return r.labelCounts(ctx, "priority", employeeID, from, to)
}

// TypeCounts conteo de llamadas agrupado por tipo.
func (r *ReportRepo) TypeCounts(ctx context.Context, employeeID int64, from, to *time.Time) ([]repository.LabelCount, error) {
	return r.labelCounts(ctx, "call_type", employeeID, from, to)
}

// CallDatetimes fechas de llamada del rango; la agrupación por período
// (día/semana/mes) se hace en Go.
func (r *ReportRepo) CallDatetimes(ctx context.Context, from, to *time.Time) ([]time.Time, error) {
	where, args := callFilter("", 0, from, to)
	rows, err := r.q.Query(ctx, `SELECT call_datetime FROM call_logs`+where, args...)
	if err != nil {
		return nil, fmt.Errorf("call datetimes: %w", err)
	}
	defer rows.Close()
	var list []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan call datetime: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// MissedCalls llamadas perdidas del rango con datos de cliente y empleado.
func (r *ReportRepo) MissedCalls(ctx context.Context, from, to *time.Time) ([]*entity.CallLogDetail, error) {
	var conds []string
	var args []any
	conds = append(conds, "cl.call_type = 'Missed'")
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("cl.call_datetime >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("cl.call_datetime < $%d", len(args)))
	}
	query := callLogDetailSelect + ` WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY cl.call_datetime DESC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("missed calls: %w", err)
	}
	defer rows.Close()
	var list []*entity.CallLogDetail
	for rows.Next() {
		d, err := scanCallLogDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan missed call: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// CountCalls total de llamadas para empleado y rango opcionales.
func (r *ReportRepo) CountCalls(ctx context.Context, employeeID int64, from, to *time.Time) (int, error) {
	where, args := callFilter("", employeeID, from, to)
	n, err := scanCount(r.q.QueryRow(ctx, `SELECT COUNT(*) FROM call_logs`+where, args...))
	if err != nil {
		return 0, fmt.Errorf("count calls: %w", err)
	}
	return n, nil
}

// CountUniqueCustomers clientes distintos contactados en el rango.
func (r *ReportRepo) CountUniqueCustomers(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(DISTINCT customer_id) FROM call_logs WHERE call_datetime >= $1 AND call_datetime < $2`
	n, err := scanCount(r.q.QueryRow(ctx, query, from, to))
	if err != nil {
		return 0, fmt.Errorf("count unique customers: %w", err)
	}
	return n, nil
}

// TopContactedCustomers clientes más contactados en el rango.
func (r *ReportRepo) TopContactedCustomers(ctx context.Context, from, to time.Time, limit int) ([]repository.CustomerCallCount, error) {
	query := `
		SELECT c.customer_id, c.customer_name, c.phone, c.portfolio, COUNT(*)
		FROM call_logs cl
		JOIN customers c ON c.customer_id = cl.customer_id
		WHERE cl.call_datetime >= $1 AND cl.call_datetime < $2
		GROUP BY c.customer_id, c.customer_name, c.phone, c.portfolio
		ORDER BY COUNT(*) DESC, c.customer_name
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top contacted customers: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerCallCount
	for rows.Next() {
		var cc repository.CustomerCallCount
		var n any
		if err := rows.Scan(&cc.CustomerID, &cc.CustomerName, &cc.Phone, &cc.Portfolio, &n); err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		if cc.Count, err = toInt(n); err != nil {
			return nil, err
		}
		list = append(list, cc)
	}
	return list, rows.Err()
}

// InactiveCustomers clientes activos sin contacto desde before (o nunca contactados).
func (r *ReportRepo) InactiveCustomers(ctx context.Context, before time.Time) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE status = 'Active' AND (last_contact_date < $1 OR last_contact_date IS NULL)
		ORDER BY last_contact_date DESC NULLS LAST`
	rows, err := r.q.Query(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("inactive customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inactive customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CustomerStatusDistribution conteo de clientes por estado.
func (r *ReportRepo) CustomerStatusDistribution(ctx context.Context) ([]repository.LabelCount, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM customers GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("customer status distribution: %w", err)
	}
	defer rows.Close()
	var list []repository.LabelCount
	for rows.Next() {
		var lc repository.LabelCount
		var n any
		if err := rows.Scan(&lc.Label, &n); err != nil {
			return nil, fmt.Errorf("scan status distribution: %w", err)
		}
		if lc.Count, err = toInt(n); err != nil {
			return nil, err
		}
		list = append(list, lc)
	}
	return list, rows.Err()
}

// AvgCallsPerCustomer media de los conteos de llamadas por cliente.
func (r *ReportRepo) AvgCallsPerCustomer(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(AVG(n), 0)
		FROM (SELECT COUNT(*) AS n FROM call_logs GROUP BY customer_id) per_customer`
	var avg decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("avg calls per customer: %w", err)
	}
	return avg, nil
}

func (r *ReportRepo) employeeMatrix(ctx context.Context, column string, from, to time.Time) ([]repository.EmployeeBucketCount, error) {
	// LEFT JOIN: empleados sin llamadas del rango aparecen con bucket NULL
	// y count 0, para que el pivot decida si los muestra.
	query := fmt.Sprintf(`
		SELECT e.employee_id, e.name, e.status, COALESCE(cl.%s, ''), COUNT(cl.call_id)
		FROM employees e
		LEFT JOIN call_logs cl
			ON cl.employee_id = e.employee_id
			AND cl.call_datetime >= $1 AND cl.call_datetime < $2
		GROUP BY e.employee_id, e.name, e.status, cl.%s
		ORDER BY e.employee_id`, column, column)
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("employee matrix by %s: %w", column, err)
	}
	defer rows.Close()
	var list []repository.EmployeeBucketCount
	for rows.Next() {
		var bc repository.EmployeeBucketCount
		var n any
		if err := rows.Scan(&bc.EmployeeID, &bc.EmployeeName, &bc.EmployeeStatus, &bc.Bucket, &n); err != nil {
			return nil, fmt.Errorf("scan employee matrix: %w", err)
		}
		if bc.Count, err = toInt(n); err != nil {
			return nil, err
		}
		list = append(list, bc)
	}
	return list, rows.Err()
}

// EmployeePriorityMatrix celdas empleado × prioridad para el rango.
func (r *ReportRepo) EmployeePriorityMatrix(ctx context.Context, from, to time.Time) ([]repository.EmployeeBucketCount, error) {
	return r.employeeMatrix(ctx, "priority", from, to)
}

// EmployeePurposeMatrix celdas empleado × motivo para el rango.
func (r *ReportRepo) EmployeePurposeMatrix(ctx context.Context, from, to time.Time) ([]repository.EmployeeBucketCount, error) {
	return r.employeeMatrix(ctx, "call_purpose", from, to)
}
