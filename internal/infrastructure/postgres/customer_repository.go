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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `customer_id, customer_name, phone, alternate_number, email,
	investment_id, investment_code, invested_date, cheque_no, pan_number,
	portfolio, channel_partner, status, notes, last_contact_date, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.AlternateNumber, &c.Email,
		&c.InvestmentID, &c.InvestmentCode, &c.InvestedDate, &c.ChequeNo, &c.PANNumber,
		&c.Portfolio, &c.ChannelPartner, &c.Status, &c.Notes, &c.LastContactDate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// customerWhere arma la cláusula WHERE del listado a partir del filtro.
func customerWhere(f repository.CustomerFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(customer_name ILIKE $%d OR phone ILIKE $%d OR investment_id ILIKE $%d)", n, n, n))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}

// Create persiste un nuevo cliente y devuelve el ID generado.
func (r *CustomerRepo) Create(c *entity.Customer) (int64, error) {
	query := `
		INSERT INTO customers (customer_name, phone, alternate_number, email,
			investment_id, investment_code, invested_date, cheque_no, pan_number,
			portfolio, channel_partner, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING customer_id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		c.Name, c.Phone, c.AlternateNumber, c.Email,
		c.InvestmentID, c.InvestmentCode, c.InvestedDate, c.ChequeNo, c.PANNumber,
		c.Portfolio, c.ChannelPartner, c.Status, c.Notes, c.CreatedAt, c.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List lista clientes con filtro y paginación, ordenados por nombre.
func (r *CustomerRepo) List(f repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	where, args := customerWhere(f)
	query := fmt.Sprintf(`SELECT `+customerColumns+` FROM customers%s ORDER BY customer_name LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count cuenta clientes que cumplen el filtro.
func (r *CustomerRepo) Count(f repository.CustomerFilter) (int, error) {
	where, args := customerWhere(f)
	n, err := scanCount(r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM customers`+where, args...))
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// Update actualiza un cliente. Devuelve filas afectadas.
func (r *CustomerRepo) Update(c *entity.Customer) (int64, error) {
	query := `
		UPDATE customers
		SET customer_name = $2, phone = $3, alternate_number = $4, email = $5,
			investment_id = $6, investment_code = $7, invested_date = $8, cheque_no = $9,
			pan_number = $10, portfolio = $11, channel_partner = $12, status = $13,
			notes = $14, updated_at = $15
		WHERE customer_id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Phone, c.AlternateNumber, c.Email,
		c.InvestmentID, c.InvestmentCode, c.InvestedDate, c.ChequeNo, c.PANNumber,
		c.Portfolio, c.ChannelPartner, c.Status, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update customer: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina un cliente por ID. Devuelve filas afectadas.
func (r *CustomerRepo) Delete(id int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateLastContact marca la fecha de último contacto del cliente.
func (r *CustomerRepo) UpdateLastContact(id int64, at time.Time) error {
	query := `UPDATE customers SET last_contact_date = $2, updated_at = now() WHERE customer_id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, at); err != nil {
		return fmt.Errorf("update last contact: %w", err)
	}
	return nil
}

// QuickSearch busca clientes activos por nombre, teléfono, investment_id o PAN.
// Los matches por prefijo de PAN van primero, después orden alfabético.
func (r *CustomerRepo) QuickSearch(q string, limit int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE status = 'Active'
		  AND (customer_name ILIKE $1 OR phone ILIKE $1 OR investment_id ILIKE $1 OR pan_number ILIKE $2)
		ORDER BY CASE WHEN pan_number ILIKE $2 THEN 0 ELSE 1 END, customer_name
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, "%"+q+"%", q+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("quick search customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ExistsByPhone indica si ya hay un cliente con ese teléfono (principal o alterno).
func (r *CustomerRepo) ExistsByPhone(phone string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE phone = $1 OR alternate_number = $1)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, phone).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by phone: %w", err)
	}
	return exists, nil
}
