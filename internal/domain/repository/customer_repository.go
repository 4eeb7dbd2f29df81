package repository

import (
	"time"

	"github.com/jhoicas/callcrm-api/internal/domain/entity"
)

// CustomerFilter filtros para el listado paginado de clientes.
type CustomerFilter struct {
	Search string // nombre, teléfono o investment_id (parcial)
	Status string // pertenencia ya validada arriba
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(c *entity.Customer) (int64, error)
	GetByID(id int64) (*entity.Customer, error)
	List(f CustomerFilter, limit, offset int) ([]*entity.Customer, error)
	Count(f CustomerFilter) (int, error)
	Update(c *entity.Customer) (int64, error)
	Delete(id int64) (int64, error)
	// UpdateLastContact marca la fecha de último contacto (efecto lateral
	// de crear un registro de llamada; sin transacción con el insert).
	UpdateLastContact(id int64, at time.Time) error
	// QuickSearch busca clientes activos por nombre/teléfono/investment_id/PAN,
	// con prefijo de PAN primero en el orden.
	QuickSearch(q string, limit int) ([]*entity.Customer, error)
	ExistsByPhone(phone string) (bool, error)
}
