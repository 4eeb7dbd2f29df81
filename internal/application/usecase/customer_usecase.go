package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/domain"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

const quickSearchLimit = 20

// CustomerUseCase administración y consulta de clientes. Las escrituras
// son solo-Admin (gate en el middleware HTTP); las lecturas son de todos.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	logs      repository.CallLogRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, logs repository.CallLogRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, logs: logs}
}

// List listado paginado con búsqueda parcial y filtro de estado.
func (uc *CustomerUseCase) List(search, status string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	if status != "" && !entity.ValidCustomerStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	f := repository.CustomerFilter{Search: search, Status: status}
	total, err := uc.customers.Count(f)
	if err != nil {
		return nil, err
	}
	list, err := uc.customers.List(f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Customers:  out,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Get un cliente por id.
func (uc *CustomerUseCase) Get(id int64) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCustomerResponse(c)
	return &out, nil
}

// Create alta de cliente. Teléfono o investment_id duplicados fallan
// con ErrDuplicate desde el adaptador.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if !in.Valid() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.CustomerActive
	}
	now := time.Now()
	c := &entity.Customer{
		Name:            in.Name,
		Phone:           in.Phone,
		AlternateNumber: in.AlternateNumber,
		Email:           in.Email,
		InvestmentID:    in.InvestmentID,
		InvestmentCode:  in.InvestmentCode,
		InvestedDate:    in.InvestedDate,
		ChequeNo:        in.ChequeNo,
		PANNumber:       strings.ToUpper(in.PANNumber),
		Portfolio:       in.Portfolio,
		ChannelPartner:  in.ChannelPartner,
		Status:          status,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	id, err := uc.customers.Create(c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	out := dto.NewCustomerResponse(c)
	return &out, nil
}

// Update reemplaza los datos del cliente.
func (uc *CustomerUseCase) Update(id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if !in.Valid() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Name = in.Name
	existing.Phone = in.Phone
	existing.AlternateNumber = in.AlternateNumber
	existing.Email = in.Email
	existing.InvestmentID = in.InvestmentID
	existing.InvestmentCode = in.InvestmentCode
	existing.InvestedDate = in.InvestedDate
	existing.ChequeNo = in.ChequeNo
	existing.PANNumber = strings.ToUpper(in.PANNumber)
	existing.Portfolio = in.Portfolio
	existing.ChannelPartner = in.ChannelPartner
	if in.Status != "" {
		existing.Status = in.Status
	}
	existing.Notes = in.Notes
	existing.UpdatedAt = time.Now()

	affected, err := uc.customers.Update(existing)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCustomerResponse(existing)
	return &out, nil
}

// Delete elimina un cliente sin llamadas asociadas; con llamadas falla
// con ErrDependencyExists (la vía correcta es pasarlo a Closed).
func (uc *CustomerUseCase) Delete(id int64) error {
	count, err := uc.logs.CountByCustomer(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDependencyExists
	}
	affected, err := uc.customers.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// QuickSearch búsqueda rápida para el formulario de llamadas: mínimo 2
// caracteres, solo clientes activos.
func (uc *CustomerUseCase) QuickSearch(q string) ([]dto.CustomerResponse, error) {
	out := make([]dto.CustomerResponse, 0)
	if len(q) < 2 {
		return out, nil
	}
	list, err := uc.customers.QuickSearch(q, quickSearchLimit)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// Calls historial de llamadas de un cliente, más recientes primero.
func (uc *CustomerUseCase) Calls(id int64) ([]dto.CallLogResponse, error) {
	list, err := uc.logs.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	return dto.NewCallLogResponses(list), nil
}

// CheckMobile indica si ya existe un cliente con ese teléfono.
func (uc *CustomerUseCase) CheckMobile(mobile string) (bool, error) {
	return uc.customers.ExistsByPhone(mobile)
}
