package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/application/usecase"
	"github.com/jhoicas/callcrm-api/internal/domain"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	nextID    int64
	customers map[int64]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{nextID: 1, customers: map[int64]*entity.Customer{}}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) (int64, error) {
	id := f.nextID
	f.nextID++
	cp := *c
	cp.ID = id
	f.customers[id] = &cp
	return id, nil
}

func (f *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) List(repository.CustomerFilter, int, int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Count(repository.CustomerFilter) (int, error) {
	return len(f.customers), nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) (int64, error) {
	if _, ok := f.customers[c.ID]; !ok {
		return 0, nil
	}
	cp := *c
	f.customers[c.ID] = &cp
	return 1, nil
}

func (f *fakeCustomerRepo) Delete(id int64) (int64, error) {
	if _, ok := f.customers[id]; !ok {
		return 0, nil
	}
	delete(f.customers, id)
	return 1, nil
}

func (f *fakeCustomerRepo) UpdateLastContact(int64, time.Time) error { return nil }
func (f *fakeCustomerRepo) QuickSearch(string, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) ExistsByPhone(string) (bool, error) { return false, nil }

// fakeCallCounter solo implementa los conteos de dependencias.
type fakeCallCounter struct {
	byCustomer map[int64]int
	byEmployee map[int64]int
}

func (f *fakeCallCounter) Insert(*entity.CallLog) (int64, error)        { return 0, nil }
func (f *fakeCallCounter) GetByID(int64) (*entity.CallLog, error)       { return nil, nil }
func (f *fakeCallCounter) GetDetail(int64) (*entity.CallLogDetail, error) { return nil, nil }
func (f *fakeCallCounter) List(repository.CallLogFilter, int, int) ([]*entity.CallLogDetail, error) {
	return nil, nil
}
func (f *fakeCallCounter) Count(repository.CallLogFilter) (int, error) { return 0, nil }
func (f *fakeCallCounter) Update(*entity.CallLog) (int64, error)       { return 0, nil }
func (f *fakeCallCounter) Delete(int64) (int64, error)                 { return 0, nil }
func (f *fakeCallCounter) ListByCustomer(int64) ([]*entity.CallLogDetail, error) {
	return nil, nil
}
func (f *fakeCallCounter) ListRecent(int64, int) ([]*entity.CallLogDetail, error) {
	return nil, nil
}
func (f *fakeCallCounter) CountByCustomer(id int64) (int, error) { return f.byCustomer[id], nil }
func (f *fakeCallCounter) CountByEmployee(id int64) (int, error) { return f.byEmployee[id], nil }
func (f *fakeCallCounter) ListFollowups(int64, repository.FollowupRange) ([]*entity.CallLogDetail, error) {
	return nil, nil
}
func (f *fakeCallCounter) CountFollowupsFrom(int64, time.Time) (int, error) { return 0, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests CustomerUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_NormalizaPAN(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo(), &fakeCallCounter{})

	out, err := uc.Create(dto.CustomerRequest{
		Name:      "Cliente Uno",
		Phone:     "5550001",
		PANNumber: "abcde1234f",
	})
	require.NoError(t, err)
	assert.Equal(t, "ABCDE1234F", out.PANNumber)
	assert.Equal(t, entity.CustomerActive, out.Status, "status por defecto")
}

func TestCustomerCreate_Invalido(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo(), &fakeCallCounter{})

	_, err := uc.Create(dto.CustomerRequest{Name: "X", Phone: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CustomerRequest{Name: "Cliente Uno", Phone: "5550001", Status: "Otro"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerDelete_ConLlamadasFalla(t *testing.T) {
	customers := newFakeCustomerRepo()
	id, err := customers.Create(&entity.Customer{Name: "Cliente Uno", Phone: "5550001", Status: "Active"})
	require.NoError(t, err)

	counter := &fakeCallCounter{byCustomer: map[int64]int{id: 3}}
	uc := usecase.NewCustomerUseCase(customers, counter)

	err = uc.Delete(id)
	assert.ErrorIs(t, err, domain.ErrDependencyExists)

	// Sin llamadas sí se borra; repetir da not found.
	counter.byCustomer[id] = 0
	require.NoError(t, uc.Delete(id))
	assert.ErrorIs(t, uc.Delete(id), domain.ErrNotFound)
}

func TestCustomerQuickSearch_MinimoDosCaracteres(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo(), &fakeCallCounter{})

	out, err := uc.QuickSearch("a")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out, "consultas de un carácter no tocan el repositorio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests EmployeeUseCase (guardas de auto-modificación)
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	nextID    int64
	employees map[int64]*entity.Employee
}

func newFakeEmployeeRepo(seed ...*entity.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{nextID: 1, employees: map[int64]*entity.Employee{}}
	for _, e := range seed {
		cp := *e
		cp.ID = f.nextID
		f.employees[f.nextID] = &cp
		f.nextID++
	}
	return f
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) (int64, error) {
	id := f.nextID
	f.nextID++
	cp := *e
	cp.ID = id
	f.employees[id] = &cp
	return id, nil
}
func (f *fakeEmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}
func (f *fakeEmployeeRepo) GetByEmail(string) (*entity.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) List() ([]*entity.Employee, error)           { return nil, nil }
func (f *fakeEmployeeRepo) Update(e *entity.Employee) (int64, error) {
	if _, ok := f.employees[e.ID]; !ok {
		return 0, nil
	}
	cp := *e
	f.employees[e.ID] = &cp
	return 1, nil
}
func (f *fakeEmployeeRepo) UpdatePassword(id int64, _ string) (int64, error) {
	if _, ok := f.employees[id]; !ok {
		return 0, nil
	}
	return 1, nil
}
func (f *fakeEmployeeRepo) UpdateLastLogin(int64, time.Time) error { return nil }
func (f *fakeEmployeeRepo) Delete(id int64) (int64, error) {
	if _, ok := f.employees[id]; !ok {
		return 0, nil
	}
	delete(f.employees, id)
	return 1, nil
}

func TestEmployeeUpdate_GuardasDePropiaCuenta(t *testing.T) {
	repo := newFakeEmployeeRepo(&entity.Employee{
		Name: "Admin Uno", Email: "admin@example.com",
		Role: entity.RoleAdmin, Status: entity.EmployeeActive,
	})
	uc := usecase.NewEmployeeUseCase(repo, &fakeCallCounter{})

	// No puede quitarse el rol Admin.
	_, err := uc.Update(1, 1, dto.UpdateEmployeeRequest{
		Name: "Admin Uno", Email: "admin@example.com",
		Role: entity.RoleAgent, Status: entity.EmployeeActive,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// No puede desactivarse a sí mismo.
	_, err = uc.Update(1, 1, dto.UpdateEmployeeRequest{
		Name: "Admin Uno", Email: "admin@example.com",
		Role: entity.RoleAdmin, Status: entity.EmployeeInactive,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Sí puede editar sus otros datos.
	out, err := uc.Update(1, 1, dto.UpdateEmployeeRequest{
		Name: "Admin Renombrado", Email: "admin@example.com",
		Role: entity.RoleAdmin, Status: entity.EmployeeActive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Admin Renombrado", out.Name)
}

func TestEmployeeDelete_Guardas(t *testing.T) {
	repo := newFakeEmployeeRepo(
		&entity.Employee{Name: "Admin", Role: entity.RoleAdmin, Status: entity.EmployeeActive},
		&entity.Employee{Name: "Agente", Role: entity.RoleAgent, Status: entity.EmployeeActive},
	)
	counter := &fakeCallCounter{byEmployee: map[int64]int{2: 4}}
	uc := usecase.NewEmployeeUseCase(repo, counter)

	// Auto-borrado bloqueado.
	assert.ErrorIs(t, uc.Delete(1, 1), domain.ErrInvalidInput)

	// Con llamadas asociadas no se borra.
	assert.ErrorIs(t, uc.Delete(1, 2), domain.ErrDependencyExists)

	counter.byEmployee[2] = 0
	require.NoError(t, uc.Delete(1, 2))
}
