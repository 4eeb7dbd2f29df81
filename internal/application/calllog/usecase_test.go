package calllog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/callcrm-api/internal/application/calllog"
	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/domain"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/policy"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCallLogs struct {
	nextID int64
	logs   map[int64]*entity.CallLog
	names  map[int64]string // employee_id -> nombre (para el detalle)
}

func newFakeCallLogs() *fakeCallLogs {
	return &fakeCallLogs{nextID: 1, logs: map[int64]*entity.CallLog{}, names: map[int64]string{}}
}

func (f *fakeCallLogs) Insert(l *entity.CallLog) (int64, error) {
	id := f.nextID
	f.nextID++
	cp := *l
	cp.ID = id
	f.logs[id] = &cp
	return id, nil
}

func (f *fakeCallLogs) GetByID(id int64) (*entity.CallLog, error) {
	l, ok := f.logs[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeCallLogs) GetDetail(id int64) (*entity.CallLogDetail, error) {
	l, ok := f.logs[id]
	if !ok {
		return nil, nil
	}
	return &entity.CallLogDetail{
		CallLog:      *l,
		CustomerName: "Cliente Uno",
		EmployeeName: f.names[l.EmployeeID],
	}, nil
}

func (f *fakeCallLogs) List(fl repository.CallLogFilter, limit, offset int) ([]*entity.CallLogDetail, error) {
	var out []*entity.CallLogDetail
	skipped := 0
	for id := int64(1); id < f.nextID; id++ {
		l, ok := f.logs[id]
		if !ok {
			continue
		}
		if fl.EmployeeID != 0 && l.EmployeeID != fl.EmployeeID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, &entity.CallLogDetail{CallLog: *l})
	}
	return out, nil
}

func (f *fakeCallLogs) Count(fl repository.CallLogFilter) (int, error) {
	n := 0
	for _, l := range f.logs {
		if fl.EmployeeID == 0 || l.EmployeeID == fl.EmployeeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCallLogs) Update(l *entity.CallLog) (int64, error) {
	if _, ok := f.logs[l.ID]; !ok {
		return 0, nil
	}
	cp := *l
	f.logs[l.ID] = &cp
	return 1, nil
}

func (f *fakeCallLogs) Delete(id int64) (int64, error) {
	if _, ok := f.logs[id]; !ok {
		return 0, nil
	}
	delete(f.logs, id)
	return 1, nil
}

func (f *fakeCallLogs) ListByCustomer(int64) ([]*entity.CallLogDetail, error) { return nil, nil }
func (f *fakeCallLogs) ListRecent(employeeID int64, limit int) ([]*entity.CallLogDetail, error) {
	return f.List(repository.CallLogFilter{EmployeeID: employeeID}, limit, 0)
}
func (f *fakeCallLogs) CountByCustomer(int64) (int, error) { return 0, nil }
func (f *fakeCallLogs) CountByEmployee(int64) (int, error) { return 0, nil }
func (f *fakeCallLogs) ListFollowups(int64, repository.FollowupRange) ([]*entity.CallLogDetail, error) {
	return nil, nil
}
func (f *fakeCallLogs) CountFollowupsFrom(int64, time.Time) (int, error) { return 0, nil }

type fakeCustomers struct {
	customers   map[int64]*entity.Customer
	lastContact map[int64]time.Time
}

func newFakeCustomers(ids ...int64) *fakeCustomers {
	f := &fakeCustomers{customers: map[int64]*entity.Customer{}, lastContact: map[int64]time.Time{}}
	for _, id := range ids {
		f.customers[id] = &entity.Customer{ID: id, Name: "Cliente Uno", Phone: "5550001", Status: entity.CustomerActive}
	}
	return f
}

func (f *fakeCustomers) Create(*entity.Customer) (int64, error) { return 0, nil }
func (f *fakeCustomers) GetByID(id int64) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (f *fakeCustomers) List(repository.CustomerFilter, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomers) Count(repository.CustomerFilter) (int, error) { return 0, nil }
func (f *fakeCustomers) Update(*entity.Customer) (int64, error)       { return 0, nil }
func (f *fakeCustomers) Delete(int64) (int64, error)                  { return 0, nil }
func (f *fakeCustomers) UpdateLastContact(id int64, at time.Time) error {
	f.lastContact[id] = at
	return nil
}
func (f *fakeCustomers) QuickSearch(string, int) ([]*entity.Customer, error) { return nil, nil }
func (f *fakeCustomers) ExistsByPhone(string) (bool, error)                  { return false, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

var (
	admin = policy.Actor{ID: 1, Role: entity.RoleAdmin}
	agent = policy.Actor{ID: 2, Role: entity.RoleAgent}
	other = policy.Actor{ID: 3, Role: entity.RoleAgent}

	fixedNow = time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
)

func buildUseCase(t *testing.T) (*calllog.UseCase, *fakeCallLogs, *fakeCustomers) {
	t.Helper()
	logs := newFakeCallLogs()
	logs.names[agent.ID] = "Agente Dos"
	customers := newFakeCustomers(1)
	uc := calllog.NewUseCase(logs, customers, nil, policy.New(24*time.Hour)).
		WithClock(func() time.Time { return fixedNow })
	return uc, logs, customers
}

func validCreate() dto.CreateCallLogRequest {
	return dto.CreateCallLogRequest{
		CustomerID:  1,
		CallType:    string(entity.CallOutgoing),
		CallPurpose: string(entity.PurposeKYCUpdate),
		Notes:       "se solicita actualización de KYC",
	}
}

func TestCreate_RegistraYActualizaUltimoContacto(t *testing.T) {
	uc, logs, customers := buildUseCase(t)

	out, err := uc.Create(agent, validCreate())
	require.NoError(t, err)

	// El dueño es el actor, no algo del cuerpo.
	assert.Equal(t, agent.ID, out.EmployeeID)
	assert.Equal(t, "Agente Dos", out.EmployeeName)
	assert.Equal(t, "Cliente Uno", out.CustomerName)

	// Defaults aplicados.
	assert.Equal(t, string(entity.StatusConnected), out.CallStatus)
	assert.Equal(t, string(entity.PriorityManageable), out.Priority)
	assert.Equal(t, fixedNow, out.CallDatetime)

	// Efecto lateral: last_contact_date del cliente quedó en la fecha de llamada.
	assert.Equal(t, fixedNow, customers.lastContact[1])
	assert.Len(t, logs.logs, 1)
}

func TestCreate_ClienteInexistente(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	in := validCreate()
	in.CustomerID = 99
	_, err := uc.Create(agent, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ValidacionDeNotas(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	in := validCreate()
	in.Notes = "corta"
	_, err := uc.Create(agent, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_AgentNoVeRegistrosAjenos(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	created, err := uc.Create(agent, validCreate())
	require.NoError(t, err)

	_, err = uc.Get(other, created.CallID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admin y el propio dueño sí.
	_, err = uc.Get(admin, created.CallID)
	assert.NoError(t, err)
	_, err = uc.Get(agent, created.CallID)
	assert.NoError(t, err)
}

func validUpdate() dto.UpdateCallLogRequest {
	return dto.UpdateCallLogRequest{
		CallDatetime: fixedNow,
		CallType:     string(entity.CallOutgoing),
		CallPurpose:  string(entity.PurposePaymentRefund),
		CallStatus:   string(entity.StatusConnected),
		Priority:     string(entity.PriorityImportant),
		Notes:        "notas corregidas del registro",
	}
}

func TestUpdate_DentroDeLaVentana(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	created, err := uc.Create(agent, validCreate())
	require.NoError(t, err)

	out, err := uc.Update(agent, created.CallID, validUpdate())
	require.NoError(t, err)
	assert.Equal(t, string(entity.PurposePaymentRefund), out.CallPurpose)
	assert.Equal(t, string(entity.PriorityImportant), out.Priority)
}

func TestUpdate_VentanaExpirada(t *testing.T) {
	logs := newFakeCallLogs()
	customers := newFakeCustomers(1)
	uc := calllog.NewUseCase(logs, customers, nil, policy.New(24*time.Hour)).
		WithClock(func() time.Time { return fixedNow })

	created, err := uc.Create(agent, validCreate())
	require.NoError(t, err)

	// Avanzar el reloj más allá de la ventana de 24h.
	uc.WithClock(func() time.Time { return fixedNow.Add(25 * time.Hour) })

	_, err = uc.Update(agent, created.CallID, validUpdate())
	assert.ErrorIs(t, err, domain.ErrEditWindowExpired)

	// Admin edita igual.
	_, err = uc.Update(admin, created.CallID, validUpdate())
	assert.NoError(t, err)
}

func TestUpdate_AgentNoEditaAjenos(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	created, err := uc.Create(agent, validCreate())
	require.NoError(t, err)

	_, err = uc.Update(other, created.CallID, validUpdate())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDelete_SoloAdmin(t *testing.T) {
	uc, logs, _ := buildUseCase(t)
	created, err := uc.Create(agent, validCreate())
	require.NoError(t, err)

	// El dueño Agent no puede borrar, ni siquiera lo propio.
	err = uc.Delete(agent, created.CallID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Delete(admin, created.CallID))
	assert.Empty(t, logs.logs)

	// Borrar lo ya borrado: not found, no silencioso.
	assert.ErrorIs(t, uc.Delete(admin, created.CallID), domain.ErrNotFound)
}

func TestList_ScopingPorRol(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	_, err := uc.Create(agent, validCreate())
	require.NoError(t, err)
	_, err = uc.Create(other, validCreate())
	require.NoError(t, err)

	// Agent solo ve lo suyo aunque pida otro employeeId.
	out, err := uc.List(agent, dto.ListCallLogsQuery{EmployeeID: other.ID})
	require.NoError(t, err)
	require.Len(t, out.CallLogs, 1)
	assert.Equal(t, agent.ID, out.CallLogs[0].EmployeeID)
	assert.Equal(t, 1, out.Pagination.Total)

	// Admin sin filtro ve todo.
	all, err := uc.List(admin, dto.ListCallLogsQuery{})
	require.NoError(t, err)
	assert.Len(t, all.CallLogs, 2)
	assert.Equal(t, 2, all.Pagination.Total)
}

func TestList_PaginaPosteriorALaUltima(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	_, err := uc.Create(agent, validCreate())
	require.NoError(t, err)

	out, err := uc.List(admin, dto.ListCallLogsQuery{
		PageRequest: dto.PageRequest{Page: 5, Limit: 10},
	})
	require.NoError(t, err)
	assert.NotNil(t, out.CallLogs)
	assert.Empty(t, out.CallLogs, "página fuera de rango devuelve lista vacía, no error")
	assert.Equal(t, 1, out.Pagination.Total)
	assert.Equal(t, 1, out.Pagination.TotalPages)
}
