package policy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/callcrm-api/internal/domain"
	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	"github.com/jhoicas/callcrm-api/internal/domain/policy"
)

var (
	admin = policy.Actor{ID: 1, Role: entity.RoleAdmin}
	agent = policy.Actor{ID: 2, Role: entity.RoleAgent}
)

func logOwnedBy(employeeID int64, createdAt time.Time) *entity.CallLog {
	return &entity.CallLog{ID: 10, EmployeeID: employeeID, CreatedAt: createdAt}
}

func TestCanViewCallLog(t *testing.T) {
	now := time.Now()

	t.Run("admin ve cualquier registro", func(t *testing.T) {
		assert.NoError(t, policy.New(0).CanViewCallLog(admin, logOwnedBy(99, now)))
	})
	t.Run("agent ve lo propio", func(t *testing.T) {
		assert.NoError(t, policy.New(0).CanViewCallLog(agent, logOwnedBy(agent.ID, now)))
	})
	t.Run("agent no ve registros ajenos", func(t *testing.T) {
		err := policy.New(0).CanViewCallLog(agent, logOwnedBy(3, now))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestCanEditCallLog_VentanaDeEdicion(t *testing.T) {
	pol := policy.New(24 * time.Hour)
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("dentro de la ventana", func(t *testing.T) {
		now := created.Add(23 * time.Hour)
		assert.NoError(t, pol.CanEditCallLog(agent, logOwnedBy(agent.ID, created), now))
	})
	t.Run("exactamente en el limite todavia se permite", func(t *testing.T) {
		now := created.Add(24 * time.Hour)
		assert.NoError(t, pol.CanEditCallLog(agent, logOwnedBy(agent.ID, created), now))
	})
	t.Run("pasado el limite expira", func(t *testing.T) {
		now := created.Add(24*time.Hour + time.Second)
		err := pol.CanEditCallLog(agent, logOwnedBy(agent.ID, created), now)
		assert.ErrorIs(t, err, domain.ErrEditWindowExpired)
	})
	t.Run("admin edita sin importar la antiguedad", func(t *testing.T) {
		now := created.Add(30 * 24 * time.Hour)
		assert.NoError(t, pol.CanEditCallLog(admin, logOwnedBy(agent.ID, created), now))
	})
	t.Run("agent no edita registros ajenos aunque sean recientes", func(t *testing.T) {
		err := pol.CanEditCallLog(agent, logOwnedBy(3, created), created.Add(time.Minute))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestCanDeleteCallLog_SoloAdmin(t *testing.T) {
	pol := policy.New(0)
	assert.NoError(t, pol.CanDeleteCallLog(admin))
	assert.ErrorIs(t, pol.CanDeleteCallLog(agent), domain.ErrForbidden)
}

func TestScopeEmployee(t *testing.T) {
	// Agent queda fijado a su propio ID sin importar lo que pida.
	assert.Equal(t, agent.ID, policy.ScopeEmployee(agent, 0))
	assert.Equal(t, agent.ID, policy.ScopeEmployee(agent, 99))

	// Admin puede pedir cualquier empleado o todo (0).
	assert.Equal(t, int64(99), policy.ScopeEmployee(admin, 99))
	assert.Equal(t, int64(0), policy.ScopeEmployee(admin, 0))
}

func TestNew_VentanaPorDefecto(t *testing.T) {
	require.Equal(t, policy.DefaultEditWindow, policy.New(0).EditWindow)
	require.Equal(t, 48*time.Hour, policy.New(48*time.Hour).EditWindow)
}
