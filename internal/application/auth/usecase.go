package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/domain"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
	"github.com/jhoicas/callcrm-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret         string
	ExpMinutes     int
	RefreshSecret  string
	RefreshExpDays int
	Issuer         string
}

// AuthUseCase casos de uso de autenticación: login, refresh y contraseñas.
type AuthUseCase struct {
	employees repository.EmployeeRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employees repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employees: employees, jwtCfg: jwtCfg}
}

// Login verifica email/password, actualiza last_login y devuelve el par
// de tokens. Cuentas inactivas fallan con ErrForbidden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	emp, err := uc.employees.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !emp.IsActive() {
		return nil, domain.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := jwt.Generate(uc.jwtCfg.Secret, emp.ID, emp.Email, emp.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.RefreshSecret, emp.ID, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpDays)
	if err != nil {
		return nil, err
	}

	// El registro de last_login es efecto lateral: un fallo aquí no debe
	// impedir el login.
	_ = uc.employees.UpdateLastLogin(emp.ID, time.Now())

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.NewEmployeeResponse(emp),
	}, nil
}

// Refresh valida el token de refresco y emite un nuevo token de acceso.
// La cuenta debe seguir existiendo y estar activa.
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	if in.RefreshToken == "" {
		return nil, domain.ErrUnauthorized
	}
	employeeID, err := jwt.ParseRefresh(uc.jwtCfg.RefreshSecret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	emp, err := uc.employees.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil || !emp.IsActive() {
		return nil, domain.ErrForbidden
	}
	access, err := jwt.Generate(uc.jwtCfg.Secret, emp.ID, emp.Email, emp.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

// Me devuelve el empleado autenticado.
func (uc *AuthUseCase) Me(employeeID int64) (*dto.EmployeeResponse, error) {
	emp, err := uc.employees.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewEmployeeResponse(emp)
	return &out, nil
}

// ChangePassword verifica la contraseña actual y persiste el nuevo hash.
func (uc *AuthUseCase) ChangePassword(employeeID int64, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 6 {
		return domain.ErrInvalidInput
	}
	emp, err := uc.employees.GetByID(employeeID)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = uc.employees.UpdatePassword(employeeID, string(hash))
	return err
}
