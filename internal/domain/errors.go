package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEditWindowExpired  = errors.New("ventana de edición expirada")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrDependencyExists   = errors.New("existen registros dependientes")
	ErrInvalidInput       = errors.New("entrada inválida")
)
