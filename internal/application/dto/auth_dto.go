package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse par de tokens más el usuario autenticado.
type LoginResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	User         EmployeeResponse `json:"user"`
}

// RefreshRequest solicitud de un nuevo token de acceso.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse nuevo token de acceso.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// ChangePasswordRequest cambio de contraseña del propio usuario.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
