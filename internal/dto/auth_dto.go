package dto

type LoginRequest struct {
	DNI      string `json:"dni" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserInfo `json:"user"`
}

// UserInfo carries the logged-in operator's profile. Field names match the
// legacy schema for frontend compatibility.
type UserInfo struct {
	IDPersonal      int    `json:"idPersonal"`
	Nombre          string `json:"nombre"`
	DNI             string `json:"dni"`
	Encargado       int16  `json:"encargado"`
	TipoDeProcesoID *int   `json:"tipo_de_proceso_id"`
}
