package dto

// LoginRequest payload de POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData datos devueltos por el backend tras un login correcto.
type LoginData struct {
	Token string   `json:"token"`
	User  UserWire `json:"user"`
	Roles []string `json:"roles"`
}

// LoginEnvelope respuesta completa de POST /login. A diferencia del resto
// de endpoints, el login marca el resultado con el booleano success.
type LoginEnvelope struct {
	Success bool       `json:"success"`
	Data    *LoginData `json:"data"`
	Message string     `json:"message"`
}

// LoginResult resultado de autenticación a nivel de aplicación, ya
// normalizado: token, perfil y rol efectivo (el primero de roles).
type LoginResult struct {
	Token string
	User  UserWire
	Roles []string
}

// Role devuelve el rol efectivo: el primero de la lista o vacío.
func (r LoginResult) Role() string {
	if len(r.Roles) == 0 {
		return ""
	}
	return r.Roles[0]
}
