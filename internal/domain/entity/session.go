package entity

// Session es el contexto de identidad y rol de la pestaña/proceso actual.
// Invariante: Role es no vacío si y solo si IsAuthenticated es true; en
// modo live Token está presente siempre que haya sesión.
type Session struct {
	IsAuthenticated bool
	Role            string // Admin | Staff | "" (sin sesión)
	Token           string // credencial bearer, opaca para el core
	Profile         *User  // perfil del usuario autenticado, si se conoce
}

// Clear deja la sesión en estado no autenticado.
func (s *Session) Clear() {
	s.IsAuthenticated = false
	s.Role = ""
	s.Token = ""
	s.Profile = nil
}
