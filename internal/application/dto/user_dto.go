package dto

import "github.com/arjunaprint/printdesk-core/internal/domain/entity"

// UserWire forma de cable de un usuario. El hash de credencial nunca
// viaja en respuestas.
type UserWire struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	JoinDate string `json:"join_date"`
}

// ToEntity normaliza la forma de cable al modelo de dominio.
func (w UserWire) ToEntity() entity.User {
	return entity.User{
		ID:       w.ID,
		Name:     w.Name,
		Email:    w.Email,
		Role:     w.Role,
		Status:   w.Status,
		JoinDate: w.JoinDate,
	}
}

// UserWireFrom construye la forma de cable desde el dominio.
func UserWireFrom(u entity.User) UserWire {
	return UserWire{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Status:   u.Status,
		JoinDate: u.JoinDate,
	}
}

// CreateUserRequest payload de POST /user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserListResponse respuesta de GET /user.
type UserListResponse struct {
	Status     string         `json:"status"`
	Data       []UserWire     `json:"data"`
	Pagination WirePagination `json:"pagination"`
	Message    string         `json:"message"`
}

// UserResponse respuesta de POST /user.
type UserResponse struct {
	Status  string    `json:"status"`
	Data    *UserWire `json:"data"`
	Message string    `json:"message"`
}
