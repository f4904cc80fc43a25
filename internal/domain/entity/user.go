package entity

// Roles válidos para User.
const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

// Estados de cuenta.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// User representa un usuario del sistema.
// Solo los usuarios con Status Active pueden autenticarse.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`        // bcrypt hash, nunca viaja en respuestas
	Role         string `json:"role"`     // Admin | Staff
	Status       string `json:"status"`   // Active | Inactive
	JoinDate     string `json:"joinDate"` // YYYY-MM-DD
}
