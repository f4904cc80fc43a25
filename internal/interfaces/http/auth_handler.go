package http

import (
	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/arjunaprint/printdesk-core/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler maneja POST /login contra la lista de usuarios semilla.
type AuthHandler struct {
	users     []entity.User
	jwtSecret string
	jwtIssuer string
	jwtExpMin int
}

// NewAuthHandler construye el handler.
func NewAuthHandler(users []entity.User, secret, issuer string, expMin int) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: secret, jwtIssuer: issuer, jwtExpMin: expMin}
}

// Login valida email y credencial (bcrypt, solo cuentas Active) y emite
// un JWT. Las credenciales rechazadas responden 401 con success=false.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.LoginEnvelope{Success: false, Message: "cuerpo inválido"})
	}

	var match *entity.User
	for i := range h.users {
		if h.users[i].Email == in.Email {
			match = &h.users[i]
			break
		}
	}
	if match == nil || bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(in.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.LoginEnvelope{Success: false, Message: "email o contraseña incorrectos"})
	}
	if match.Status != entity.StatusActive {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.LoginEnvelope{Success: false, Message: "la cuenta está inactiva"})
	}

	token, err := jwt.Generate(h.jwtSecret, match.Email, match.Role, h.jwtIssuer, h.jwtExpMin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.LoginEnvelope{Success: false, Message: "no se pudo emitir el token"})
	}

	return c.JSON(dto.LoginEnvelope{
		Success: true,
		Message: "login correcto",
		Data: &dto.LoginData{
			Token: token,
			User:  dto.UserWireFrom(*match),
			Roles: []string{match.Role},
		},
	})
}
