package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Taxonomía: fallos de transporte (red / respuesta no-2xx), de forma
// (respuesta mal formada), de autenticación y de existencia. Los stores
// los devuelven envueltos con %w para conservar el contexto.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrTransport          = errors.New("error de red o servicio remoto no disponible")
	ErrInvalidResponse    = errors.New("respuesta remota con formato inesperado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("email o contraseña incorrectos")
	ErrInactiveAccount    = errors.New("la cuenta está inactiva")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
)
