// Package nav contiene el guard de navegación: una función de decisión
// pura que se evalúa en cada transición de ruta consultando la sesión
// actual contra una tabla declarativa de capacidades por ruta.
package nav

import (
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
)

// Nombres de ruta de la aplicación.
const (
	RouteLogin     = "Login"
	RouteDashboard = "Dashboard"
	RouteInventory = "Inventory"
	RouteInvoices  = "Invoices"
	RouteReports   = "Reports"
	RouteUsers     = "Users"
)

// Route metadatos declarativos de una ruta.
type Route struct {
	Name         string
	Path         string
	RequiresAuth bool
	RequiredRole string // vacío = cualquier rol autenticado
}

// Routes es la tabla de capacidades por nombre de ruta. La gestión de
// usuarios es exclusiva del rol Admin.
var Routes = map[string]Route{
	RouteLogin:     {Name: RouteLogin, Path: "/login"},
	RouteDashboard: {Name: RouteDashboard, Path: "/", RequiresAuth: true},
	RouteInventory: {Name: RouteInventory, Path: "/inventory", RequiresAuth: true},
	RouteInvoices:  {Name: RouteInvoices, Path: "/invoices", RequiresAuth: true},
	RouteReports:   {Name: RouteReports, Path: "/reports", RequiresAuth: true},
	RouteUsers:     {Name: RouteUsers, Path: "/users", RequiresAuth: true, RequiredRole: entity.RoleAdmin},
}

// Action resultado de la evaluación del guard.
type Action int

const (
	// Allow permite la transición.
	Allow Action = iota
	// RedirectHome redirige a la ruta de aterrizaje (usuario ya autenticado
	// intentando entrar al login).
	RedirectHome
	// RedirectLogin redirige al login (ruta protegida sin sesión).
	RedirectLogin
	// Block bloquea por rol insuficiente y redirige a una ruta segura.
	Block
)

// Decision resultado completo: acción, ruta destino efectiva y motivo
// presentable cuando se bloquea.
type Decision struct {
	Action Action
	Target string // nombre de ruta a la que navegar realmente
	Reason string // motivo de denegación, vacío si no aplica
	Notify bool   // la UI debe mostrar una notificación de acceso denegado
}

// Evaluate decide una transición hacia target dada la sesión y la ruta
// previa (para el fallback al bloquear; vacía = Dashboard). La tabla se
// evalúa en orden y la función no tiene efectos secundarios.
func Evaluate(target string, session entity.Session, previous string) Decision {
	route, known := Routes[target]
	if !known {
		// Ruta desconocida: se trata como protegida para no abrir huecos.
		route = Route{Name: target, RequiresAuth: true}
	}

	// 1. Login con sesión activa → a la ruta de aterrizaje.
	if route.Name == RouteLogin && session.IsAuthenticated {
		return Decision{Action: RedirectHome, Target: RouteDashboard}
	}

	// 2. Ruta protegida sin sesión → al login.
	if route.RequiresAuth && !session.IsAuthenticated {
		return Decision{Action: RedirectLogin, Target: RouteLogin}
	}

	// 3. Rol insuficiente → bloqueo con notificación y ruta de repliegue
	// (la ruta previa, o el Dashboard si no hay).
	if route.RequiredRole != "" && session.Role != route.RequiredRole {
		fallback := previous
		if fallback == "" || fallback == target {
			fallback = RouteDashboard
		}
		return Decision{
			Action: Block,
			Target: fallback,
			Reason: "acceso denegado: se requiere rol " + route.RequiredRole,
			Notify: true,
		}
	}

	// 4. Todo lo demás pasa.
	return Decision{Action: Allow, Target: target}
}
