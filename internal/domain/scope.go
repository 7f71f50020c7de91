package domain

// Roles de la plataforma. RoleSuperAdmin opera sobre cualquier microempresa.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleVendedor   = "vendedor"
)

// Scope identifica la microempresa y el rol del llamador. Toda operación de
// lectura/escritura lo recibe como parámetro obligatorio; así ninguna query
// puede olvidar el filtro por tenant.
type Scope struct {
	TenantID string
	Role     string
}

// IsSuperAdmin indica si el llamador puede operar entre microempresas.
func (s Scope) IsSuperAdmin() bool {
	return s.Role == RoleSuperAdmin
}

// TenantFor resuelve la microempresa efectiva de una operación.
// Un super_admin puede dirigirse a una microempresa explícita (requested);
// cualquier otro rol queda atado a la suya y requested debe coincidir o venir vacío.
// La microempresa efectiva nunca resuelve vacía: un super_admin global que no
// indique una explícita recibe ErrInvalidInput en lugar de filtrar por "".
func (s Scope) TenantFor(requested string) (string, error) {
	if s.IsSuperAdmin() {
		if requested != "" {
			return requested, nil
		}
		if s.TenantID == "" {
			return "", ErrInvalidInput
		}
		return s.TenantID, nil
	}
	if s.TenantID == "" {
		return "", ErrUnauthorized
	}
	if requested != "" && requested != s.TenantID {
		return "", ErrForbidden
	}
	return s.TenantID, nil
}
