package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Microgestion-api/internal/domain"
)

func TestTenantFor_AdminAtadoASuMicroempresa(t *testing.T) {
	scope := domain.Scope{TenantID: "tenant-a", Role: domain.RoleAdmin}

	got, err := scope.TenantFor("")
	require.NoError(t, err)
	assert.Equal(t, "tenant-a", got)

	// Pedir explícitamente la propia microempresa también funciona.
	got, err = scope.TenantFor("tenant-a")
	require.NoError(t, err)
	assert.Equal(t, "tenant-a", got)
}

func TestTenantFor_AdminNoPuedeCruzarTenant(t *testing.T) {
	scope := domain.Scope{TenantID: "tenant-a", Role: domain.RoleAdmin}

	_, err := scope.TenantFor("tenant-b")
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un admin no debe poder operar sobre otra microempresa")
}

func TestTenantFor_VendedorSinTenantNoAutorizado(t *testing.T) {
	scope := domain.Scope{TenantID: "", Role: domain.RoleVendedor}

	_, err := scope.TenantFor("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTenantFor_SuperAdminPuedeDirigirseACualquierTenant(t *testing.T) {
	scope := domain.Scope{TenantID: "", Role: domain.RoleSuperAdmin}

	got, err := scope.TenantFor("tenant-b")
	require.NoError(t, err)
	assert.Equal(t, "tenant-b", got)
}

func TestTenantFor_SuperAdminSinMicroempresaExplicitaRechazado(t *testing.T) {
	scope := domain.Scope{TenantID: "", Role: domain.RoleSuperAdmin}

	_, err := scope.TenantFor("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"la microempresa efectiva nunca debe resolver vacía")
}

func TestIsSuperAdmin(t *testing.T) {
	assert.True(t, domain.Scope{Role: domain.RoleSuperAdmin}.IsSuperAdmin())
	assert.False(t, domain.Scope{Role: domain.RoleAdmin}.IsSuperAdmin())
	assert.False(t, domain.Scope{Role: domain.RoleVendedor}.IsSuperAdmin())
}
