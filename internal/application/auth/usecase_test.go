package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Microgestion-api/internal/application/auth"
	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users      map[string]*entity.User // key: ID
	lookupErr  error                   // fuerza fallo en GetByEmailAndTenant
	createdIDs []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email && existing.TenantID == u.TenantID {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	r.createdIDs = append(r.createdIDs, u.ID)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailAndTenant(email, tenantID string) (*entity.User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, u := range r.users {
		if u.Email == email && u.TenantID == tenantID {
			return u, nil
		}
	}
	return nil, nil
}

type fakeAuthCompanyRepo struct{ companies map[string]*entity.Company }

func (r *fakeAuthCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *fakeAuthCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeAuthCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }
func (r *fakeAuthCompanyRepo) Update(*entity.Company) error             { return nil }
func (r *fakeAuthCompanyRepo) NextSaleNumber(string) (int64, error)     { return 0, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

const authTenant = "tenant-auth"

func setupAuth(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	companyRepo := &fakeAuthCompanyRepo{companies: map[string]*entity.Company{
		authTenant: {ID: authTenant, Name: "Tienda La Esquina"},
	}}
	uc := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "microgestion-test",
	})
	return uc, userRepo
}

func TestRegisterUser_RegistraYPermiteLogin(t *testing.T) {
	uc, _ := setupAuth(t)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		TenantID: authTenant,
		Email:    "ana@tienda.co",
		Password: "clave-segura",
		Name:     "Ana Gómez",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleVendedor, out.Role, "sin rol explícito se asigna vendedor")
	assert.Equal(t, "active", out.Status)

	login, err := uc.Login(dto.LoginRequest{Email: "ana@tienda.co", Password: "clave-segura"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, out.ID, login.User.ID)
}

func TestRegisterUser_EmailDuplicadoRechazado(t *testing.T) {
	uc, _ := setupAuth(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		TenantID: authTenant, Email: "ana@tienda.co", Password: "clave-segura",
	})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{
		TenantID: authTenant, Email: "ana@tienda.co", Password: "otra-clave-123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_FalloDeLecturaNoSeTragaElError(t *testing.T) {
	uc, userRepo := setupAuth(t)
	userRepo.lookupErr = assert.AnError

	_, err := uc.RegisterUser(dto.RegisterRequest{
		TenantID: authTenant, Email: "ana@tienda.co", Password: "clave-segura",
	})
	assert.ErrorIs(t, err, assert.AnError,
		"un fallo al verificar el email no debe leerse como email libre")
	assert.Empty(t, userRepo.createdIDs, "no debe llegar a crear el usuario")
}

func TestRegisterUser_MicroempresaInexistenteRechazada(t *testing.T) {
	uc, _ := setupAuth(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		TenantID: "tenant-fantasma", Email: "ana@tienda.co", Password: "clave-segura",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterUser_RolSuperAdminNoAsignable(t *testing.T) {
	uc, _ := setupAuth(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		TenantID: authTenant, Email: "ana@tienda.co", Password: "clave-segura",
		Role: domain.RoleSuperAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_PasswordIncorrectoNoAutorizado(t *testing.T) {
	uc, userRepo := setupAuth(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-correcta"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.users["u1"] = &entity.User{
		ID: "u1", TenantID: authTenant, Email: "ana@tienda.co",
		PasswordHash: string(hash), Role: domain.RoleAdmin, Status: "active",
	}

	_, err = uc.Login(dto.LoginRequest{Email: "ana@tienda.co", Password: "clave-incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivoProhibido(t *testing.T) {
	uc, userRepo := setupAuth(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.users["u1"] = &entity.User{
		ID: "u1", TenantID: authTenant, Email: "ana@tienda.co",
		PasswordHash: string(hash), Role: domain.RoleAdmin, Status: "suspended",
	}

	_, err = uc.Login(dto.LoginRequest{Email: "ana@tienda.co", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
