package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userCols = `id, microempresa_id, email, password_hash, nombre, rol, estado, created_at, updated_at`

// Create persiste un nuevo usuario. microempresa_id queda NULL para un
// super_admin global.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO usuario (id, microempresa_id, email, password_hash, nombre, rol, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, nullIfEmpty(u.TenantID), u.Email, u.PasswordHash, u.Name, u.Role, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userCols+` FROM usuario WHERE id = $1`, id)
}

// FindByEmail busca un usuario por email (login).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userCols+` FROM usuario WHERE email = $1`, email)
}

// GetByEmailAndTenant busca un usuario por email dentro de una microempresa.
func (r *UserRepo) GetByEmailAndTenant(email, tenantID string) (*entity.User, error) {
	return r.getOne(`SELECT `+userCols+` FROM usuario WHERE email = $1 AND microempresa_id = $2`, email, tenantID)
}

func (r *UserRepo) getOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	var tenantID *string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &tenantID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	if tenantID != nil {
		u.TenantID = *tenantID
	}
	return &u, nil
}
