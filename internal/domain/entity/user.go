package entity

import "time"

// User usuario de la plataforma. Role: super_admin | admin | vendedor.
// Un super_admin puede tener TenantID vacío (opera entre microempresas).
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
