package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentPlanRequest entrada para crear un plan de pago (super_admin).
type CreatePaymentPlanRequest struct {
	Name         string          `json:"name" validate:"required"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	MaxProducts  int             `json:"max_products"`
	MaxUsers     int             `json:"max_users"`
}

// PaymentPlanResponse salida de un plan de pago.
type PaymentPlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	MaxProducts  int             `json:"max_products"`
	MaxUsers     int             `json:"max_users"`
	CreatedAt    time.Time       `json:"created_at"`
}
