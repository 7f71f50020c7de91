package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentPlan plan de pago de la plataforma (tabla plan_pago).
type PaymentPlan struct {
	ID           string
	Name         string
	MonthlyPrice decimal.Decimal
	MaxProducts  int // 0 = sin límite
	MaxUsers     int // 0 = sin límite
	CreatedAt    time.Time
}
