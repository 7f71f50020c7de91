package receipt

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
)

// SaleLineForPDF línea de venta resuelta con el nombre del producto, lista
// para renderizar.
type SaleLineForPDF struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptPDFGenerator puerto de generación del recibo de venta en PDF.
// client puede venir nil (venta a cliente no registrado).
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, company *entity.Company, client *entity.Client, lines []SaleLineForPDF) ([]byte, error)
}
