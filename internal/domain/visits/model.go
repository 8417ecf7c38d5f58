package visits

import (
	"time"

	"github.com/shopspring/decimal"
)

// Visit es un encuentro en la clínica: ancla una vacunación y,
// como máximo, un pago. La fecha la pone el sistema al crearla.
type Visit struct {
	ID int64

	Date   time.Time
	Weight decimal.Decimal

	PetID int64
	VetID int64
}

// Vaccination es el registro de la vacuna aplicada en una visita (1:1).
type Vaccination struct {
	ID      int64
	VisitID int64

	VaccineName  string
	Against      string
	Manufacturer string
	LotNo        string

	// Opcional: próxima dosis programada. Solo fecha calendario.
	NextDue *time.Time
}

// Payment es el cobro de una visita (0 o 1 por visita). No existe un
// estado "pending" almacenado: pending es la ausencia de esta fila.
type Payment struct {
	ID      int64
	VisitID int64

	Amount decimal.Decimal
	Method Method
	PaidOn time.Time

	// Referencia de recibo que se entrega al client.
	ReceiptNo string
}
