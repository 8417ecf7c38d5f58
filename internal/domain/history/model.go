package history

import (
	"time"

	"vet-clinic-records/internal/domain/clients"
	"vet-clinic-records/internal/domain/pets"
	"vet-clinic-records/internal/domain/vets"
	"vet-clinic-records/internal/domain/visits"

	"github.com/shopspring/decimal"
)

// PetRecord es la vista denormalizada de la ficha de una mascota:
// la mascota con su dueño, el roster de veterinarios para el selector,
// y el historial de vacunación en orden cronológico inverso.
type PetRecord struct {
	Pet   pets.Pet
	Owner clients.Client

	Vets []vets.Veterinarian

	History []Entry
}

// Entry es una fila del historial: la vacunación con su visita, el
// veterinario que atendió y el cobro si existe.
type Entry struct {
	VaccinationID int64
	VisitID       int64

	VisitDate time.Time
	Weight    decimal.Decimal

	VaccineName  string
	Against      string
	Manufacturer string
	LotNo        string

	NextDue *time.Time

	// Derivado en cada lectura, nunca almacenado: next due estrictamente
	// antes de hoy.
	Overdue bool

	VetName string

	// Derivados de la existencia del pago.
	PaymentStatus visits.PaymentStatus
	Payment       *PaymentInfo
}

type PaymentInfo struct {
	Amount    decimal.Decimal
	Method    visits.Method
	PaidOn    time.Time
	ReceiptNo string
}
