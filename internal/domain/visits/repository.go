package visits

import "context"

type Repository interface {
	// CreateWithVaccination inserta la visita, obtiene su id generado y
	// con él inserta la vacunación, todo en una sola unidad de trabajo.
	// Si cualquier paso falla no queda ninguna de las dos filas (nunca
	// una visita colgada sin vacunación). Devuelve el visit id generado.
	CreateWithVaccination(ctx context.Context, v Visit, vac Vaccination) (int64, error)

	GetVisit(ctx context.Context, id int64) (Visit, error)

	// CreatePayment inserta el pago de una visita. Una visita admite a lo
	// sumo un pago: el segundo intento devuelve ErrAlreadyPaid.
	CreatePayment(ctx context.Context, p Payment) (Payment, error)

	// GetPaymentByVisit devuelve ErrNoPayment si la visita no tiene pago.
	GetPaymentByVisit(ctx context.Context, visitID int64) (Payment, error)
}
