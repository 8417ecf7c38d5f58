package pets

import "time"

// Pet representa una mascota registrada para un client de la clínica.
// El owner es inmutable: una mascota pertenece a un solo client.
type Pet struct {
	ID      int64
	OwnerID int64

	Name  string
	Breed string

	// Opcional. Solo fecha calendario, nunca futura.
	Birthdate *time.Time

	Markings string
}
