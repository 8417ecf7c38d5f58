package history

import (
	"context"

	"vet-clinic-records/internal/domain/clients"
	"vet-clinic-records/internal/domain/pets"
)

type Repository interface {
	// PetWithOwner resuelve mascota y dueño en un solo join.
	PetWithOwner(ctx context.Context, petID int64) (pets.Pet, clients.Client, error)

	// VaccinationHistory devuelve las entries de la mascota ordenadas por
	// visit date descendente, vaccination id descendente como desempate.
	// Overdue lo calcula el service; el repo lo deja en false.
	VaccinationHistory(ctx context.Context, petID int64) ([]Entry, error)
}
