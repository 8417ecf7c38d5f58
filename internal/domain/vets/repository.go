package vets

import "context"

type Repository interface {
	// List devuelve el roster completo ordenado por last name, first name.
	List(ctx context.Context) ([]Veterinarian, error)

	GetByID(ctx context.Context, id int64) (Veterinarian, error)
}
