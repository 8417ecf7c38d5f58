package pets

import "context"

type Repository interface {
	// Create inserta la mascota y devuelve el id generado.
	Create(ctx context.Context, p Pet) (int64, error)

	GetByID(ctx context.Context, id int64) (Pet, error)

	// ListByOwner devuelve las mascotas del client ordenadas por nombre.
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
}
