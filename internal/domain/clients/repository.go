package clients

import "context"

type Repository interface {
	// CreateWithContact inserta el client y, si c.ContactNumber no está vacío,
	// su fila de contacto, todo en una sola unidad de trabajo. Devuelve el
	// id generado. Si falla cualquier paso no debe quedar ninguna fila.
	CreateWithContact(ctx context.Context, c Client) (int64, error)

	GetByID(ctx context.Context, id int64) (Client, error)

	// Search con term vacío lista todos los clients.
	// Siempre ordenado por id ascendente.
	Search(ctx context.Context, term string) ([]Client, error)
}
