package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"vet-clinic-records/internal/domain/clients"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

// CreateWithContact ejecuta el registro como una sola transacción:
// insert del client (con RETURNING para el id generado) y, si vino
// contact number, insert de la fila de contacto con ese id. Cualquier
// fallo descarta todo; nunca queda un client con su contacto perdido
// en silencio.
func (r *ClientsRepo) CreateWithContact(ctx context.Context, c clients.Client) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO client (firstname, middlename, lastname, suffix, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING client_id
	`,
		c.FirstName,
		c.MiddleName,
		c.LastName,
		c.Suffix,
		c.Address,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert client: %w", err)
	}

	if c.ContactNumber != "" {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO client_contact (client_id, contact_number)
			VALUES ($1, $2)
		`, id, c.ContactNumber)
		if err != nil {
			return 0, fmt.Errorf("insert contact: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return id, nil
}

func (r *ClientsRepo) GetByID(ctx context.Context, id int64) (clients.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			c.client_id, c.firstname, c.middlename, c.lastname, c.suffix, c.address,
			COALESCE(cc.contact_number, '')
		FROM client c
		LEFT JOIN client_contact cc ON cc.client_id = c.client_id
		WHERE c.client_id = $1
	`, id)

	c, err := scanClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return clients.Client{}, clients.ErrNotFound
		}
		return clients.Client{}, err
	}
	return c, nil
}

func (r *ClientsRepo) Search(ctx context.Context, term string) ([]clients.Client, error) {
	query := `
		SELECT
			c.client_id, c.firstname, c.middlename, c.lastname, c.suffix, c.address,
			COALESCE(cc.contact_number, '')
		FROM client c
		LEFT JOIN client_contact cc ON cc.client_id = c.client_id
	`

	var (
		rows *sql.Rows
		err  error
	)
	if term == "" {
		rows, err = r.db.QueryContext(ctx, query+` ORDER BY c.client_id ASC`)
	} else {
		rows, err = r.db.QueryContext(ctx,
			query+` WHERE c.firstname ILIKE $1 OR c.lastname ILIKE $1 ORDER BY c.client_id ASC`,
			"%"+escapeLike(term)+"%")
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// likeEscaper neutraliza los metacaracteres de LIKE para que el término
// se compare como substring literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (clients.Client, error) {
	var c clients.Client
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.MiddleName,
		&c.LastName,
		&c.Suffix,
		&c.Address,
		&c.ContactNumber,
	)
	return c, err
}
