package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

func (r *VetsRepo) List(ctx context.Context) ([]vets.Veterinarian, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT vet_id, firstname, middlename, lastname, suffix
		FROM veterinarian
		ORDER BY lastname ASC, firstname ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Veterinarian, 0)
	for rows.Next() {
		var v vets.Veterinarian
		if err := rows.Scan(&v.ID, &v.FirstName, &v.MiddleName, &v.LastName, &v.Suffix); err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

func (r *VetsRepo) GetByID(ctx context.Context, id int64) (vets.Veterinarian, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT vet_id, firstname, middlename, lastname, suffix
		FROM veterinarian
		WHERE vet_id = $1
	`, id)

	var v vets.Veterinarian
	if err := row.Scan(&v.ID, &v.FirstName, &v.MiddleName, &v.LastName, &v.Suffix); err != nil {
		if err == sql.ErrNoRows {
			return vets.Veterinarian{}, vets.ErrNotFound
		}
		return vets.Veterinarian{}, err
	}

	return v, nil
}
