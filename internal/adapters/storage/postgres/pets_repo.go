package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vet-clinic-records/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pet (owner_id, pet_name, breed, birthdate, markings)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING pet_id
	`,
		p.OwnerID,
		p.Name,
		p.Breed,
		toNullDate(p.Birthdate),
		p.Markings,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert pet: %w", err)
	}
	return id, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT pet_id, owner_id, pet_name, breed, birthdate, markings
		FROM pet
		WHERE pet_id = $1
	`, id)

	var p pets.Pet
	var bd sql.NullTime
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Breed, &bd, &p.Markings); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	p.Birthdate = fromNullDate(bd)

	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pet_id, owner_id, pet_name, breed, birthdate, markings
		FROM pet
		WHERE owner_id = $1
		ORDER BY pet_name ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		var bd sql.NullTime
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Breed, &bd, &p.Markings); err != nil {
			return nil, err
		}
		p.Birthdate = fromNullDate(bd)
		out = append(out, p)
	}

	return out, rows.Err()
}
