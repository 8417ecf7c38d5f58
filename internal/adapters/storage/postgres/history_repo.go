package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/clients"
	"vet-clinic-records/internal/domain/history"
	"vet-clinic-records/internal/domain/pets"
	"vet-clinic-records/internal/domain/vets"
	"vet-clinic-records/internal/domain/visits"

	"github.com/shopspring/decimal"
)

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) PetWithOwner(ctx context.Context, petID int64) (pets.Pet, clients.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			p.pet_id, p.owner_id, p.pet_name, p.breed, p.birthdate, p.markings,
			c.client_id, c.firstname, c.middlename, c.lastname, c.suffix, c.address,
			COALESCE(cc.contact_number, '')
		FROM pet p
		JOIN client c ON c.client_id = p.owner_id
		LEFT JOIN client_contact cc ON cc.client_id = c.client_id
		WHERE p.pet_id = $1
	`, petID)

	var p pets.Pet
	var c clients.Client
	var bd sql.NullTime
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Breed, &bd, &p.Markings,
		&c.ID, &c.FirstName, &c.MiddleName, &c.LastName, &c.Suffix, &c.Address,
		&c.ContactNumber,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, clients.Client{}, history.ErrNotFound
		}
		return pets.Pet{}, clients.Client{}, err
	}
	p.Birthdate = fromNullDate(bd)

	return p, c, nil
}

// VaccinationHistory arma el historial denormalizado en una sola query:
// vacunación + visita + veterinario, con el pago colgado por LEFT JOIN
// (sin fila de pago = PENDING, lo deriva el service). El orden es parte
// del contrato: visit date desc, vaccination id desc como desempate.
func (r *HistoryRepo) VaccinationHistory(ctx context.Context, petID int64) ([]history.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			v.vaccination_id, v.vaccine_name, v.against, v.manufacturer, v.lot_no, v.next_schedule,
			vr.visit_id, vr.visit_date, vr.pet_weight,
			vet.firstname, vet.middlename, vet.lastname, vet.suffix,
			pay.amount, pay.method, pay.paid_on, pay.receipt_no
		FROM vaccination v
		JOIN visit_record vr ON vr.visit_id = v.visit_id
		JOIN veterinarian vet ON vet.vet_id = vr.vet_id
		LEFT JOIN payment pay ON pay.visit_id = vr.visit_id
		WHERE vr.pet_id = $1
		ORDER BY vr.visit_date DESC, v.vaccination_id DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]history.Entry, 0)
	for rows.Next() {
		var e history.Entry
		var nextDue sql.NullTime
		var vet vets.Veterinarian
		var amount decimal.NullDecimal
		var method sql.NullString
		var paidOn sql.NullTime
		var receipt sql.NullString

		err := rows.Scan(
			&e.VaccinationID, &e.VaccineName, &e.Against, &e.Manufacturer, &e.LotNo, &nextDue,
			&e.VisitID, &e.VisitDate, &e.Weight,
			&vet.FirstName, &vet.MiddleName, &vet.LastName, &vet.Suffix,
			&amount, &method, &paidOn, &receipt,
		)
		if err != nil {
			return nil, err
		}

		e.NextDue = fromNullDate(nextDue)
		e.VetName = vet.DisplayName()

		if amount.Valid {
			e.Payment = &history.PaymentInfo{
				Amount:    amount.Decimal,
				Method:    visits.Method(method.String),
				PaidOn:    paidOn.Time,
				ReceiptNo: receipt.String,
			}
		}

		out = append(out, e)
	}

	return out, rows.Err()
}
