package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vet-clinic-records/internal/domain/visits"

	"github.com/jackc/pgx/v5/pgconn"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

// CreateWithVaccination es la unidad de trabajo del flujo de vacunación:
// inserta la visita, recupera el visit id generado en el mismo round trip
// (RETURNING) y con él inserta la vacunación. Si cualquier paso falla se
// descarta todo: nunca queda una visita colgada sin su vacunación.
func (r *VisitsRepo) CreateWithVaccination(ctx context.Context, v visits.Visit, vac visits.Vaccination) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var visitID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO visit_record (visit_date, pet_weight, pet_id, vet_id)
		VALUES ($1, $2, $3, $4)
		RETURNING visit_id
	`,
		v.Date,
		v.Weight,
		v.PetID,
		v.VetID,
	).Scan(&visitID)
	if err != nil {
		return 0, fmt.Errorf("insert visit: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO vaccination (visit_id, vaccine_name, against, manufacturer, lot_no, next_schedule)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		visitID,
		vac.VaccineName,
		vac.Against,
		vac.Manufacturer,
		vac.LotNo,
		toNullDate(vac.NextDue),
	)
	if err != nil {
		return 0, fmt.Errorf("insert vaccination: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return visitID, nil
}

func (r *VisitsRepo) GetVisit(ctx context.Context, id int64) (visits.Visit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT visit_id, visit_date, pet_weight, pet_id, vet_id
		FROM visit_record
		WHERE visit_id = $1
	`, id)

	var v visits.Visit
	if err := row.Scan(&v.ID, &v.Date, &v.Weight, &v.PetID, &v.VetID); err != nil {
		if err == sql.ErrNoRows {
			return visits.Visit{}, visits.ErrNotFound
		}
		return visits.Visit{}, err
	}

	return v, nil
}

// CreatePayment es un solo insert con auto-commit. payment.visit_id tiene
// constraint UNIQUE: el segundo pago de la misma visita viola 23505 y se
// traduce a ErrAlreadyPaid.
func (r *VisitsRepo) CreatePayment(ctx context.Context, p visits.Payment) (visits.Payment, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO payment (visit_id, amount, method, paid_on, receipt_no)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_id
	`,
		p.VisitID,
		p.Amount,
		string(p.Method),
		p.PaidOn,
		p.ReceiptNo,
	).Scan(&p.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return visits.Payment{}, visits.ErrAlreadyPaid
		}
		return visits.Payment{}, fmt.Errorf("insert payment: %w", err)
	}

	return p, nil
}

func (r *VisitsRepo) GetPaymentByVisit(ctx context.Context, visitID int64) (visits.Payment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT payment_id, visit_id, amount, method, paid_on, receipt_no
		FROM payment
		WHERE visit_id = $1
	`, visitID)

	var p visits.Payment
	var method string
	if err := row.Scan(&p.ID, &p.VisitID, &p.Amount, &method, &p.PaidOn, &p.ReceiptNo); err != nil {
		if err == sql.ErrNoRows {
			return visits.Payment{}, visits.ErrNoPayment
		}
		return visits.Payment{}, err
	}
	p.Method = visits.Method(method)

	return p, nil
}
