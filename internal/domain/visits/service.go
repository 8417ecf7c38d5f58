package visits

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("visit not found")
	ErrPetNotFound  = errors.New("pet not found")
	ErrVetNotFound  = errors.New("veterinarian not found")
	ErrAlreadyPaid  = errors.New("visit already paid")
	ErrNoPayment    = errors.New("no payment for visit")
)

// PetDirectory y VetDirectory validan referencias antes de insertar.
// Las implementan pets.Service y vets.Service.
type PetDirectory interface {
	Exists(ctx context.Context, petID int64) (bool, error)
}

type VetDirectory interface {
	Exists(ctx context.Context, vetID int64) (bool, error)
}

type Service struct {
	repo Repository
	pets PetDirectory
	vets VetDirectory
	now  func() time.Time
}

func NewService(repo Repository, pets PetDirectory, vets VetDirectory) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		vets: vets,
		now:  time.Now,
	}
}

type VaccinationInput struct {
	Weight decimal.Decimal
	VetID  int64

	VaccineName  string
	Against      string
	Manufacturer string
	LotNo        string

	// Opcional: próxima dosis.
	NextDue *time.Time
}

// RecordVaccination ejecuta el flujo visita + vacunación: valida todo
// antes de tocar storage y delega los dos inserts a una sola unidad de
// trabajo del repo. Devuelve el visit id generado para que el caller
// pueda confirmar o cargar el pago de inmediato.
func (s *Service) RecordVaccination(ctx context.Context, petID int64, in VaccinationInput) (int64, error) {
	if in.Weight.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: weight must be greater than zero", ErrInvalidInput)
	}
	if in.VetID <= 0 {
		return 0, fmt.Errorf("%w: veterinarian is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.VaccineName) == "" {
		return 0, fmt.Errorf("%w: vaccine name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.LotNo) == "" {
		return 0, fmt.Errorf("%w: lot number is required", ErrInvalidInput)
	}

	if petID <= 0 {
		return 0, ErrPetNotFound
	}
	ok, err := s.pets.Exists(ctx, petID)
	if err != nil {
		return 0, fmt.Errorf("check pet: %w", err)
	}
	if !ok {
		return 0, ErrPetNotFound
	}

	ok, err = s.vets.Exists(ctx, in.VetID)
	if err != nil {
		return 0, fmt.Errorf("check veterinarian: %w", err)
	}
	if !ok {
		return 0, ErrVetNotFound
	}

	v := Visit{
		Date:   s.now(),
		Weight: in.Weight,
		PetID:  petID,
		VetID:  in.VetID,
	}
	vac := Vaccination{
		VaccineName:  strings.TrimSpace(in.VaccineName),
		Against:      strings.TrimSpace(in.Against),
		Manufacturer: strings.TrimSpace(in.Manufacturer),
		LotNo:        strings.TrimSpace(in.LotNo),
		NextDue:      in.NextDue,
	}

	visitID, err := s.repo.CreateWithVaccination(ctx, v, vac)
	if err != nil {
		return 0, fmt.Errorf("record vaccination: %w", err)
	}
	return visitID, nil
}

type PaymentInput struct {
	Amount decimal.Decimal
	Method string

	// Opcional: default hoy. Nunca futura.
	PaidOn *time.Time
}

// RecordPayment registra el cobro de una visita existente. Es un solo
// insert; el estado queda pagado por la mera existencia de la fila.
func (s *Service) RecordPayment(ctx context.Context, visitID int64, in PaymentInput) (Payment, error) {
	if visitID <= 0 {
		return Payment{}, fmt.Errorf("%w: visit is required", ErrInvalidInput)
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return Payment{}, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	method, ok := ParseMethod(in.Method)
	if !ok {
		return Payment{}, fmt.Errorf("%w: method must be one of cash, credit, debit, e-wallet", ErrInvalidInput)
	}

	today := dateOnly(s.now())
	paidOn := today
	if in.PaidOn != nil {
		paidOn = dateOnly(*in.PaidOn)
		if paidOn.After(today) {
			return Payment{}, fmt.Errorf("%w: payment date cannot be in the future", ErrInvalidInput)
		}
	}

	if _, err := s.repo.GetVisit(ctx, visitID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Payment{}, ErrNotFound
		}
		return Payment{}, fmt.Errorf("check visit: %w", err)
	}

	p := Payment{
		VisitID:   visitID,
		Amount:    in.Amount,
		Method:    method,
		PaidOn:    paidOn,
		ReceiptNo: uuid.NewString(),
	}

	created, err := s.repo.CreatePayment(ctx, p)
	if err != nil {
		if errors.Is(err, ErrAlreadyPaid) {
			return Payment{}, ErrAlreadyPaid
		}
		return Payment{}, fmt.Errorf("record payment: %w", err)
	}
	return created, nil
}

func (s *Service) GetVisit(ctx context.Context, id int64) (Visit, error) {
	if id <= 0 {
		return Visit{}, ErrNotFound
	}
	return s.repo.GetVisit(ctx, id)
}

// PaymentStatus deriva el estado del cobro de la existencia de la fila.
func (s *Service) PaymentStatus(ctx context.Context, visitID int64) (PaymentStatus, *Payment, error) {
	p, err := s.repo.GetPaymentByVisit(ctx, visitID)
	if err != nil {
		if errors.Is(err, ErrNoPayment) {
			return StatusPending, nil, nil
		}
		return "", nil, err
	}
	return StatusPaid, &p, nil
}

// dateOnly reduce t a su fecha calendario (y-m-d en la zona de t),
// normalizada a UTC para poder comparar fechas de distintas zonas.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
