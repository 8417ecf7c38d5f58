package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vet-clinic-records/internal/domain/vets"
	"vet-clinic-records/internal/domain/visits"
)

var ErrNotFound = errors.New("pet not found")

// VetRoster provee la lista de veterinarios para el selector de la ficha.
// Lo implementa vets.Service.
type VetRoster interface {
	List(ctx context.Context) ([]vets.Veterinarian, error)
}

type Service struct {
	repo   Repository
	roster VetRoster
	now    func() time.Time
}

func NewService(repo Repository, roster VetRoster) *Service {
	return &Service{
		repo:   repo,
		roster: roster,
		now:    time.Now,
	}
}

// PetRecord reconstruye la ficha completa de una mascota. El flag de
// overdue y el payment status se derivan acá en cada lectura; la fecha
// de corte es la fecha calendario local del server.
func (s *Service) PetRecord(ctx context.Context, petID int64) (PetRecord, error) {
	if petID <= 0 {
		return PetRecord{}, ErrNotFound
	}

	pet, owner, err := s.repo.PetWithOwner(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PetRecord{}, ErrNotFound
		}
		return PetRecord{}, fmt.Errorf("load pet: %w", err)
	}

	roster, err := s.roster.List(ctx)
	if err != nil {
		return PetRecord{}, fmt.Errorf("load veterinarians: %w", err)
	}

	entries, err := s.repo.VaccinationHistory(ctx, petID)
	if err != nil {
		return PetRecord{}, fmt.Errorf("load history: %w", err)
	}

	today := dateOnly(s.now())
	for i := range entries {
		e := &entries[i]

		e.Overdue = e.NextDue != nil && dateOnly(*e.NextDue).Before(today)

		if e.Payment != nil {
			e.PaymentStatus = visits.StatusPaid
		} else {
			e.PaymentStatus = visits.StatusPending
		}
	}

	return PetRecord{
		Pet:     pet,
		Owner:   owner,
		Vets:    roster,
		History: entries,
	}, nil
}

// dateOnly reduce t a su fecha calendario (y-m-d en la zona de t),
// normalizada a UTC para poder comparar fechas de distintas zonas.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
