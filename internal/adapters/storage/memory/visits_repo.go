package memory

import (
	"context"
	"sync"

	"vet-clinic-records/internal/domain/visits"
)

type visitRepo struct {
	mu           sync.RWMutex
	visits       map[int64]visits.Visit
	vaccinations map[int64]visits.Vaccination
	payments     map[int64]visits.Payment // keyed por visit id
	nextVisitID  int64
	nextVacID    int64
	nextPayID    int64
}

func NewVisitsRepo() *visitRepo {
	return &visitRepo{
		visits:       make(map[int64]visits.Visit),
		vaccinations: make(map[int64]visits.Vaccination),
		payments:     make(map[int64]visits.Payment),
		nextVisitID:  1,
		nextVacID:    1,
		nextPayID:    1,
	}
}

// CreateWithVaccination hace los dos writes bajo el mismo lock: nunca se
// observa la visita sin su vacunación.
func (r *visitRepo) CreateWithVaccination(ctx context.Context, v visits.Visit, vac visits.Vaccination) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	visitID := r.nextVisitID
	r.nextVisitID++
	v.ID = visitID
	r.visits[visitID] = v

	vacID := r.nextVacID
	r.nextVacID++
	vac.ID = vacID
	vac.VisitID = visitID
	r.vaccinations[vacID] = vac

	return visitID, nil
}

func (r *visitRepo) GetVisit(ctx context.Context, id int64) (visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.visits[id]
	if !ok {
		return visits.Visit{}, visits.ErrNotFound
	}
	return v, nil
}

func (r *visitRepo) CreatePayment(ctx context.Context, p visits.Payment) (visits.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[p.VisitID]; ok {
		return visits.Payment{}, visits.ErrAlreadyPaid
	}

	p.ID = r.nextPayID
	r.nextPayID++
	r.payments[p.VisitID] = p

	return p, nil
}

func (r *visitRepo) GetPaymentByVisit(ctx context.Context, visitID int64) (visits.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[visitID]
	if !ok {
		return visits.Payment{}, visits.ErrNoPayment
	}
	return p, nil
}
