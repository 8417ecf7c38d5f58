package memory

import (
	"context"
	"sort"

	"vet-clinic-records/internal/domain/clients"
	"vet-clinic-records/internal/domain/history"
	"vet-clinic-records/internal/domain/pets"
)

// historyRepo compone los stores in-memory para armar la misma vista
// denormalizada que el join de Postgres.
type historyRepo struct {
	clients *clientRepo
	pets    *petRepo
	vets    *vetRepo
	visits  *visitRepo
}

func NewHistoryRepo(c *clientRepo, p *petRepo, v *vetRepo, vis *visitRepo) *historyRepo {
	return &historyRepo{clients: c, pets: p, vets: v, visits: vis}
}

func (r *historyRepo) PetWithOwner(ctx context.Context, petID int64) (pets.Pet, clients.Client, error) {
	p, err := r.pets.GetByID(ctx, petID)
	if err != nil {
		return pets.Pet{}, clients.Client{}, history.ErrNotFound
	}

	c, err := r.clients.GetByID(ctx, p.OwnerID)
	if err != nil {
		return pets.Pet{}, clients.Client{}, history.ErrNotFound
	}

	return p, c, nil
}

func (r *historyRepo) VaccinationHistory(ctx context.Context, petID int64) ([]history.Entry, error) {
	r.visits.mu.RLock()
	defer r.visits.mu.RUnlock()

	out := make([]history.Entry, 0)
	for _, vac := range r.visits.vaccinations {
		visit, ok := r.visits.visits[vac.VisitID]
		if !ok || visit.PetID != petID {
			continue
		}

		e := history.Entry{
			VaccinationID: vac.ID,
			VisitID:       visit.ID,
			VisitDate:     visit.Date,
			Weight:        visit.Weight,
			VaccineName:   vac.VaccineName,
			Against:       vac.Against,
			Manufacturer:  vac.Manufacturer,
			LotNo:         vac.LotNo,
			NextDue:       vac.NextDue,
		}

		if vet, err := r.vets.GetByID(ctx, visit.VetID); err == nil {
			e.VetName = vet.DisplayName()
		}

		if pay, ok := r.visits.payments[visit.ID]; ok {
			e.Payment = &history.PaymentInfo{
				Amount:    pay.Amount,
				Method:    pay.Method,
				PaidOn:    pay.PaidOn,
				ReceiptNo: pay.ReceiptNo,
			}
		}

		out = append(out, e)
	}

	// mismo contrato de orden que el adapter de Postgres
	sort.Slice(out, func(i, j int) bool {
		if !out[i].VisitDate.Equal(out[j].VisitDate) {
			return out[i].VisitDate.After(out[j].VisitDate)
		}
		return out[i].VaccinationID > out[j].VaccinationID
	})

	return out, nil
}
