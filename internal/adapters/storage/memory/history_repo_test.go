package memory

import (
	"context"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/clients"
	"vet-clinic-records/internal/domain/pets"
	"vet-clinic-records/internal/domain/vets"
	"vet-clinic-records/internal/domain/visits"

	"github.com/shopspring/decimal"
)

func TestHistoryRepo_VaccinationHistory_OrdersByDateDescThenIDDesc(t *testing.T) {
	ctx := context.Background()

	cr := NewClientsRepo()
	pr := NewPetsRepo()
	vr := NewVetsRepo(vets.Veterinarian{ID: 1, FirstName: "Luz", LastName: "Abad"})
	visr := NewVisitsRepo()

	ownerID, err := cr.CreateWithContact(ctx, clients.Client{FirstName: "Ana", LastName: "Cruz", Address: "123 Rizal St"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	petID, err := pr.Create(ctx, pets.Pet{OwnerID: ownerID, Name: "Milo"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	sameDay := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	weight := decimal.NewFromFloat(5.5)

	// dos vacunaciones el mismo día (vaccination ids 1 y 2) y una anterior (id 3)
	for _, c := range []struct {
		date time.Time
		lot  string
	}{
		{sameDay, "LOT1"},
		{sameDay, "LOT2"},
		{earlier, "LOT3"},
	} {
		_, err := visr.CreateWithVaccination(ctx,
			visits.Visit{Date: c.date, Weight: weight, PetID: petID, VetID: 1},
			visits.Vaccination{VaccineName: "Rabies", LotNo: c.lot},
		)
		if err != nil {
			t.Fatalf("create vaccination %s: %v", c.lot, err)
		}
	}

	repo := NewHistoryRepo(cr, pr, vr, visr)
	entries, err := repo.VaccinationHistory(ctx, petID)
	if err != nil {
		t.Fatalf("VaccinationHistory returned error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// fecha más nueva primero; dentro del mismo día, vaccination id desc
	// (la entrada cargada más recientemente arriba)
	wantIDs := []int64{2, 1, 3}
	for i, want := range wantIDs {
		if entries[i].VaccinationID != want {
			t.Fatalf("expected vaccination ids %v, got [%d %d %d]",
				wantIDs, entries[0].VaccinationID, entries[1].VaccinationID, entries[2].VaccinationID)
		}
	}

	if !entries[0].VisitDate.Equal(sameDay) || !entries[2].VisitDate.Equal(earlier) {
		t.Fatalf("expected newest date first, got %v then %v", entries[0].VisitDate, entries[2].VisitDate)
	}
}
