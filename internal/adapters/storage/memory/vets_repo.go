package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-records/internal/domain/vets"
)

type vetRepo struct {
	mu   sync.RWMutex
	byID map[int64]vets.Veterinarian
}

// NewVetsRepo arranca con el roster recibido: el veterinario es data de
// referencia sin flujo de alta, así que en modo dev se siembra acá.
func NewVetsRepo(seed ...vets.Veterinarian) *vetRepo {
	byID := make(map[int64]vets.Veterinarian, len(seed))
	for _, v := range seed {
		byID[v.ID] = v
	}
	return &vetRepo{byID: byID}
}

func (r *vetRepo) List(ctx context.Context) ([]vets.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Veterinarian, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})

	return out, nil
}

func (r *vetRepo) GetByID(ctx context.Context, id int64) (vets.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vets.Veterinarian{}, vets.ErrNotFound
	}
	return v, nil
}
