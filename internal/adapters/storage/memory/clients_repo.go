package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"vet-clinic-records/internal/domain/clients"
)

type clientRepo struct {
	mu     sync.RWMutex
	byID   map[int64]clients.Client
	nextID int64
}

func NewClientsRepo() *clientRepo {
	return &clientRepo{
		byID:   make(map[int64]clients.Client),
		nextID: 1,
	}
}

// CreateWithContact es atómico bajo el lock: el client y su contacto
// quedan juntos o no queda nada (acá el contacto vive embebido, así que
// la unidad de trabajo es un solo write).
func (r *clientRepo) CreateWithContact(ctx context.Context, c clients.Client) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	c.ID = id
	r.byID[id] = c

	return id, nil
}

func (r *clientRepo) GetByID(ctx context.Context, id int64) (clients.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return clients.Client{}, clients.ErrNotFound
	}
	return c, nil
}

func (r *clientRepo) Search(ctx context.Context, term string) ([]clients.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term = strings.ToLower(term)

	out := make([]clients.Client, 0)
	for _, c := range r.byID {
		if term == "" ||
			strings.Contains(strings.ToLower(c.FirstName), term) ||
			strings.Contains(strings.ToLower(c.LastName), term) {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
