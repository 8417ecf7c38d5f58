package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("pet not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

// OwnerDirectory valida que el client dueño exista antes de insertar.
// Lo implementa clients.Service; es interface para evitar ciclos de imports.
type OwnerDirectory interface {
	Exists(ctx context.Context, clientID int64) (bool, error)
}

type Service struct {
	repo   Repository
	owners OwnerDirectory
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerDirectory) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name      string
	Breed     string
	Birthdate *time.Time
	Markings  string
}

// Create registra una mascota para un client existente.
// El insert se rechaza si el owner no resuelve a un client real.
func (s *Service) Create(ctx context.Context, ownerID int64, in CreateInput) (Pet, error) {
	if ownerID <= 0 {
		return Pet{}, ErrOwnerNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, fmt.Errorf("%w: pet name is required", ErrInvalidInput)
	}
	if in.Birthdate != nil {
		today := dateOnly(s.now())
		if dateOnly(*in.Birthdate).After(today) {
			return Pet{}, fmt.Errorf("%w: birthdate cannot be in the future", ErrInvalidInput)
		}
	}

	ok, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		return Pet{}, fmt.Errorf("check owner: %w", err)
	}
	if !ok {
		return Pet{}, ErrOwnerNotFound
	}

	p := Pet{
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(in.Name),
		Breed:     strings.TrimSpace(in.Breed),
		Birthdate: in.Birthdate,
		Markings:  strings.TrimSpace(in.Markings),
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, fmt.Errorf("register pet: %w", err)
	}

	p.ID = id
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Exists se usa desde visits para validar la mascota sin ciclos de imports.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// dateOnly reduce t a su fecha calendario (y-m-d en la zona de t),
// normalizada a UTC para poder comparar fechas de distintas zonas.
// La política del servicio es la fecha local del server.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
