package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("client not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterInput struct {
	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string
	Address    string

	// Opcional. Vacío = no se registra contacto.
	ContactNumber string
}

// Register valida y crea el client (y su contacto si vino) en una sola
// unidad de trabajo. Nunca toca storage si la validación falla.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Client, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return Client{}, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.LastName) == "" {
		return Client{}, fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Address) == "" {
		return Client{}, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	c := Client{
		FirstName:     strings.TrimSpace(in.FirstName),
		MiddleName:    strings.TrimSpace(in.MiddleName),
		LastName:      strings.TrimSpace(in.LastName),
		Suffix:        strings.TrimSpace(in.Suffix),
		Address:       strings.TrimSpace(in.Address),
		ContactNumber: strings.TrimSpace(in.ContactNumber),
	}

	id, err := s.repo.CreateWithContact(ctx, c)
	if err != nil {
		return Client{}, fmt.Errorf("register client: %w", err)
	}

	c.ID = id
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Client, error) {
	if id <= 0 {
		return Client{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Search con term vacío devuelve todos los clients (id asc).
// Con term, substring case-insensitive sobre first o last name.
func (s *Service) Search(ctx context.Context, term string) ([]Client, error) {
	return s.repo.Search(ctx, strings.TrimSpace(term))
}

// Exists expone la existencia de un client sin devolver el modelo.
// Se usa desde pets para validar el owner sin ciclos de imports.
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
