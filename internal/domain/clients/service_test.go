package clients

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Client
	nextID int64

	// si no es nil, CreateWithContact falla con este error cuando el
	// client trae contact number (simula fallo del segundo insert: la
	// unidad de trabajo completa se descarta).
	contactInsertErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Client{}, nextID: 1}
}

func (r *testRepo) CreateWithContact(ctx context.Context, c Client) (int64, error) {
	if c.ContactNumber != "" && r.contactInsertErr != nil {
		// rollback: ninguna fila queda
		return 0, r.contactInsertErr
	}
	id := r.nextID
	r.nextID++
	c.ID = id
	r.byID[id] = c
	return id, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return Client{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) Search(ctx context.Context, term string) ([]Client, error) {
	out := make([]Client, 0)
	for id := int64(1); id < r.nextID; id++ {
		c, ok := r.byID[id]
		if !ok {
			continue
		}
		if term == "" ||
			strings.Contains(strings.ToLower(c.FirstName), strings.ToLower(term)) ||
			strings.Contains(strings.ToLower(c.LastName), strings.ToLower(term)) {
			out = append(out, c)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_ReturnsGeneratedID(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	c, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Ana",
		LastName:  "Cruz",
		Address:   "123 Rizal St",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected generated id 1, got %d", c.ID)
	}
	if c.ContactNumber != "" {
		t.Fatalf("expected no contact number, got %q", c.ContactNumber)
	}

	stored, err := repo.GetByID(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("client row missing after register: %v", err)
	}
	if stored.ContactNumber != "" {
		t.Fatalf("expected zero contact rows, got %q", stored.ContactNumber)
	}
}

func TestService_Register_TrimsFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	c, err := svc.Register(context.Background(), RegisterInput{
		FirstName:     "  Ana ",
		MiddleName:    " Maria ",
		LastName:      " Cruz  ",
		Address:       "  123 Rizal St ",
		ContactNumber: " 0917-555-0101 ",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if c.FirstName != "Ana" || c.MiddleName != "Maria" || c.LastName != "Cruz" {
		t.Fatalf("expected trimmed name parts, got %#v", c)
	}
	if c.ContactNumber != "0917-555-0101" {
		t.Fatalf("expected trimmed contact, got %q", c.ContactNumber)
	}
}

func TestService_Register_MissingRequiredFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	cases := []RegisterInput{
		{FirstName: "", LastName: "Cruz", Address: "123 Rizal St"},
		{FirstName: "Ana", LastName: "   ", Address: "123 Rizal St"},
		{FirstName: "Ana", LastName: "Cruz", Address: ""},
	}

	for _, in := range cases {
		_, err := svc.Register(context.Background(), in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", in, err)
		}
	}

	if len(repo.byID) != 0 {
		t.Fatalf("validation failures must not touch storage, got %d rows", len(repo.byID))
	}
}

func TestService_Register_ContactFailureRollsBackClient(t *testing.T) {
	repo := newTestRepo()
	repo.contactInsertErr = errors.New("insert contact: constraint violation")
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName:     "Ana",
		LastName:      "Cruz",
		Address:       "123 Rizal St",
		ContactNumber: "0917-555-0101",
	})
	if err == nil {
		t.Fatalf("expected error when contact insert fails")
	}

	// ni client ni contacto deben haber quedado
	if len(repo.byID) != 0 {
		t.Fatalf("expected full rollback, found %d client rows", len(repo.byID))
	}
}

func TestService_Search_EmptyTermListsAllByID(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	names := [][2]string{{"Ana", "Cruz"}, {"Ben", "Reyes"}, {"Carla", "Santos"}}
	for _, n := range names {
		if _, err := svc.Register(context.Background(), RegisterInput{
			FirstName: n[0], LastName: n[1], Address: "somewhere",
		}); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
	}

	got, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(got))
	}
	for i, c := range got {
		if c.ID != int64(i+1) {
			t.Fatalf("expected ids ascending, got %d at position %d", c.ID, i)
		}
	}
}

func TestService_Search_CaseInsensitiveSubstring(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	for _, n := range [][2]string{{"Ana", "Cruz"}, {"Ben", "Reyes"}, {"Cruzita", "Lopez"}} {
		if _, err := svc.Register(context.Background(), RegisterInput{
			FirstName: n[0], LastName: n[1], Address: "somewhere",
		}); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
	}

	got, err := svc.Search(context.Background(), "cRuZ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	// matchea Cruz (last name) y Cruzita (first name), nunca Ben Reyes
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].LastName != "Cruz" || got[1].FirstName != "Cruzita" {
		t.Fatalf("unexpected matches: %#v", got)
	}
}

func TestClient_DisplayName(t *testing.T) {
	cases := []struct {
		c    Client
		want string
	}{
		{Client{FirstName: "Ana", LastName: "Cruz"}, "Ana Cruz"},
		{Client{FirstName: "Ana", MiddleName: "Maria", LastName: "Cruz"}, "Ana Maria Cruz"},
		{Client{FirstName: "Jose", LastName: "Rizal", Suffix: "Jr"}, "Jose Rizal Jr"},
		{Client{FirstName: "Ana", MiddleName: "", LastName: "Cruz", Suffix: ""}, "Ana Cruz"},
	}

	for _, tc := range cases {
		if got := tc.c.DisplayName(); got != tc.want {
			t.Fatalf("DisplayName() = %q, want %q", got, tc.want)
		}
	}
}
