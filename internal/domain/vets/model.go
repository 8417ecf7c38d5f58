package vets

import "strings"

// Veterinarian es data de referencia de solo lectura: el roster se usa
// para el selector de veterinario al registrar una visita.
type Veterinarian struct {
	ID int64

	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string
}

// DisplayName arma el nombre igual que clients: first (middle) last (suffix).
func (v Veterinarian) DisplayName() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{v.FirstName, v.MiddleName, v.LastName, v.Suffix} {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}
