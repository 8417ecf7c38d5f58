package clients

import "strings"

// Client representa al dueño registrado en la clínica.
// El contact number vive en una tabla aparte (client_contact);
// acá lo exponemos plano porque los lectores siempre lo quieren junto.
type Client struct {
	ID int64

	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string

	Address string

	// Vacío = sin contacto registrado.
	ContactNumber string
}

// DisplayName arma el nombre para mostrar: first (middle) last (suffix),
// con un solo espacio entre partes y sin espacios sobrantes.
func (c Client) DisplayName() string {
	return joinNameParts(c.FirstName, c.MiddleName, c.LastName, c.Suffix)
}

func joinNameParts(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, " ")
}
