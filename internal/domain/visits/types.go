package visits

import "strings"

// Method es el medio de pago aceptado por la clínica.
type Method string

const (
	MethodCash    Method = "cash"
	MethodCredit  Method = "credit"
	MethodDebit   Method = "debit"
	MethodEWallet Method = "e-wallet"
)

// ParseMethod normaliza (trim + lowercase) y valida contra el set cerrado.
func ParseMethod(s string) (Method, bool) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodCash:
		return MethodCash, true
	case MethodCredit:
		return MethodCredit, true
	case MethodDebit:
		return MethodDebit, true
	case MethodEWallet:
		return MethodEWallet, true
	default:
		return "", false
	}
}

// PaymentStatus es derivado, nunca almacenado: PAID si existe la fila
// de payment para la visita, PENDING si no.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "PAID"
	StatusPending PaymentStatus = "PENDING"
)
