package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic-records/internal/router"
)

func TestHTTP_EndToEnd_VaccinationAndPayment(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Registrar client con contacto
	var clientID int64
	{
		st, body := doReq(t, ts.URL, "POST", "/clients", map[string]any{
			"first_name":     "Ana",
			"last_name":      "Cruz",
			"address":        "123 Rizal St",
			"contact_number": "0917-555-0101",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating client, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID            int64  `json:"id"`
			DisplayName   string `json:"display_name"`
			ContactNumber string `json:"contact_number"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.ID == 0 {
			t.Fatalf("expected generated client id")
		}
		if resp.DisplayName != "Ana Cruz" {
			t.Fatalf("unexpected display name %q", resp.DisplayName)
		}
		if resp.ContactNumber != "0917-555-0101" {
			t.Fatalf("expected contact number persisted, got %q", resp.ContactNumber)
		}
		clientID = resp.ID
	}

	// 2) Registro inválido: sin last name => 400 y no aparece en búsquedas
	{
		st, _ := doReq(t, ts.URL, "POST", "/clients", map[string]any{
			"first_name": "Sin",
			"address":    "x",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing last name, got %d", st)
		}
	}

	// 3) Search case-insensitive por fragmento
	{
		st, body := doReq(t, ts.URL, "GET", "/clients?search=cRU", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 searching, got %d", st)
		}
		var results []struct {
			ID int64 `json:"id"`
		}
		mustUnmarshal(t, body, &results)
		if len(results) != 1 || results[0].ID != clientID {
			t.Fatalf("expected only the registered client, got %#v", results)
		}
	}

	// 4) Registrar mascota para el client
	var petID int64
	{
		st, body := doReq(t, ts.URL, "POST", pathf("/clients/%d/pets", clientID), map[string]any{
			"name":      "Milo",
			"breed":     "Aspin",
			"birthdate": "2024-03-15",
			"markings":  "brown with white spots",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating pet, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID int64 `json:"id"`
		}
		mustUnmarshal(t, body, &resp)
		petID = resp.ID
	}

	// 5) Mascota para client inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/clients/999/pets", map[string]any{"name": "Ghost"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown owner, got %d", st)
		}
	}

	// 6) Vacunación con weight=0 => 400 y cero filas nuevas
	{
		st, _ := doReq(t, ts.URL, "POST", pathf("/pets/%d/vaccinations", petID), map[string]any{
			"weight":       0,
			"vet_id":       1,
			"vaccine_name": "Rabies",
			"lot_no":       "LOT1",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for zero weight, got %d", st)
		}
	}

	// 7) Vacunación válida => visit id generado
	var visitID int64
	{
		st, body := doReq(t, ts.URL, "POST", pathf("/pets/%d/vaccinations", petID), map[string]any{
			"weight":       5.5,
			"vet_id":       1,
			"vaccine_name": "Rabies",
			"lot_no":       "LOT1",
			"next_due":     "2020-01-01", // ya vencida: el record debe marcarla overdue
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 recording vaccination, got %d body=%s", st, string(body))
		}
		var resp struct {
			VisitID int64 `json:"visit_id"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.VisitID == 0 {
			t.Fatalf("expected generated visit id")
		}
		visitID = resp.VisitID
	}

	// 8) Sin pago todavía => PENDING
	{
		st, body := doReq(t, ts.URL, "GET", pathf("/visits/%d", visitID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 fetching visit, got %d", st)
		}
		var resp struct {
			PaymentStatus string `json:"payment_status"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.PaymentStatus != "PENDING" {
			t.Fatalf("expected PENDING before payment, got %s", resp.PaymentStatus)
		}
	}

	// 9) Registrar pago => PAID en la próxima lectura
	{
		st, body := doReq(t, ts.URL, "POST", pathf("/visits/%d/payments", visitID), map[string]any{
			"amount": 500,
			"method": "Cash",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 recording payment, got %d body=%s", st, string(body))
		}
		var resp struct {
			Method    string `json:"method"`
			ReceiptNo string `json:"receipt_no"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Method != "cash" {
			t.Fatalf("expected normalized method cash, got %q", resp.Method)
		}
		if resp.ReceiptNo == "" {
			t.Fatalf("expected receipt reference")
		}

		st, body = doReq(t, ts.URL, "GET", pathf("/visits/%d", visitID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 fetching visit, got %d", st)
		}
		var after struct {
			PaymentStatus string `json:"payment_status"`
		}
		mustUnmarshal(t, body, &after)
		if after.PaymentStatus != "PAID" {
			t.Fatalf("expected PAID after payment, got %s", after.PaymentStatus)
		}
	}

	// 10) Pagar dos veces => 409 (pagar es one-way)
	{
		st, _ := doReq(t, ts.URL, "POST", pathf("/visits/%d/payments", visitID), map[string]any{
			"amount": 500,
			"method": "debit",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for second payment, got %d", st)
		}
	}

	// 11) Ficha completa: owner, roster, historial con overdue y pago
	{
		st, body := doReq(t, ts.URL, "GET", pathf("/pets/%d/record", petID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 fetching record, got %d body=%s", st, string(body))
		}
		var rec struct {
			Owner struct {
				DisplayName string `json:"display_name"`
			} `json:"owner"`
			Vets []struct {
				ID          int64  `json:"id"`
				DisplayName string `json:"display_name"`
			} `json:"vets"`
			History []struct {
				VisitID       int64  `json:"visit_id"`
				Overdue       bool   `json:"overdue"`
				PaymentStatus string `json:"payment_status"`
				VetName       string `json:"vet_name"`
			} `json:"history"`
		}
		mustUnmarshal(t, body, &rec)

		if rec.Owner.DisplayName != "Ana Cruz" {
			t.Fatalf("unexpected owner %q", rec.Owner.DisplayName)
		}
		// roster ordenado por last name, first name
		if len(rec.Vets) != 3 || rec.Vets[0].DisplayName != "Luz Abad" {
			t.Fatalf("unexpected roster %#v", rec.Vets)
		}
		if len(rec.History) != 1 {
			t.Fatalf("expected one history entry, got %d", len(rec.History))
		}
		e := rec.History[0]
		if e.VisitID != visitID {
			t.Fatalf("history entry must reference visit %d, got %d", visitID, e.VisitID)
		}
		if !e.Overdue {
			t.Fatalf("next due in the past must be flagged overdue")
		}
		if e.PaymentStatus != "PAID" {
			t.Fatalf("expected PAID in history, got %s", e.PaymentStatus)
		}
		if e.VetName != "Luz Abad" {
			t.Fatalf("unexpected vet name %q", e.VetName)
		}
	}

	// 12) Record de mascota inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/999/record", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown pet record, got %d", st)
		}
	}
}

func TestHTTP_EmptySearchListsAllByID(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, n := range [][2]string{{"Ana", "Cruz"}, {"Ben", "Reyes"}} {
		st, body := doReq(t, ts.URL, "POST", "/clients", map[string]any{
			"first_name": n[0],
			"last_name":  n[1],
			"address":    "somewhere",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/clients", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var results []struct {
		ID int64 `json:"id"`
	}
	mustUnmarshal(t, body, &results)
	if len(results) != 2 || results[0].ID != 1 || results[1].ID != 2 {
		t.Fatalf("expected all clients ordered by id, got %#v", results)
	}
}

// -------------------------
// helpers
// -------------------------

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}

func mustUnmarshal(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(b), err)
	}
}

func pathf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
