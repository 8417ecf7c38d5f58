package history

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pets/{petID}/record", petRecordHandler(svc))
}

type petRecordResponse struct {
	Pet     petSummary      `json:"pet"`
	Owner   ownerSummary    `json:"owner"`
	Vets    []vetOption     `json:"vets"`
	History []entryResponse `json:"history"`
}

type petSummary struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Breed     string     `json:"breed,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Markings  string     `json:"markings,omitempty"`
}

type ownerSummary struct {
	ID            int64  `json:"id"`
	DisplayName   string `json:"display_name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number,omitempty"`
}

type vetOption struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

type entryResponse struct {
	VaccinationID int64           `json:"vaccination_id"`
	VisitID       int64           `json:"visit_id"`
	VisitDate     time.Time       `json:"visit_date"`
	Weight        decimal.Decimal `json:"weight"`
	VaccineName   string          `json:"vaccine_name"`
	Against       string          `json:"against,omitempty"`
	Manufacturer  string          `json:"manufacturer,omitempty"`
	LotNo         string          `json:"lot_no"`
	NextDue       *string         `json:"next_due,omitempty"`
	Overdue       bool            `json:"overdue"`
	VetName       string          `json:"vet_name"`
	PaymentStatus string          `json:"payment_status"`
	Payment       *paymentInfo    `json:"payment,omitempty"`
}

type paymentInfo struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	PaidOn    string          `json:"paid_on"`
	ReceiptNo string          `json:"receipt_no"`
}

func petRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "pet id must be numeric", http.StatusBadRequest)
			return
		}

		rec, err := svc.PetRecord(r.Context(), petID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := petRecordResponse{
			Pet: petSummary{
				ID:        rec.Pet.ID,
				Name:      rec.Pet.Name,
				Breed:     rec.Pet.Breed,
				Birthdate: rec.Pet.Birthdate,
				Markings:  rec.Pet.Markings,
			},
			Owner: ownerSummary{
				ID:            rec.Owner.ID,
				DisplayName:   rec.Owner.DisplayName(),
				Address:       rec.Owner.Address,
				ContactNumber: rec.Owner.ContactNumber,
			},
			Vets:    make([]vetOption, 0, len(rec.Vets)),
			History: make([]entryResponse, 0, len(rec.History)),
		}

		for _, v := range rec.Vets {
			resp.Vets = append(resp.Vets, vetOption{ID: v.ID, DisplayName: v.DisplayName()})
		}

		for _, e := range rec.History {
			er := entryResponse{
				VaccinationID: e.VaccinationID,
				VisitID:       e.VisitID,
				VisitDate:     e.VisitDate,
				Weight:        e.Weight,
				VaccineName:   e.VaccineName,
				Against:       e.Against,
				Manufacturer:  e.Manufacturer,
				LotNo:         e.LotNo,
				Overdue:       e.Overdue,
				VetName:       e.VetName,
				PaymentStatus: string(e.PaymentStatus),
			}
			if e.NextDue != nil {
				s := e.NextDue.Format("2006-01-02")
				er.NextDue = &s
			}
			if e.Payment != nil {
				er.Payment = &paymentInfo{
					Amount:    e.Payment.Amount,
					Method:    string(e.Payment.Method),
					PaidOn:    e.Payment.PaidOn.Format("2006-01-02"),
					ReceiptNo: e.Payment.ReceiptNo,
				}
			}
			resp.History = append(resp.History, er)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en clients/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
