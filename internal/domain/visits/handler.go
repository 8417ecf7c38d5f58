package visits

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/pets/{petID}/vaccinations", recordVaccinationHandler(svc))

	r.Route("/visits/{visitID}", func(vr chi.Router) {
		vr.Get("/", getVisitHandler(svc))
		vr.Post("/payments", recordPaymentHandler(svc))
	})
}

type recordVaccinationRequest struct {
	Weight       decimal.Decimal `json:"weight"`
	VetID        int64           `json:"vet_id"`
	VaccineName  string          `json:"vaccine_name"`
	Against      string          `json:"against"`
	Manufacturer string          `json:"manufacturer"`
	LotNo        string          `json:"lot_no"`
	NextDue      string          `json:"next_due"` // YYYY-MM-DD opcional
}

type recordVaccinationResponse struct {
	VisitID int64 `json:"visit_id"`
}

type recordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	PaidOn string          `json:"paid_on"` // YYYY-MM-DD opcional, default hoy
}

type paymentResponse struct {
	ID        int64           `json:"id"`
	VisitID   int64           `json:"visit_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	PaidOn    string          `json:"paid_on"`
	ReceiptNo string          `json:"receipt_no"`
}

type visitResponse struct {
	ID            int64            `json:"id"`
	Date          time.Time        `json:"date"`
	Weight        decimal.Decimal  `json:"weight"`
	PetID         int64            `json:"pet_id"`
	VetID         int64            `json:"vet_id"`
	PaymentStatus string           `json:"payment_status"`
	Payment       *paymentResponse `json:"payment,omitempty"`
}

func recordVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "pet id must be numeric", http.StatusBadRequest)
			return
		}

		var req recordVaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var nextDue *time.Time
		if strings.TrimSpace(req.NextDue) != "" {
			t, err := time.Parse("2006-01-02", req.NextDue)
			if err != nil {
				http.Error(w, "next_due must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			nextDue = &t
		}

		visitID, err := svc.RecordVaccination(r.Context(), petID, VaccinationInput{
			Weight:       req.Weight,
			VetID:        req.VetID,
			VaccineName:  req.VaccineName,
			Against:      req.Against,
			Manufacturer: req.Manufacturer,
			LotNo:        req.LotNo,
			NextDue:      nextDue,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrPetNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			case errors.Is(err, ErrVetNotFound):
				http.Error(w, "veterinarian not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, recordVaccinationResponse{VisitID: visitID})
	}
}

func recordPaymentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitID, err := strconv.ParseInt(chi.URLParam(r, "visitID"), 10, 64)
		if err != nil {
			http.Error(w, "visit id must be numeric", http.StatusBadRequest)
			return
		}

		var req recordPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var paidOn *time.Time
		if strings.TrimSpace(req.PaidOn) != "" {
			t, err := time.Parse("2006-01-02", req.PaidOn)
			if err != nil {
				http.Error(w, "paid_on must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			paidOn = &t
		}

		p, err := svc.RecordPayment(r.Context(), visitID, PaymentInput{
			Amount: req.Amount,
			Method: req.Method,
			PaidOn: paidOn,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "visit not found", http.StatusNotFound)
			case errors.Is(err, ErrAlreadyPaid):
				http.Error(w, "visit already paid", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPaymentResponse(p))
	}
}

func getVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "visitID"), 10, 64)
		if err != nil {
			http.Error(w, "visit id must be numeric", http.StatusBadRequest)
			return
		}

		v, err := svc.GetVisit(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "visit not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		status, payment, err := svc.PaymentStatus(r.Context(), id)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := visitResponse{
			ID:            v.ID,
			Date:          v.Date,
			Weight:        v.Weight,
			PetID:         v.PetID,
			VetID:         v.VetID,
			PaymentStatus: string(status),
		}
		if payment != nil {
			pr := toPaymentResponse(*payment)
			resp.Payment = &pr
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func toPaymentResponse(p Payment) paymentResponse {
	return paymentResponse{
		ID:        p.ID,
		VisitID:   p.VisitID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		PaidOn:    p.PaidOn.Format("2006-01-02"),
		ReceiptNo: p.ReceiptNo,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en clients/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
