package payrollhandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nomina/internal/domain/payroll"
	"nomina/internal/domain/tariff"
	"nomina/internal/platform/metrics"
	"nomina/internal/transport/http/api"
	"nomina/internal/transport/http/middleware"
)

type Handler struct {
	Calc    *payroll.Calculator
	Metrics *metrics.Collector
}

func NewHandler(calc *payroll.Calculator, collector *metrics.Collector) *Handler {
	return &Handler{Calc: calc, Metrics: collector}
}

type settlementPayload struct {
	DailyWage         float64 `json:"dailyWage"`
	IntegrationFactor float64 `json:"integrationFactor"`
	DaysWorked        int     `json:"daysWorked"`
}

func (p settlementPayload) input() payroll.Input {
	return payroll.Input{
		DailyWage:         p.DailyWage,
		IntegrationFactor: p.IntegrationFactor,
		DaysWorked:        p.DaysWorked,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/settlements", h.handleCreateSettlement)
		r.Post("/payslip", h.handleDownloadPayslip)
		r.Get("/tariff", h.handleGetTariff)
	})
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) (payroll.Input, payroll.Settlement, bool) {
	reqID := middleware.GetRequestID(r.Context())

	var payload settlementPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", reqID)
		return payroll.Input{}, payroll.Settlement{}, false
	}

	input := payload.input()
	settlement, err := h.Calc.Settle(input)
	if h.Metrics != nil {
		h.Metrics.RecordSettlement(err == nil)
	}
	if err != nil {
		var argErr *payroll.ArgumentError
		if errors.As(err, &argErr) {
			api.Fail(w, http.StatusBadRequest, "invalid_argument", argErr.Error(), reqID)
			return payroll.Input{}, payroll.Settlement{}, false
		}
		var oorErr *tariff.OutOfRangeError
		if errors.As(err, &oorErr) {
			api.Fail(w, http.StatusInternalServerError, "tariff_out_of_range", oorErr.Error(), reqID)
			return payroll.Input{}, payroll.Settlement{}, false
		}
		api.Fail(w, http.StatusInternalServerError, "internal", "settlement failed", reqID)
		return payroll.Input{}, payroll.Settlement{}, false
	}
	return input, settlement, true
}

func (h *Handler) handleCreateSettlement(w http.ResponseWriter, r *http.Request) {
	_, settlement, ok := h.settle(w, r)
	if !ok {
		return
	}
	api.Success(w, settlement, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownloadPayslip(w http.ResponseWriter, r *http.Request) {
	input, settlement, ok := h.settle(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := payroll.RenderPayslip(&buf, input, settlement); err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "could not render payslip", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

type tariffBracket struct {
	Lower       float64  `json:"lower"`
	Upper       *float64 `json:"upper"` // null for the unbounded final bracket
	FixedQuota  *float64 `json:"fixedQuota,omitempty"`
	RatePercent *float64 `json:"ratePercent,omitempty"`
	Subsidy     *float64 `json:"subsidy,omitempty"`
}

type tariffResponse struct {
	Year    int             `json:"year"`
	UMA     float64         `json:"uma"`
	ISR     []tariffBracket `json:"isr"`
	Subsidy []tariffBracket `json:"subsidy"`
}

func (h *Handler) handleGetTariff(w http.ResponseWriter, r *http.Request) {
	t := h.Calc.Tariff()
	resp := tariffResponse{Year: t.Year, UMA: t.UMA}
	for _, b := range t.ISR {
		quota, rate := b.FixedQuota, b.RatePercent
		resp.ISR = append(resp.ISR, tariffBracket{
			Lower:       b.Lower,
			Upper:       finiteBound(b.Upper),
			FixedQuota:  &quota,
			RatePercent: &rate,
		})
	}
	for _, b := range t.Subsidy {
		amount := b.Amount
		resp.Subsidy = append(resp.Subsidy, tariffBracket{
			Lower:   b.Lower,
			Upper:   finiteBound(b.Upper),
			Subsidy: &amount,
		})
	}
	api.Success(w, resp, middleware.GetRequestID(r.Context()))
}

func finiteBound(upper float64) *float64 {
	if math.IsInf(upper, 1) {
		return nil
	}
	return &upper
}
