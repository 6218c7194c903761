package payrollhandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"nomina/internal/domain/payroll"
	"nomina/internal/domain/tariff"
	"nomina/internal/platform/metrics"
)

func newTestRouter(t *testing.T) (http.Handler, *metrics.Collector) {
	t.Helper()
	collector := metrics.New()
	handler := NewHandler(payroll.NewCalculator(tariff.Tariff2025()), collector)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, collector
}

type settlementResponse struct {
	Success bool               `json:"success"`
	Data    payroll.Settlement `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateSettlement(t *testing.T) {
	router, collector := newTestRouter(t)

	rec := postJSON(t, router, "/payroll/settlements", `{"dailyWage":500,"integrationFactor":1.0452,"daysWorked":15}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp settlementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %s", rec.Body.String())
	}
	if resp.Data.Earnings.Wage != 7500.00 {
		t.Fatalf("expected wage 7500.00, got %v", resp.Data.Earnings.Wage)
	}
	if resp.Data.Deductions.SocialSecurity != 197.17 {
		t.Fatalf("expected IMSS 197.17, got %v", resp.Data.Deductions.SocialSecurity)
	}
	if resp.Data.Deductions.IncomeTax != 783.83 {
		t.Fatalf("expected ISR 783.83, got %v", resp.Data.Deductions.IncomeTax)
	}
	if resp.Data.NetPay != 6519.01 {
		t.Fatalf("expected net 6519.01, got %v", resp.Data.NetPay)
	}

	snapshot := collector.Snapshot()
	if snapshot["settlementsTotal"].(uint64) != 1 {
		t.Fatalf("expected 1 settlement recorded, got %v", snapshot["settlementsTotal"])
	}
	if snapshot["settlementErrors"].(uint64) != 0 {
		t.Fatalf("expected no settlement errors, got %v", snapshot["settlementErrors"])
	}
}

func TestCreateSettlementRejectsInvalidInputs(t *testing.T) {
	router, collector := newTestRouter(t)

	bodies := []string{
		`{"dailyWage":-1,"integrationFactor":1.0452,"daysWorked":15}`,
		`{"dailyWage":500,"integrationFactor":0,"daysWorked":15}`,
		`{"dailyWage":500,"integrationFactor":1.0452,"daysWorked":0}`,
	}
	for _, body := range bodies {
		rec := postJSON(t, router, "/payroll/settlements", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
		}
		var resp settlementResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Error == nil || resp.Error.Code != "invalid_argument" {
			t.Fatalf("expected invalid_argument error, got %s", rec.Body.String())
		}
	}

	snapshot := collector.Snapshot()
	if snapshot["settlementErrors"].(uint64) != 3 {
		t.Fatalf("expected 3 settlement errors recorded, got %v", snapshot["settlementErrors"])
	}
}

func TestCreateSettlementRejectsMalformedJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := postJSON(t, router, "/payroll/settlements", `{"dailyWage":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp settlementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != "invalid_json" {
		t.Fatalf("expected invalid_json error, got %s", rec.Body.String())
	}
}

func TestDownloadPayslip(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := postJSON(t, router, "/payroll/payslip", `{"dailyWage":500,"integrationFactor":1.0452,"daysWorked":15}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF payload")
	}
}

func TestGetTariff(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/payroll/tariff", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data tariffResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Year != 2025 {
		t.Fatalf("expected year 2025, got %d", resp.Data.Year)
	}
	if resp.Data.UMA != 113.14 {
		t.Fatalf("expected UMA 113.14, got %v", resp.Data.UMA)
	}
	if len(resp.Data.ISR) != 11 || len(resp.Data.Subsidy) != 11 {
		t.Fatalf("expected 11 brackets per table, got %d and %d", len(resp.Data.ISR), len(resp.Data.Subsidy))
	}
	if resp.Data.ISR[10].Upper != nil {
		t.Fatalf("expected unbounded final isr bracket, got %v", *resp.Data.ISR[10].Upper)
	}
	if resp.Data.Subsidy[10].Upper != nil {
		t.Fatalf("expected unbounded final subsidy bracket, got %v", *resp.Data.Subsidy[10].Upper)
	}
}
