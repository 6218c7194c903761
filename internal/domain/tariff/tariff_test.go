package tariff

import (
	"errors"
	"math"
	"testing"
)

func TestTariff2025Validates(t *testing.T) {
	if err := Tariff2025().Validate(); err != nil {
		t.Fatalf("expected 2025 tariff to validate, got %v", err)
	}
}

func TestResolveCoversPositiveWages(t *testing.T) {
	tariff := Tariff2025()
	wages := []float64{0.01, 1, 24.53, 24.55, 58.19, 100, 242.85, 500, 1027.52, 4122.55, 12367.63, 50000, 1e9}
	for _, wage := range wages {
		isr, err := tariff.ISR.Resolve(wage)
		if err != nil {
			t.Fatalf("isr resolve %v: %v", wage, err)
		}
		if wage < isr.Lower || wage > isr.Upper {
			t.Fatalf("isr bracket [%v, %v] does not contain %v", isr.Lower, isr.Upper, wage)
		}
		sub, err := tariff.Subsidy.Resolve(wage)
		if err != nil {
			t.Fatalf("subsidy resolve %v: %v", wage, err)
		}
		if wage < sub.Lower || wage > sub.Upper {
			t.Fatalf("subsidy bracket [%v, %v] does not contain %v", sub.Lower, sub.Upper, wage)
		}
	}
}

func TestResolveSharedBoundaryPrefersFirstRow(t *testing.T) {
	// 24.54 is both the first bracket's upper bound and the second
	// bracket's lower bound in the published table; the first row wins.
	bracket, err := Tariff2025().ISR.Resolve(24.54)
	if err != nil {
		t.Fatalf("resolve 24.54: %v", err)
	}
	if bracket.Lower != 0.01 || bracket.FixedQuota != 0 {
		t.Fatalf("expected first bracket, got lower=%v quota=%v", bracket.Lower, bracket.FixedQuota)
	}
}

func TestResolveOutOfRange(t *testing.T) {
	tariff := Tariff2025()
	for _, value := range []float64{0, 0.005, -3} {
		_, err := tariff.ISR.Resolve(value)
		var oor *OutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("expected OutOfRangeError for %v, got %v", value, err)
		}
		if oor.Value != value || oor.Table != "isr" {
			t.Fatalf("unexpected error detail: %+v", oor)
		}
	}
}

func TestValidateRejectsGap(t *testing.T) {
	bad := Tariff2025()
	bad.ISR[3].Lower = 370.00
	if err := bad.Validate(); err == nil {
		t.Fatal("expected validation error for gapped table")
	}
}

func TestValidateRejectsUnsorted(t *testing.T) {
	bad := Tariff2025()
	bad.Subsidy[1], bad.Subsidy[2] = bad.Subsidy[2], bad.Subsidy[1]
	if err := bad.Validate(); err == nil {
		t.Fatal("expected validation error for unsorted table")
	}
}

func TestValidateRejectsBoundedFinalBracket(t *testing.T) {
	bad := Tariff2025()
	bad.ISR[len(bad.ISR)-1].Upper = 99999
	if err := bad.Validate(); err == nil {
		t.Fatal("expected validation error for bounded final bracket")
	}
}

func TestValidateRejectsNonPositiveUMA(t *testing.T) {
	bad := Tariff2025()
	bad.UMA = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected validation error for zero UMA")
	}
}

func TestValidateAllowsSharedBoundary(t *testing.T) {
	// Adjacent rows sharing an exact bound are valid, not an overlap.
	shared := Tariff{
		Year: 2025,
		UMA:  113.14,
		ISR: ISRTable{
			{Lower: 0.01, Upper: 10, FixedQuota: 0, RatePercent: 2},
			{Lower: 10, Upper: math.Inf(1), FixedQuota: 0.2, RatePercent: 5},
		},
		Subsidy: SubsidyTable{
			{Lower: 0.01, Upper: math.Inf(1), Amount: 0},
		},
	}
	if err := shared.Validate(); err != nil {
		t.Fatalf("expected shared-boundary table to validate, got %v", err)
	}
}
