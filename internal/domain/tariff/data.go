package tariff

import "math"

// Tariff2025 returns the daily withholding parameters in force for fiscal
// year 2025: the ISR tariff and employment-subsidy table published in the
// DOF, and the UMA value set by INEGI. A fresh value is returned on every
// call so no caller can mutate another's tables.
func Tariff2025() Tariff {
	return Tariff{
		Year: 2025,
		UMA:  113.14,
		ISR: ISRTable{
			{Lower: 0.01, Upper: 24.54, FixedQuota: 0.00, RatePercent: 1.92},
			{Lower: 24.54, Upper: 208.29, FixedQuota: 0.47, RatePercent: 6.40},
			{Lower: 208.30, Upper: 366.05, FixedQuota: 12.23, RatePercent: 10.88},
			{Lower: 366.06, Upper: 425.52, FixedQuota: 29.40, RatePercent: 16.00},
			{Lower: 425.53, Upper: 509.46, FixedQuota: 38.91, RatePercent: 17.92},
			{Lower: 509.47, Upper: 1027.52, FixedQuota: 53.95, RatePercent: 21.36},
			{Lower: 1027.53, Upper: 1619.51, FixedQuota: 164.61, RatePercent: 23.52},
			{Lower: 1619.52, Upper: 3091.90, FixedQuota: 303.85, RatePercent: 30.00},
			{Lower: 3091.91, Upper: 4122.54, FixedQuota: 745.56, RatePercent: 32.00},
			{Lower: 4122.55, Upper: 12367.62, FixedQuota: 1075.37, RatePercent: 34.00},
			{Lower: 12367.63, Upper: math.Inf(1), FixedQuota: 3878.69, RatePercent: 35.00},
		},
		Subsidy: SubsidyTable{
			{Lower: 0.01, Upper: 58.19, Amount: 13.39},
			{Lower: 58.20, Upper: 87.28, Amount: 13.38},
			{Lower: 87.29, Upper: 114.24, Amount: 13.38},
			{Lower: 114.25, Upper: 116.38, Amount: 12.92},
			{Lower: 116.39, Upper: 146.25, Amount: 12.58},
			{Lower: 146.26, Upper: 155.17, Amount: 11.65},
			{Lower: 155.18, Upper: 175.51, Amount: 10.69},
			{Lower: 175.52, Upper: 204.76, Amount: 9.69},
			{Lower: 204.77, Upper: 234.01, Amount: 8.34},
			{Lower: 234.02, Upper: 242.84, Amount: 7.16},
			{Lower: 242.85, Upper: math.Inf(1), Amount: 0.00},
		},
	}
}
