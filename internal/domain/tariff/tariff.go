package tariff

import (
	"fmt"
	"math"
	"sort"
)

// boundaryGap is the widest step the published tables leave between one
// bracket's upper bound and the next bracket's lower bound. Some rows share
// the boundary value outright (both bounds equal), others step by one cent.
const boundaryGap = 0.01

const epsilon = 1e-9

// ISRBracket is one row of the daily income-tax tariff: wages inside
// [Lower, Upper] owe FixedQuota plus RatePercent of the excess over Lower.
type ISRBracket struct {
	Lower       float64 `yaml:"lower"`
	Upper       float64 `yaml:"upper"`
	FixedQuota  float64 `yaml:"fixed_quota"`
	RatePercent float64 `yaml:"rate_percent"`
}

// SubsidyBracket is one row of the daily employment-subsidy tariff.
type SubsidyBracket struct {
	Lower  float64 `yaml:"lower"`
	Upper  float64 `yaml:"upper"`
	Amount float64 `yaml:"amount"`
}

type ISRTable []ISRBracket

type SubsidyTable []SubsidyBracket

// Tariff groups the fiscal-year parameters the payroll engine needs. Values
// are immutable once built; a new fiscal year is a new Tariff, never an
// in-place edit.
type Tariff struct {
	Year    int          `yaml:"year"`
	UMA     float64      `yaml:"uma"`
	ISR     ISRTable     `yaml:"isr"`
	Subsidy SubsidyTable `yaml:"subsidy"`
}

// Resolve returns the bracket whose bounds contain value, inclusive on both
// ends. The published tables repeat a boundary value in adjacent rows, so
// the first match in table order wins.
func (t ISRTable) Resolve(value float64) (ISRBracket, error) {
	for _, b := range t {
		if b.Lower <= value && value <= b.Upper {
			return b, nil
		}
	}
	return ISRBracket{}, &OutOfRangeError{Table: "isr", Value: value}
}

func (t SubsidyTable) Resolve(value float64) (SubsidyBracket, error) {
	for _, b := range t {
		if b.Lower <= value && value <= b.Upper {
			return b, nil
		}
	}
	return SubsidyBracket{}, &OutOfRangeError{Table: "subsidy", Value: value}
}

// Validate checks the structural invariants both tables must satisfy:
// sorted rows, lower <= upper, at most a one-cent step between consecutive
// rows, and an unbounded final row so every positive wage resolves.
func (t Tariff) Validate() error {
	if t.Year <= 0 {
		return fmt.Errorf("tariff year must be positive, got %d", t.Year)
	}
	if t.UMA <= 0 {
		return fmt.Errorf("tariff UMA must be positive, got %v", t.UMA)
	}
	if err := validateBounds("isr", isrBounds(t.ISR)); err != nil {
		return err
	}
	for i, b := range t.ISR {
		if b.FixedQuota < 0 {
			return fmt.Errorf("isr bracket %d: fixed quota must not be negative", i)
		}
		if b.RatePercent <= 0 || b.RatePercent >= 100 {
			return fmt.Errorf("isr bracket %d: rate must be between 0 and 100 percent", i)
		}
	}
	if err := validateBounds("subsidy", subsidyBounds(t.Subsidy)); err != nil {
		return err
	}
	for i, b := range t.Subsidy {
		if b.Amount < 0 {
			return fmt.Errorf("subsidy bracket %d: amount must not be negative", i)
		}
	}
	return nil
}

type bounds struct {
	lower float64
	upper float64
}

func isrBounds(t ISRTable) []bounds {
	out := make([]bounds, len(t))
	for i, b := range t {
		out[i] = bounds{lower: b.Lower, upper: b.Upper}
	}
	return out
}

func subsidyBounds(t SubsidyTable) []bounds {
	out := make([]bounds, len(t))
	for i, b := range t {
		out[i] = bounds{lower: b.Lower, upper: b.Upper}
	}
	return out
}

func validateBounds(name string, rows []bounds) error {
	if len(rows) == 0 {
		return fmt.Errorf("%s table must not be empty", name)
	}
	if !sort.SliceIsSorted(rows, func(i, j int) bool { return rows[i].lower < rows[j].lower }) {
		return fmt.Errorf("%s table must be sorted by lower bound", name)
	}
	if rows[0].lower <= 0 {
		return fmt.Errorf("%s table must start above zero", name)
	}
	for i, row := range rows {
		if row.lower > row.upper {
			return fmt.Errorf("%s bracket %d: lower bound %v exceeds upper bound %v", name, i, row.lower, row.upper)
		}
		if i == 0 {
			continue
		}
		gap := row.lower - rows[i-1].upper
		if gap < -epsilon || gap > boundaryGap+epsilon {
			return fmt.Errorf("%s table has a gap between brackets %d and %d", name, i-1, i)
		}
	}
	last := rows[len(rows)-1]
	if !math.IsInf(last.upper, 1) {
		return fmt.Errorf("%s table must end with an unbounded bracket", name)
	}
	return nil
}
