package payroll

import (
	"math"

	"nomina/internal/domain/tariff"
)

// Calculator computes settlements against one fiscal-year tariff. It holds
// no mutable state, so a single Calculator is safe for concurrent use.
type Calculator struct {
	tariff tariff.Tariff
}

func NewCalculator(t tariff.Tariff) *Calculator {
	return &Calculator{tariff: t}
}

func (c *Calculator) Tariff() tariff.Tariff {
	return c.tariff
}

// DailyISR computes the income-tax withholding for one day's wage: the
// bracket's fixed quota plus the marginal rate on the excess over the
// bracket's lower bound, less the employment subsidy, floored at zero.
func (c *Calculator) DailyISR(dailyWage float64) (float64, error) {
	bracket, err := c.tariff.ISR.Resolve(dailyWage)
	if err != nil {
		return 0, err
	}
	excess := dailyWage - bracket.Lower
	beforeSubsidy := bracket.FixedQuota + excess*(bracket.RatePercent/100)

	subsidy, err := c.tariff.Subsidy.Resolve(dailyWage)
	if err != nil {
		return 0, err
	}
	isr := beforeSubsidy - subsidy.Amount
	if isr < 0 {
		isr = 0
	}
	return isr, nil
}

// DailyIMSS sums the five worker contribution components for one day. Four
// apply to the full contribution base wage; the sickness excess component
// applies only to the portion above three UMA.
func (c *Calculator) DailyIMSS(baseWage float64) float64 {
	excess := baseWage - umaExcessMultiple*c.tariff.UMA
	if excess < 0 {
		excess = 0
	}
	return rateSicknessCash*baseWage +
		rateSicknessExcess*excess +
		ratePensionerMedical*baseWage +
		rateDisabilityLife*baseWage +
		rateOldAge*baseWage
}

// Settle validates the input and assembles the period settlement. Daily
// figures are scaled by days worked at full precision; each output figure
// is rounded independently as the final step.
func (c *Calculator) Settle(input Input) (Settlement, error) {
	if err := input.Validate(); err != nil {
		return Settlement{}, err
	}

	days := float64(input.DaysWorked)
	gross := input.DailyWage * days
	baseWage := input.DailyWage * input.IntegrationFactor

	periodIMSS := c.DailyIMSS(baseWage) * days

	dailyISR, err := c.DailyISR(input.DailyWage)
	if err != nil {
		return Settlement{}, err
	}
	periodISR := dailyISR * days

	return Settlement{
		Earnings: Earnings{Wage: round2(gross)},
		Deductions: Deductions{
			SocialSecurity: round2(periodIMSS),
			IncomeTax:      round2(periodISR),
		},
		NetPay: round2(gross - periodIMSS - periodISR),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
