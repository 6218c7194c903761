package payroll

// Input carries the three figures a settlement is computed from. Values are
// read once and never mutated.
type Input struct {
	DailyWage         float64 `json:"dailyWage"`
	IntegrationFactor float64 `json:"integrationFactor"`
	DaysWorked        int     `json:"daysWorked"`
}

type Earnings struct {
	Wage float64 `json:"wage"`
}

type Deductions struct {
	SocialSecurity float64 `json:"socialSecurity"`
	IncomeTax      float64 `json:"incomeTax"`
}

// Settlement is the computed pay for one period. Every figure is rounded to
// two decimals; rounding happens only when the settlement is assembled, so
// no rounded value ever feeds further arithmetic.
type Settlement struct {
	Earnings   Earnings   `json:"earnings"`
	Deductions Deductions `json:"deductions"`
	NetPay     float64    `json:"netPay"`
}
