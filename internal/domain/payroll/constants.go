package payroll

// Worker-side IMSS contribution rates in force for 2025, as fractions of
// the daily contribution base wage.
const (
	rateSicknessCash     = 0.0025  // sickness & maternity, cash benefits
	rateSicknessExcess   = 0.0040  // sickness & maternity, excess above 3 UMA
	ratePensionerMedical = 0.00375 // medical expenses, pensioners & beneficiaries
	rateDisabilityLife   = 0.00625 // disability & life
	rateOldAge           = 0.01125 // old-age & advanced-age unemployment
)

// The sickness excess component applies only above this many UMA.
const umaExcessMultiple = 3
