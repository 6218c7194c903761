package payroll

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// RenderPayslip writes a one-page PDF payslip for a computed settlement.
func RenderPayslip(w io.Writer, input Input, settlement Settlement) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Daily wage: %.2f MXN", input.DailyWage))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Integration factor: %.4f", input.IntegrationFactor))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Days worked: %d", input.DaysWorked))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross wage: %.2f MXN", settlement.Earnings.Wage))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("IMSS contribution: %.2f MXN", settlement.Deductions.SocialSecurity))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("ISR withholding: %.2f MXN", settlement.Deductions.IncomeTax))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %.2f MXN", settlement.NetPay))

	return pdf.Output(w)
}
