package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PayslipLine is one labelled amount on the payslip.
type PayslipLine struct {
	Label  string
	Amount string
}

type Payslip struct {
	OrganizationName string
	EmployeeID       string
	EmployeeName     string
	Position         string
	Department       string
	Category         string
	PeriodLabel      string
	DailyRate        string
	PayableDays      int
	Earnings         []PayslipLine
	TotalEarnings    string
	Deductions       []PayslipLine
	TotalDeductions  string
	NetPay           string
	Warnings         []string
}

// PayslipPDF renders an A4 payslip.
func PayslipPDF(p Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+p.EmployeeID+" "+p.PeriodLabel, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, p.OrganizationName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Payslip", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	info := [][2]string{
		{"Employee ID", p.EmployeeID},
		{"Name", p.EmployeeName},
		{"Position", p.Position},
		{"Department", p.Department},
		{"Employment", p.Category},
		{"Period", tr(p.PeriodLabel)},
		{"Daily rate", p.DailyRate},
		{"Days paid", fmt.Sprintf("%d", p.PayableDays)},
	}
	for _, row := range info {
		pdf.CellFormat(40, 7, row[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	section := func(title string, lines []PayslipLine, totalLabel, total string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range lines {
			pdf.CellFormat(120, 7, l.Label, "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, l.Amount, "", 1, "R", false, 0, "")
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(120, 7, totalLabel, "T", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, total, "T", 1, "R", false, 0, "")
		pdf.Ln(3)
	}
	section("Earnings", p.Earnings, "Total earnings", p.TotalEarnings)
	section("Deductions", p.Deductions, "Total deductions", p.TotalDeductions)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 10, "Net pay", "TB", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, p.NetPay, "TB", 1, "R", false, 0, "")

	if len(p.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		for _, w := range p.Warnings {
			pdf.MultiCell(0, 5, "Note: "+tr(w), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
