package services

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/mehraj28/Payroll-Mangement/app/config"
	"github.com/mehraj28/Payroll-Mangement/app/models"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"
)

// PayslipRenderer produces salary slip PDF documents. Rendering is a pure
// function of the slip and employee: the document's creation date is pinned
// to the slip's own timestamp so identical inputs give identical bytes.
type PayslipRenderer struct {
	Company  config.CompanyInfo
	LogoPath string
}

func NewPayslipRenderer(company config.CompanyInfo, logoPath string) *PayslipRenderer {
	return &PayslipRenderer{Company: company, LogoPath: logoPath}
}

// Render lays out one A4 payslip page in absolute point coordinates.
// A missing or unreadable logo is skipped silently; any other failure is
// returned to the caller.
func (r *PayslipRenderer) Render(slip *models.SalarySlip, employee *models.User) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(slip.CreatedAt.UTC())
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	width, height := pdf.GetPageSize()

	// Header banner
	pdf.SetFillColor(0, 76, 151)
	pdf.Rect(0, 0, width, 90, "F")

	if r.logoUsable() {
		pdf.ImageOptions(r.LogoPath, 30, 10, 130, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	textRight(pdf, width-30, 40, r.Company.Name)

	pdf.SetFont("Helvetica", "", 9)
	textRight(pdf, width-30, 58, r.Company.Phone)
	textRight(pdf, width-30, 70, r.Company.Email)
	textRight(pdf, width-30, 82, r.Company.Address)

	// Title
	pdf.SetTextColor(0, 76, 151)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(30, 120, "Salary Slip")

	pdf.SetDrawColor(0, 76, 151)
	pdf.SetLineWidth(1)
	pdf.Line(30, 130, width-30, 130)

	// Employee details
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(30, 155, "Employee Details")

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(40, 175, "Name: "+employee.DisplayName())
	pdf.Text(40, 190, "Email: "+employee.Email)
	pdf.Text(40, 205, "Month: "+slip.Month)

	// Salary breakdown table
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(30, 235, "Salary Breakdown")

	const (
		tableTop  = 255.0
		rowHeight = 24.0
	)
	leftX := 30.0
	rightX := width - 30

	pdf.SetFillColor(229, 240, 255)
	pdf.Rect(leftX, tableTop, rightX-leftX, rowHeight, "F")
	pdf.SetTextColor(0, 76, 151)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(leftX+8, tableTop+rowHeight-7, "Component")
	textRight(pdf, rightX-8, tableTop+rowHeight-7, "Amount (INR)")

	rows := []struct {
		label string
		value float64
	}{
		{"Basic Salary", slip.Basic},
		{"Allowances", slip.Allowances},
		{"Deductions", slip.Deductions},
		{"Net Pay", slip.NetPay},
	}

	pdf.SetTextColor(0, 0, 0)
	y := tableTop + rowHeight*2
	for _, row := range rows {
		if row.label == "Net Pay" {
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.Text(leftX+8, y-6, row.label)
		textRight(pdf, rightX-8, y-6, formatAmount(row.value))
		y += rowHeight
	}

	// Outer border around the data rows
	pdf.SetDrawColor(0, 76, 151)
	pdf.SetLineWidth(0.8)
	pdf.Rect(leftX, tableTop+rowHeight, rightX-leftX, rowHeight*4, "D")

	// Notes
	notesY := tableTop + rowHeight + rowHeight*4 + 40
	pdf.SetTextColor(0, 76, 151)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(30, notesY, "Notes:")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	notes := slip.Notes
	if notes == "" {
		notes = "-"
	}
	pdf.Text(40, notesY+18, notes)

	// Signatures
	sigY := height - 120
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(40, sigY-25, "____________________________")
	pdf.Text(40, sigY-10, "HR Manager")
	pdf.Text(40, sigY+5, r.Company.Name)

	textRight(pdf, width-40, sigY-25, "____________________________")
	textRight(pdf, width-40, sigY-10, "Employee Signature")
	textRight(pdf, width-40, sigY+5, employee.DisplayName())

	// Footer
	pdf.SetTextColor(128, 128, 128)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(30, height-40, "This is a computer-generated document and does not require a physical signature.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// logoUsable reports whether the configured logo exists and decodes as an
// image. Anything else is treated as "no logo" so branding problems can
// never fail a render.
func (r *PayslipRenderer) logoUsable() bool {
	if r.LogoPath == "" {
		return false
	}
	f, err := os.Open(r.LogoPath)
	if err != nil {
		return false
	}
	defer f.Close()
	_, _, err = image.DecodeConfig(f)
	return err == nil
}

func textRight(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

// formatAmount renders a monetary value with thousands separators and two
// decimal places, e.g. 12345.5 -> "12,345.50".
func formatAmount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
