// backend/src/reports/pdf_report.go
package reports

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/microcosm-cc/bluemonday"
	"github.com/username/feecompare/backend/src/models"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// noteSanitizer strips any markup from adviser-entered free text before it is
// embedded in a report.
var noteSanitizer = bluemonday.StrictPolicy()

// ComparisonReport bundles everything the printable report embeds.
type ComparisonReport struct {
	Accounts      models.AccountSet
	Platforms     []models.PlatformResult
	TotalBalance  float64
	BalanceHeader string
	Preference    models.PreferenceMode
	CustomNote    string
}

// preferenceNote returns the note line for the selected preference mode.
func (r ComparisonReport) preferenceNote() string {
	switch r.Preference {
	case models.PreferenceNoOnline:
		return "Note: the client has indicated no preference for online platform access."
	case models.PreferenceCustom:
		note := noteSanitizer.Sanitize(r.CustomNote)
		if note == "" {
			return ""
		}
		return "Note: " + note
	}
	return ""
}

// formatCurrency renders an AUD amount ("$12,345.67") for display cells.
func formatCurrency(amount float64) string {
	negative := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))
	whole := strconv.FormatInt(cents/100, 10)
	for i := len(whole) - 3; i > 0; i -= 3 {
		whole = whole[:i] + "," + whole[i:]
	}
	out := fmt.Sprintf("$%s.%02d", whole, cents%100)
	if negative {
		return "-" + out
	}
	return out
}

// GenerateComparisonPDF renders the comparison as an A4 report: title, total
// balance panel, the ranked fee table with current platforms highlighted, the
// entered account balances, and any preference note.
func GenerateComparisonPDF(report ComparisonReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(contentWidth, 12, "Platform Fee Comparison", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Total balance panel
	pdf.SetFillColor(245, 245, 245)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(contentWidth, 8, report.BalanceHeader, "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 102, 204)
	pdf.CellFormat(contentWidth, 9, formatCurrency(report.TotalBalance), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	addFeeTable(pdf, report.Platforms)
	addAccountTables(pdf, report.Accounts)

	if note := report.preferenceNote(); note != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.SetTextColor(102, 102, 102)
		pdf.MultiCell(contentWidth, 5, note, "", "L", false)
	}

	// Generation date, bottom right
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(contentWidth, 5, "Generated on: "+time.Now().Format("2 January 2006"), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addFeeTable(pdf *fpdf.Fpdf, platforms []models.PlatformResult) {
	nameWidth := contentWidth - 3*35.0

	// Header row
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(221, 221, 221)
	pdf.CellFormat(nameWidth, 8, "Platform", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, "Admin Fee", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Expense Recovery", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Total Fee", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(51, 51, 51)
	for _, p := range platforms {
		fill := p.IsCurrent
		if fill {
			pdf.SetFillColor(226, 239, 218)
		}
		name := p.Name
		if p.IsCurrent {
			name += " (Current)"
		}
		pdf.CellFormat(nameWidth, 7, name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(35, 7, formatCurrency(p.AdminFee), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(35, 7, formatCurrency(p.ExpenseFee), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(35, 7, formatCurrency(p.TotalFee), "1", 1, "R", fill, 0, "")
	}
	pdf.Ln(6)
}

func addAccountTables(pdf *fpdf.Fpdf, accounts models.AccountSet) {
	for _, class := range []models.AccountClass{models.ClassIDPS, models.ClassSuper} {
		rows := accounts.Accounts(class)
		if len(rows) == 0 {
			continue
		}

		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(51, 51, 51)
		pdf.CellFormat(contentWidth, 8, class.DisplayName()+" Accounts", "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetDrawColor(221, 221, 221)
		for i, account := range rows {
			label := fmt.Sprintf("%s Account %d", class.DisplayName(), i+1)
			pdf.CellFormat(contentWidth-40, 7, label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, formatCurrency(account.Balance), "1", 1, "R", false, 0, "")
		}

		if len(rows) > 1 {
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(contentWidth-40, 7, "Total", "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, formatCurrency(accounts.ClassBalance(class)), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}
}
