package documents

import (
	"bytes"
	"fmt"
	"property_quote/internal/domain/entities"
	"property_quote/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	ContentTypePDF = "application/pdf"
	brandLine      = "Instant Property Quote"
)

// PDFRenderer writes a one-page quote summary with the core Helvetica font.
// Text goes through the cp1252 translator, so non-Latin-1 characters in an
// address are replaced rather than breaking the document.
type PDFRenderer struct {
	compress bool
	now      func() time.Time
}

var _ interfaces.IQuoteRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{compress: true, now: time.Now}
}

func (r *PDFRenderer) ContentType() string { return ContentTypePDF }

func (r *PDFRenderer) Render(q entities.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetTitle("Property insurance quote "+q.ID, true)
	pdf.SetCreator(brandLine, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Property Insurance Quote")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Quote %s", q.ID)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Issued %s", q.Timestamp.UTC().Format("January 2, 2006 15:04 MST")))
	pdf.Ln(10)

	section(pdf, "Property")
	if a := q.Property.Address; a != nil {
		row(pdf, "Address", tr(a.Street))
		row(pdf, "", tr(fmt.Sprintf("%s, %s %s", a.City, a.State, a.ZipCode)))
	}
	row(pdf, "Size", fmt.Sprintf("%s sq ft", FormatNumber(q.Property.SquareFeet, 0)))
	row(pdf, "Coverage", FormatCurrency(q.Property.Coverage))
	pdf.Ln(4)

	section(pdf, "Breakdown")
	b := q.Breakdown
	row(pdf, "Base rate", FormatCurrency(b.BaseRate)+" / sq ft")
	row(pdf, "Coverage multiplier", fmt.Sprintf("x%s", FormatNumber(b.CoverageMultiplier, -1)))
	row(pdf, "Subtotal", FormatCurrency(b.Subtotal))
	row(pdf, "Risk multiplier", fmt.Sprintf("x%s", FormatNumber(b.RiskMultiplier, -1)))
	row(pdf, "Total", FormatCurrency(b.Total))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Annual premium: %s", FormatCurrency(q.Amount)))
	pdf.Ln(12)

	if q.Status == entities.QuoteStatusContactRequired && q.ContactInfo != nil {
		contactCard(pdf, tr, *q.ContactInfo)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, fmt.Sprintf("%s - generated %s", brandLine, r.now().UTC().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(55, 6, label)
	pdf.Cell(0, 6, value)
	pdf.Ln(6)
}

func contactCard(pdf *gofpdf.Fpdf, tr func(string) string, info entities.ContactInfo) {
	pdf.SetFillColor(255, 243, 205)
	pdf.SetDrawColor(230, 180, 60)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 9, "Personalized quote required", "LTR", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(info.Message), "LR", "L", true)
	pdf.CellFormat(0, 6, tr("Phone: "+info.Phone), "LR", 1, "L", true, 0, "")
	pdf.CellFormat(0, 6, tr("Email: "+info.Email), "LBR", 1, "L", true, 0, "")
	pdf.Ln(6)
}

// FormatCurrency renders a dollar amount as "$1,234.56", rounding half away
// from zero.
func FormatCurrency(v float64) string {
	d := decimal.NewFromFloat(v)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + group(d.StringFixed(2))
}

// FormatNumber groups the integer part with commas. places < 0 keeps the
// shortest exact representation.
func FormatNumber(v float64, places int32) string {
	d := decimal.NewFromFloat(v)
	s := d.String()
	if places >= 0 {
		s = d.StringFixed(places)
	}
	if strings.HasPrefix(s, "-") {
		return "-" + group(s[1:])
	}
	return group(s)
}

func group(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
