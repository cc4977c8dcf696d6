package invoice

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	models "github.com/dubaitostars/starclient/internal"
)

// Render builds a printable PDF from a fetched invoice and returns the
// bytes plus a suggested filename.
func Render(inv models.Invoice) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Dubai to Stars Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DUBAI TO STARS - INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no : "+safe(inv.InvoiceNumber, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+safe(inv.IssueDate, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name  : "+safe(inv.Customer.Name, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email : "+safe(inv.Customer.Email, "-"))
	pdf.Ln(10)

	d := inv.BookingDetails
	trip := fmt.Sprintf("%s, staying at %s (%s package), %s to %s, %d day(s), %d traveler(s)",
		safe(d.Destination, "-"), safe(d.Accommodation, "-"), safe(d.Package, "-"),
		safe(d.DepartureDate, "-"), safe(d.ReturnDate, "-"), d.Duration, d.Travelers,
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trip:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, trip, "", "", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Costs:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	lines := []struct {
		label  string
		amount float64
	}{
		{"Package", inv.Costs.BasePackage},
		{"Accommodation", inv.Costs.Accommodation},
		{"Destination fee", inv.Costs.DestinationFee},
		{"Space visa", inv.Costs.SpaceVisa},
		{"Insurance", inv.Costs.Insurance},
	}
	for _, line := range lines {
		pdf.Cell(0, 6, fmt.Sprintf("%-16s %s", line.label, formatAmount(line.amount)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+formatAmount(inv.Total))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Payment status: "+safe(inv.PaymentStatus, "-"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("rendering invoice pdf: %w", err)
	}

	filename := fmt.Sprintf("%s.pdf", safeFilenamePart(safe(inv.InvoiceNumber, "invoice")))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func formatAmount(v float64) string {
	return fmt.Sprintf("AED %.2f", v)
}

func safeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
