package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/dubaitostars/starclient/internal"
)

func sampleInvoice() models.Invoice {
	return models.Invoice{
		InvoiceNumber: "INV-2025-0042",
		IssueDate:     "2025-06-01",
		Customer: models.InvoiceCustomer{
			Name:  "Ada Lovelace",
			Email: "traveler@example.com",
		},
		BookingDetails: models.InvoiceBookingDetails{
			Destination:   "Lunar Resort",
			Accommodation: "Tranquility Base Hotel",
			Package:       "Stellar First",
			DepartureDate: "2025-06-01",
			ReturnDate:    "2025-06-05",
			Duration:      4,
			Travelers:     2,
		},
		Costs: models.InvoiceCosts{
			BasePackage:    10000,
			Accommodation:  16000,
			DestinationFee: 500,
			SpaceVisa:      350,
			Insurance:      150,
		},
		Total:         27000,
		PaymentStatus: "Paid",
	}
}

func TestRender(t *testing.T) {
	data, filename, err := Render(sampleInvoice())
	require.NoError(t, err)

	assert.Equal(t, "INV-2025-0042.pdf", filename)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderEmptyInvoice(t *testing.T) {
	data, filename, err := Render(models.Invoice{})
	require.NoError(t, err)

	assert.Equal(t, "invoice.pdf", filename)
	assert.NotEmpty(t, data)
}

func TestFilenameSanitized(t *testing.T) {
	inv := sampleInvoice()
	inv.InvoiceNumber = "INV/2025 #42"

	_, filename, err := Render(inv)
	require.NoError(t, err)
	assert.Equal(t, "INV_2025__42.pdf", filename)
}

func TestSafe(t *testing.T) {
	assert.Equal(t, "x", safe("x", "-"))
	assert.Equal(t, "-", safe("", "-"))
	assert.Equal(t, "-", safe("   ", "-"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "AED 27000.00", formatAmount(27000))
	assert.Equal(t, "AED 0.00", formatAmount(0))
}
