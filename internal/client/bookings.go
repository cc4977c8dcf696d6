package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	models "github.com/dubaitostars/starclient/internal"
)

func (c *Client) CreateBooking(ctx context.Context, req models.BookingCreate) (models.Booking, error) {
	var ans models.Booking
	if err := c.send(ctx, http.MethodPost, "/bookings", nil, req, &ans); err != nil {
		return ans, fmt.Errorf("creating booking: %w", err)
	}
	return ans, nil
}

func (c *Client) ListBookings(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}

	var ans []models.Booking
	if err := c.get(ctx, "/bookings", query, &ans); err != nil {
		return nil, fmt.Errorf("fetching bookings: %w", err)
	}
	return ans, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (models.Booking, error) {
	var ans models.Booking
	if err := c.get(ctx, "/bookings/"+id, nil, &ans); err != nil {
		return ans, fmt.Errorf("fetching booking: %w", err)
	}
	return ans, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id string, patch models.BookingUpdate) (models.Booking, error) {
	var ans models.Booking
	if err := c.send(ctx, http.MethodPut, "/bookings/"+id, nil, patch, &ans); err != nil {
		return ans, fmt.Errorf("updating booking: %w", err)
	}
	return ans, nil
}

// CancelBooking marks the booking Cancelled server-side; the record is
// kept and still shows up under the Cancelled status filter.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	if err := c.send(ctx, http.MethodDelete, "/bookings/"+id, nil, nil, nil); err != nil {
		return fmt.Errorf("cancelling booking: %w", err)
	}
	return nil
}

func (c *Client) GetInvoice(ctx context.Context, bookingID string) (models.Invoice, error) {
	var ans models.Invoice
	if err := c.get(ctx, "/bookings/"+bookingID+"/invoice", nil, &ans); err != nil {
		return ans, fmt.Errorf("fetching invoice: %w", err)
	}
	return ans, nil
}
